package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Ranking evaluation: %s (%s) ===\n\n", r.Meta.Suite, r.Meta.Backend)
	writeAggregated(tw, r)
	writePerQuery(tw, r)

	return tw.Flush()
}

func writeAggregated(tw *tabwriter.Writer, r *Report) {
	header := []string{"Profile"}
	for _, k := range r.Config.KValues {
		header = append(header, fmt.Sprintf("NDCG@%d", k))
	}
	for _, k := range r.Config.KValues {
		header = append(header, fmt.Sprintf("P@%d", k))
	}
	header = append(header, "MAP", "MRR", "Latency", "Judged", "Errors")
	writeRow(tw, header)
	writeRow(tw, separator(len(header)))

	for _, agg := range r.Aggregated {
		row := []string{agg.Candidate}
		for _, k := range r.Config.KValues {
			row = append(row, fmt.Sprintf("%.4f", agg.NDCG[k]))
		}
		for _, k := range r.Config.KValues {
			row = append(row, fmt.Sprintf("%.4f", agg.Precision[k]))
		}
		row = append(row,
			fmt.Sprintf("%.4f", agg.MAP),
			fmt.Sprintf("%.4f", agg.MRR),
			fmtDuration(agg.MeanLatency),
			fmt.Sprintf("%d/%d", agg.JudgedCount, agg.QueryCount),
			fmt.Sprintf("%d", agg.ErrorCount),
		)
		writeRow(tw, row)
	}
	fmt.Fprintln(tw)
}

func writePerQuery(tw *tabwriter.Writer, r *Report) {
	k := primaryK(r.Config.KValues)

	header := []string{"Query", "Profile", fmt.Sprintf("NDCG@%d", k), "AP", "RR", "Hits", "Top", "Status"}
	writeRow(tw, header)
	writeRow(tw, separator(len(header)))

	for _, e := range r.PerQuery {
		status := "OK"
		if e.Error != "" {
			status = "ERR"
		}
		top := "-"
		if len(e.RankedIDs) > 0 {
			top = e.RankedIDs[0]
		}
		ndcg := "N/A"
		if e.Judged {
			ndcg = fmt.Sprintf("%.4f", e.NDCG[k])
		}
		writeRow(tw, []string{
			e.QueryID,
			e.Candidate,
			ndcg,
			fmt.Sprintf("%.4f", e.AP),
			fmt.Sprintf("%.4f", e.RR),
			fmt.Sprintf("%d", e.TotalCount),
			top,
			status,
		})
	}
	fmt.Fprintln(tw)
}

func writeRow(tw *tabwriter.Writer, cols []string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
}

func separator(n int) []string {
	sep := make([]string, n)
	for i := range sep {
		sep[i] = "---"
	}
	return sep
}

func primaryK(kValues []int) int {
	if len(kValues) > 0 {
		return kValues[len(kValues)-1]
	}
	return 10
}

func fmtDuration(d time.Duration) string {
	switch {
	case d == 0:
		return "-"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
