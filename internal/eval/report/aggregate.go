package report

import (
	"time"

	"github.com/DjordjeVuckovic/movie-hunter/internal/eval/runner"
)

func Generate(res *runner.Result, backend string) *Report {
	r := &Report{
		Meta: Meta{
			Suite:       res.SuiteName,
			Backend:     backend,
			Timestamp:   time.Now().UTC(),
			Environment: NewEnvironmentInfo(),
		},
		Config: Config{
			KValues:            res.Config.KValues,
			MaxK:               res.Config.MaxK,
			RelevanceThreshold: res.Config.RelevanceThreshold,
			Runs:               res.Config.Runs,
		},
	}

	for _, qID := range res.QueryOrder {
		for _, name := range res.Candidates {
			qr := res.Results[qID][name]
			entry := Entry{
				QueryID:    qID,
				Candidate:  name,
				NDCG:       qr.Scores.NDCG,
				Precision:  qr.Scores.Precision,
				Recall:     qr.Scores.Recall,
				AP:         qr.Scores.AP,
				RR:         qr.Scores.RR,
				Judged:     qr.Scores.NDCG != nil,
				TotalCount: qr.TotalCount,
				RankedIDs:  qr.RankedIDs,
				Latency:    qr.Latency,
			}
			if qr.Error != nil {
				entry.Error = qr.Error.Error()
			}
			r.PerQuery = append(r.PerQuery, entry)
		}
	}

	r.Aggregated = aggregate(r.PerQuery, res.Candidates, res.Config.KValues)
	return r
}

func aggregate(entries []Entry, candidates []string, kValues []int) []AggregatedEntry {
	out := make([]AggregatedEntry, 0, len(candidates))

	for _, name := range candidates {
		agg := AggregatedEntry{
			Candidate: name,
			NDCG:      make(map[int]float64, len(kValues)),
			Precision: make(map[int]float64, len(kValues)),
			Recall:    make(map[int]float64, len(kValues)),
		}

		var totalLatency time.Duration
		var measured int

		for _, e := range entries {
			if e.Candidate != name {
				continue
			}
			agg.QueryCount++
			if e.Error != "" {
				agg.ErrorCount++
				continue
			}

			measured++
			totalLatency += e.Latency.Mean

			if !e.Judged {
				continue
			}
			agg.JudgedCount++
			agg.MAP += e.AP
			agg.MRR += e.RR
			for _, k := range kValues {
				agg.NDCG[k] += e.NDCG[k]
				agg.Precision[k] += e.Precision[k]
				agg.Recall[k] += e.Recall[k]
			}
		}

		if measured > 0 {
			agg.MeanLatency = totalLatency / time.Duration(measured)
		}
		if agg.JudgedCount > 0 {
			n := float64(agg.JudgedCount)
			agg.MAP /= n
			agg.MRR /= n
			for _, k := range kValues {
				agg.NDCG[k] /= n
				agg.Precision[k] /= n
				agg.Recall[k] /= n
			}
		}

		out = append(out, agg)
	}

	return out
}
