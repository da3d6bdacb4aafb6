package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/movie-hunter/internal/eval/runner"
)

type Report struct {
	Meta       Meta              `json:"meta"`
	Config     Config            `json:"config"`
	Aggregated []AggregatedEntry `json:"aggregated"`
	PerQuery   []Entry           `json:"per_query"`
}

type Meta struct {
	Suite       string          `json:"suite"`
	Backend     string          `json:"backend"`
	Timestamp   time.Time       `json:"timestamp"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type Config struct {
	KValues            []int `json:"k_values"`
	MaxK               int   `json:"max_k"`
	RelevanceThreshold int   `json:"relevance_threshold"`
	Runs               int   `json:"runs"`
}

type Entry struct {
	QueryID    string              `json:"query_id"`
	Candidate  string              `json:"candidate"`
	NDCG       map[int]float64     `json:"ndcg,omitempty"`
	Precision  map[int]float64     `json:"precision,omitempty"`
	Recall     map[int]float64     `json:"recall,omitempty"`
	AP         float64             `json:"ap"`
	RR         float64             `json:"rr"`
	Judged     bool                `json:"judged"`
	TotalCount int64               `json:"total_count"`
	RankedIDs  []string            `json:"ranked_ids"`
	Latency    runner.LatencyStats `json:"latency"`
	Error      string              `json:"error,omitempty"`
}

// AggregatedEntry averages quality metrics over the judged queries that succeeded.
type AggregatedEntry struct {
	Candidate   string          `json:"candidate"`
	NDCG        map[int]float64 `json:"ndcg"`
	Precision   map[int]float64 `json:"precision"`
	Recall      map[int]float64 `json:"recall"`
	MAP         float64         `json:"map"`
	MRR         float64         `json:"mrr"`
	MeanLatency time.Duration   `json:"mean_latency"`
	QueryCount  int             `json:"query_count"`
	JudgedCount int             `json:"judged_count"`
	ErrorCount  int             `json:"error_count"`
}
