package runner

import (
	"github.com/DjordjeVuckovic/movie-hunter/internal/eval/metrics"
)

type QueryResult struct {
	QueryID    string
	Candidate  string
	Scores     metrics.ScoreSet
	RankedIDs  []string
	TotalCount int64
	Latency    LatencyStats
	Error      error
}

// Result holds one QueryResult per query and candidate profile.
type Result struct {
	SuiteName  string
	Config     Config
	Candidates []string
	QueryOrder []string
	Results    map[string]map[string]QueryResult // [queryID][candidate]
}
