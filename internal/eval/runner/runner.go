// Package runner replays a judged query suite through the movie searcher once per
// candidate ranking profile, so weight changes can be compared before they ship.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/movie-hunter/internal/eval/metrics"
	"github.com/DjordjeVuckovic/movie-hunter/internal/eval/suite"
	"github.com/DjordjeVuckovic/movie-hunter/internal/ranking"
	"github.com/DjordjeVuckovic/movie-hunter/internal/search"
	"github.com/DjordjeVuckovic/movie-hunter/internal/storage"
)

type Candidate struct {
	Name    string
	Profile *ranking.Profile
}

type Runner struct {
	config Config
}

func New(cfg Config) *Runner {
	if cfg.Runs <= 0 {
		cfg.Runs = DefaultRuns
	}
	if cfg.MaxK <= 0 {
		cfg.MaxK = DefaultMaxK
	}
	if len(cfg.KValues) == 0 {
		cfg.KValues = DefaultKValues
	}
	return &Runner{config: cfg}
}

// Run fails only on setup problems or cancellation. A failing query is recorded in its
// QueryResult and the run moves on.
func (r *Runner) Run(ctx context.Context, s *suite.Suite, executor storage.Executor, candidates []Candidate) (*Result, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidate profiles")
	}

	res := &Result{
		SuiteName: s.Name,
		Config:    r.config,
		Results:   make(map[string]map[string]QueryResult, len(s.Queries)),
	}

	searchers := make(map[string]*search.Searcher, len(candidates))
	for _, c := range candidates {
		if _, dup := searchers[c.Name]; dup {
			return nil, fmt.Errorf("duplicate candidate %q", c.Name)
		}
		searchers[c.Name] = search.NewSearcher(search.NewCompiler(c.Profile), executor)
		res.Candidates = append(res.Candidates, c.Name)
	}

	for i := range s.Queries {
		q := &s.Queries[i]
		res.QueryOrder = append(res.QueryOrder, q.ID)
		res.Results[q.ID] = make(map[string]QueryResult, len(candidates))

		for _, name := range res.Candidates {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			qr := r.runQuery(ctx, searchers[name], q)
			qr.Candidate = name
			if qr.Error != nil {
				slog.Warn("Query failed", "query", q.ID, "candidate", name, "error", qr.Error)
			}
			res.Results[q.ID][name] = qr
		}
	}

	return res, nil
}

func (r *Runner) runQuery(ctx context.Context, searcher *search.Searcher, q *suite.Query) QueryResult {
	qr := QueryResult{QueryID: q.ID}
	intent := q.Intent()

	for i := 0; i < r.config.WarmupRuns; i++ {
		_, _ = searcher.Search(ctx, intent)
	}

	latencies := make([]time.Duration, 0, r.config.Runs)
	for i := 0; i < r.config.Runs; i++ {
		start := time.Now()
		found, err := searcher.Search(ctx, intent)
		if err != nil {
			qr.Error = err
			return qr
		}
		latencies = append(latencies, time.Since(start))

		qr.TotalCount = found.Total.Value
		qr.RankedIDs = qr.RankedIDs[:0]
		for _, h := range found.Hits {
			if len(qr.RankedIDs) == r.config.MaxK {
				break
			}
			qr.RankedIDs = append(qr.RankedIDs, h.ID)
		}
	}

	qr.Latency = ComputeLatencyStats(latencies)
	if judgments := q.JudgmentMap(); len(judgments) > 0 {
		qr.Scores = metrics.ComputeAll(qr.RankedIDs, judgments, r.config.KValues, r.config.RelevanceThreshold)
	}
	return qr
}
