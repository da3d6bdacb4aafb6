package search

import (
	"context"
	"errors"
	"log/slog"

	"github.com/DjordjeVuckovic/movie-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/movie-hunter/internal/storage"
	"github.com/DjordjeVuckovic/movie-hunter/internal/types/query"
)

// Searcher compiles an intent and runs it exactly once against the executor.
type Searcher struct {
	compiler *Compiler
	executor storage.Executor
}

func NewSearcher(compiler *Compiler, executor storage.Executor) *Searcher {
	return &Searcher{
		compiler: compiler,
		executor: executor,
	}
}

// Search never retries and never relaxes the query: an executor failure is returned
// as an *apperr.ExecutionError wrapping the original error.
func (s *Searcher) Search(ctx context.Context, intent query.Intent) (*query.Result, error) {
	q := s.compiler.Compile(intent)
	if q.Size > query.MaxResultWindow {
		q.Size = query.MaxResultWindow
	}

	slog.Debug("Executing movie search",
		"has_text", !q.Relevance.MatchAll(),
		"bonus_clauses", len(q.Bonus),
		"filters", len(q.Filters),
		"profile", s.compiler.Profile().Version)

	res, err := s.executor.Execute(ctx, q)
	if err != nil {
		return nil, apperr.NewExecution("search", err)
	}
	if res == nil {
		return nil, apperr.NewExecution("search", errors.New("empty result"))
	}

	if len(res.Hits) > query.MaxResultWindow {
		res.Hits = res.Hits[:query.MaxResultWindow]
	}
	res.Total = query.NewTotal(res.Total.Value, res.Total.Overflow)

	return res, nil
}
