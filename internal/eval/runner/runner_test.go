package runner

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/movie-hunter/internal/eval/suite"
	"github.com/DjordjeVuckovic/movie-hunter/internal/ranking"
	"github.com/DjordjeVuckovic/movie-hunter/internal/storage/inmem"
	"github.com/DjordjeVuckovic/movie-hunter/internal/types/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededExecutor(t *testing.T) *inmem.Executor {
	t.Helper()
	exec, err := inmem.NewExecutorFromFile(filepath.Join("..", "..", "..", "testdata", "movies.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = exec.Close() })
	return exec
}

func bundledSuite(t *testing.T) *suite.Suite {
	t.Helper()
	s, err := suite.LoadFromFile(filepath.Join("..", "..", "..", "testdata", "eval", "movies_v1.yaml"))
	require.NoError(t, err)
	return s
}

func TestRunner_Run(t *testing.T) {
	r := New(Config{KValues: []int{1, 5}, Runs: 2, WarmupRuns: 1, RelevanceThreshold: 1})

	res, err := r.Run(context.Background(), bundledSuite(t), seededExecutor(t), []Candidate{
		{Name: "v1", Profile: ranking.Default()},
	})

	require.NoError(t, err)
	assert.Equal(t, "movie-relevance", res.SuiteName)
	assert.Equal(t, []string{"v1"}, res.Candidates)
	require.Len(t, res.QueryOrder, 5)

	title := res.Results["exact-title"]["v1"]
	require.NoError(t, title.Error)
	assert.Equal(t, "tt0468569", title.RankedIDs[0])
	assert.InDelta(t, 1.0, title.Scores.RR, 1e-9)
	assert.Equal(t, 2, title.Latency.SampleCount)

	for _, id := range []string{"family-animation", "italian-drama"} {
		qr := res.Results[id]["v1"]
		require.NoError(t, qr.Error, id)
		assert.EqualValues(t, 2, qr.TotalCount, id)
		assert.InDelta(t, 1.0, qr.Scores.NDCG[5], 1e-9, id)
		assert.InDelta(t, 1.0, qr.Scores.Recall[5], 1e-9, id)
		assert.InDelta(t, 1.0, qr.Scores.AP, 1e-9, id)
	}
}

func TestRunner_MaxKCutsRankedList(t *testing.T) {
	s := &suite.Suite{Queries: []suite.Query{{ID: "everything"}}}

	res, err := New(Config{MaxK: 3}).Run(context.Background(), s, seededExecutor(t), []Candidate{
		{Name: "v1", Profile: ranking.Default()},
	})

	require.NoError(t, err)
	qr := res.Results["everything"]["v1"]
	assert.Len(t, qr.RankedIDs, 3)
	assert.EqualValues(t, 8, qr.TotalCount)
	assert.Nil(t, qr.Scores.NDCG)
}

type failingExecutor struct{}

func (failingExecutor) Execute(context.Context, *query.Structured) (*query.Result, error) {
	return nil, errors.New("cluster unavailable")
}

func (failingExecutor) ExecuteAggregation(context.Context, string, int) ([]query.Bucket, error) {
	return nil, errors.New("cluster unavailable")
}

func TestRunner_RecordsQueryErrors(t *testing.T) {
	s := &suite.Suite{Queries: []suite.Query{{ID: "q1", Text: "heat"}, {ID: "q2"}}}

	res, err := New(DefaultConfig()).Run(context.Background(), s, failingExecutor{}, []Candidate{
		{Name: "v1", Profile: ranking.Default()},
	})

	require.NoError(t, err)
	for _, id := range []string{"q1", "q2"} {
		assert.ErrorContains(t, res.Results[id]["v1"].Error, "cluster unavailable")
	}
}

func TestRunner_SetupErrors(t *testing.T) {
	s := &suite.Suite{Queries: []suite.Query{{ID: "q1"}}}
	ctx := context.Background()
	r := New(DefaultConfig())

	_, err := r.Run(ctx, s, failingExecutor{}, nil)
	assert.ErrorContains(t, err, "no candidate profiles")

	_, err = r.Run(ctx, s, failingExecutor{}, []Candidate{
		{Name: "v1", Profile: ranking.Default()},
		{Name: "v1", Profile: ranking.Default()},
	})
	assert.ErrorContains(t, err, `duplicate candidate "v1"`)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = r.Run(cancelled, s, failingExecutor{}, []Candidate{{Name: "v1", Profile: ranking.Default()}})
	assert.ErrorIs(t, err, context.Canceled)
}
