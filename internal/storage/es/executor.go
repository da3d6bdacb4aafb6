package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/movie-hunter/internal/storage"
	dquery "github.com/DjordjeVuckovic/movie-hunter/internal/types/query"
	"github.com/elastic/go-elasticsearch/v8"
)

const totalRelationLowerBound = "gte"

type Executor struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewExecutor(ctx context.Context, config ClientConfig) (*Executor, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	e := &Executor{
		client:    client,
		indexName: config.IndexName,
	}

	if config.EnsureIndex {
		if err := NewIndexer(client, config.IndexName).EnsureIndex(ctx); err != nil {
			return nil, fmt.Errorf("failed to ensure index exists: %w", err)
		}
	}

	return e, nil
}

// Execute implements storage.Executor.
func (e *Executor) Execute(ctx context.Context, q *dquery.Structured) (*dquery.Result, error) {
	body := buildSearchBody(q)

	slog.Info("Executing es movie search",
		"index", e.indexName,
		"match_all", q.Relevance.MatchAll(),
		"should", len(q.Bonus),
		"filters", len(q.Filters),
		"size", body.Size)

	var res esSearchResponse
	if err := e.search(ctx, body, &res); err != nil {
		slog.Error("Elasticsearch search failed", "error", err, "index", e.indexName)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	hits := make([]dquery.Hit, 0, len(res.Hits.Hits))
	for _, h := range res.Hits.Hits {
		hits = append(hits, dquery.Hit{
			ID:         h.ID,
			Source:     h.Source,
			Highlights: h.Highlight,
		})
	}

	slog.Info("Es movie search results fetched",
		"total_matches", res.Hits.Total.Value,
		"total_relation", res.Hits.Total.Relation,
		"returned_count", len(hits))

	return &dquery.Result{
		Total: dquery.NewTotal(res.Hits.Total.Value, res.Hits.Total.Relation == totalRelationLowerBound),
		Hits:  hits,
	}, nil
}

// ExecuteAggregation implements storage.Executor with a terms aggregation and no hits.
func (e *Executor) ExecuteAggregation(ctx context.Context, field string, size int) ([]dquery.Bucket, error) {
	body := buildAggregationBody(field, size)

	slog.Info("Executing es terms aggregation", "index", e.indexName, "field", field, "size", *body.Aggs[facetAggName].Terms.Size)

	var res esSearchResponse
	if err := e.search(ctx, body, &res); err != nil {
		slog.Error("Elasticsearch aggregation failed", "error", err, "field", field)
		return nil, fmt.Errorf("failed to execute terms aggregation on %s: %w", field, err)
	}

	agg, ok := res.Aggregations[facetAggName]
	if !ok {
		return nil, fmt.Errorf("aggregation %q missing from response", facetAggName)
	}

	buckets := make([]dquery.Bucket, 0, len(agg.Buckets))
	for _, b := range agg.Buckets {
		buckets = append(buckets, dquery.Bucket{Value: b.Key, Count: b.DocCount})
	}

	return buckets, nil
}

// Healthy pings the cluster.
func (e *Executor) Healthy(ctx context.Context) bool {
	ok, err := e.client.Ping().Do(ctx)
	if err != nil {
		slog.Warn("Elasticsearch ping failed", "error", err)
		return false
	}
	return ok
}

// Close is a no-op; the transport keeps no resources beyond idle connections.
func (e *Executor) Close() error {
	return nil
}

func (e *Executor) search(ctx context.Context, body any, out *esSearchResponse) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	resp, err := e.client.Search().
		Index(e.indexName).
		Raw(bytes.NewReader(payload)).
		Perform(ctx)
	if err != nil {
		return fmt.Errorf("es request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("es read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("es status %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("es parse response: %w", err)
	}

	return nil
}

type esSearchResponse struct {
	Hits         esHits                   `json:"hits"`
	Aggregations map[string]esTermsResult `json:"aggregations"`
}

type esHits struct {
	Total esTotal `json:"total"`
	Hits  []esHit `json:"hits"`
}

type esTotal struct {
	Value    int64  `json:"value"`
	Relation string `json:"relation"`
}

type esHit struct {
	ID        string              `json:"_id"`
	Source    json.RawMessage     `json:"_source"`
	Highlight map[string][]string `json:"highlight,omitempty"`
}

type esTermsResult struct {
	Buckets []esBucket `json:"buckets"`
}

type esBucket struct {
	Key      string `json:"key"`
	DocCount int64  `json:"doc_count"`
}

// Compile-time interface assertions
var _ storage.Backend = (*Executor)(nil)
