// Package inmem provides a Bleve backed, in-process search backend seeded from a JSON file.
// It honors the same compiled request semantics as the Elasticsearch backend and is meant
// for local development and hermetic tests.
package inmem

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/DjordjeVuckovic/movie-hunter/internal/storage"
	"github.com/DjordjeVuckovic/movie-hunter/internal/types/document"
	dquery "github.com/DjordjeVuckovic/movie-hunter/internal/types/query"
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
	blevequery "github.com/blevesearch/bleve/v2/search/query"
	"github.com/blevesearch/bleve/v2/search/highlight/highlighter/html"
)

// Tags emitted by bleve's html fragment formatter. Document text is escaped, so
// these only ever appear as highlight markers.
const (
	bleveMarkBegin = "<mark>"
	bleveMarkEnd   = "</mark>"
)

const facetName = "facet"

// keywordFields get an exact ".keyword" companion next to the analyzed text field.
var keywordFields = []string{"title", "genres", "languages", "directors", "writers", "cast"}

type Executor struct {
	mu      sync.RWMutex
	index   bleve.Index
	sources map[string]json.RawMessage
	closed  bool
}

// NewExecutorFromFile seeds the index with the JSON array of movies at path.
func NewExecutorFromFile(path string) (*Executor, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	return NewExecutor(raws)
}

// NewExecutor indexes the given movie documents. Every document needs an id and a title.
func NewExecutor(movies []json.RawMessage) (*Executor, error) {
	idx, err := bleve.NewMemOnly(buildMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory index: %w", err)
	}

	e := &Executor{
		index:   idx,
		sources: make(map[string]json.RawMessage, len(movies)),
	}

	batch := idx.NewBatch()
	for i, raw := range movies {
		var movie document.Movie
		if err := json.Unmarshal(raw, &movie); err != nil {
			return nil, fmt.Errorf("decode movie at index %d: %w", i, err)
		}
		if !document.ContainsFields(movie, document.RequiredFields) {
			return nil, fmt.Errorf("movie at index %d is missing one of %v", i, document.RequiredFields)
		}

		var fields map[string]interface{}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("decode movie %s: %w", movie.ID, err)
		}
		if err := batch.Index(movie.ID, fields); err != nil {
			return nil, fmt.Errorf("failed to index movie %s: %w", movie.ID, err)
		}
		e.sources[movie.ID] = raw
	}

	if err := idx.Batch(batch); err != nil {
		return nil, fmt.Errorf("failed to execute batch: %w", err)
	}

	slog.Info("In-memory movie index ready", "documents", len(e.sources))
	return e, nil
}

func buildMapping() mapping.IndexMapping {
	im := bleve.NewIndexMapping()
	im.DefaultAnalyzer = standard.Name

	doc := bleve.NewDocumentMapping()
	for _, field := range keywordFields {
		text := bleve.NewTextFieldMapping()
		text.Analyzer = standard.Name

		exact := bleve.NewKeywordFieldMapping()
		exact.Name = field + ".keyword"
		exact.IncludeInAll = false

		doc.AddFieldMappingsAt(field, text, exact)
	}

	storyline := bleve.NewTextFieldMapping()
	storyline.Analyzer = standard.Name
	doc.AddFieldMappingsAt("storyline", storyline)

	doc.AddFieldMappingsAt("id", bleve.NewKeywordFieldMapping())
	doc.AddFieldMappingsAt("rating", bleve.NewNumericFieldMapping())
	doc.AddFieldMappingsAt("released_date", bleve.NewDateTimeFieldMapping())

	im.DefaultMapping = doc
	return im
}

// Execute implements storage.Executor.
func (e *Executor) Execute(ctx context.Context, q *dquery.Structured) (*dquery.Result, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		return nil, fmt.Errorf("index is closed")
	}

	size := q.Size
	if size <= 0 || size > dquery.MaxResultWindow {
		size = dquery.MaxResultWindow
	}

	req := bleve.NewSearchRequestOptions(buildQuery(q), size, 0, false)
	req.SortBy(sortKeys(q.Sort))
	if len(q.Highlight.Fields) > 0 {
		req.Highlight = bleve.NewHighlightWithStyle(html.Name)
		for _, f := range q.Highlight.Fields {
			req.Highlight.AddField(f)
		}
	}

	res, err := e.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	retag := highlightTags(q.Highlight)
	hits := make([]dquery.Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		hit := dquery.Hit{
			ID:     h.ID,
			Source: e.sources[h.ID],
		}
		if len(h.Fragments) > 0 {
			hit.Highlights = make(map[string][]string, len(h.Fragments))
			for field, fragments := range h.Fragments {
				for i := range fragments {
					fragments[i] = retag.Replace(fragments[i])
				}
				hit.Highlights[field] = fragments
			}
		}
		hits = append(hits, hit)
	}

	return &dquery.Result{
		Total: dquery.NewTotal(int64(res.Total), false),
		Hits:  hits,
	}, nil
}

// ExecuteAggregation implements storage.Executor with a terms facet over every document.
func (e *Executor) ExecuteAggregation(ctx context.Context, field string, size int) ([]dquery.Bucket, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		return nil, fmt.Errorf("index is closed")
	}

	if size <= 0 || size > dquery.MaxFacetCardinality {
		size = dquery.MaxFacetCardinality
	}

	req := bleve.NewSearchRequestOptions(bleve.NewMatchAllQuery(), 0, 0, false)
	req.AddFacet(facetName, bleve.NewFacetRequest(field, size))

	res, err := e.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("facet search on %s failed: %w", field, err)
	}

	facet, ok := res.Facets[facetName]
	if !ok || facet.Terms == nil {
		return []dquery.Bucket{}, nil
	}

	terms := facet.Terms.Terms()
	buckets := make([]dquery.Bucket, 0, len(terms))
	for _, t := range terms {
		buckets = append(buckets, dquery.Bucket{Value: t.Term, Count: int64(t.Count)})
	}
	return buckets, nil
}

func (e *Executor) Healthy(context.Context) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return !e.closed
}

func (e *Executor) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true
	return e.index.Close()
}

// highlightTags rewrites bleve's markers into the tags the request asked for.
func highlightTags(h dquery.Highlight) *strings.Replacer {
	pre, post := h.PreTag, h.PostTag
	if pre == "" {
		pre = bleveMarkBegin
	}
	if post == "" {
		post = bleveMarkEnd
	}
	return strings.NewReplacer(bleveMarkBegin, pre, bleveMarkEnd, post)
}

// buildQuery mirrors bool{must, should, filter}: relevance and facet filters are required,
// exact-match bonus terms are optional and only add score. Filter terms carry a zero boost
// so they contribute nothing to the score or to the query norm.
func buildQuery(q *dquery.Structured) blevequery.Query {
	bq := bleve.NewBooleanQuery()
	bq.AddMust(relevanceQuery(q.Relevance))

	for _, f := range q.Filters {
		members := make([]blevequery.Query, 0, len(f.Values))
		for _, v := range f.Values {
			tq := bleve.NewTermQuery(v)
			tq.SetField(f.Field)
			tq.SetBoost(0)
			members = append(members, tq)
		}
		bq.AddMust(bleve.NewDisjunctionQuery(members...))
	}

	for _, b := range q.Bonus {
		tq := bleve.NewTermQuery(b.Value)
		tq.SetField(b.Field)
		tq.SetBoost(b.Boost)
		bq.AddShould(tq)
	}

	return bq
}

func relevanceQuery(r dquery.Relevance) blevequery.Query {
	if r.MatchAll() {
		return bleve.NewMatchAllQuery()
	}

	perField := make([]blevequery.Query, 0, len(r.MultiMatch.Fields))
	for _, f := range r.MultiMatch.Fields {
		mq := bleve.NewMatchQuery(r.MultiMatch.Text)
		mq.SetField(f.Field)
		mq.SetBoost(f.Boost)
		perField = append(perField, mq)
	}
	return bleve.NewDisjunctionQuery(perField...)
}

// sortKeys appends the document id so equal keys always come back in the same order.
func sortKeys(keys []dquery.SortKey) []string {
	order := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		if k.Order == dquery.Desc {
			order = append(order, "-"+k.Field)
		} else {
			order = append(order, k.Field)
		}
	}
	return append(order, "_id")
}

// Compile-time interface assertions
var _ storage.Backend = (*Executor)(nil)
