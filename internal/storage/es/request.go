package es

import (
	"strconv"

	dquery "github.com/DjordjeVuckovic/movie-hunter/internal/types/query"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

const facetAggName = "facet"

// searchBody is the _search payload. Highlight is kept local so field order and
// tag pairs are written exactly as compiled.
type searchBody struct {
	Query          *types.Query             `json:"query"`
	Sort           []types.SortCombinations `json:"sort,omitempty"`
	Highlight      *highlightBody           `json:"highlight,omitempty"`
	Size           int                      `json:"size"`
	TrackTotalHits int                      `json:"track_total_hits"`
}

type highlightBody struct {
	Fields   map[string]struct{} `json:"fields"`
	PreTags  []string            `json:"pre_tags"`
	PostTags []string            `json:"post_tags"`
}

type aggregationBody struct {
	Size int                           `json:"size"`
	Aggs map[string]types.Aggregations `json:"aggs"`
}

// buildSearchBody translates a compiled request into bool{must, should, filter}.
// Exact-match bonus clauses live in should only, so they add score without narrowing the hit set.
func buildSearchBody(q *dquery.Structured) *searchBody {
	boolQuery := &types.BoolQuery{
		Must: []types.Query{relevanceQuery(q.Relevance)},
	}

	for _, b := range q.Bonus {
		boost := float32(b.Boost)
		boolQuery.Should = append(boolQuery.Should, types.Query{
			Term: map[string]types.TermQuery{
				b.Field: {Value: b.Value, Boost: &boost},
			},
		})
	}

	for _, f := range q.Filters {
		values := make([]types.FieldValue, 0, len(f.Values))
		for _, v := range f.Values {
			values = append(values, v)
		}
		boolQuery.Filter = append(boolQuery.Filter, types.Query{
			Terms: &types.TermsQuery{
				TermsQuery: map[string]types.TermsQueryField{f.Field: values},
			},
		})
	}

	size := q.Size
	if size <= 0 || size > dquery.MaxResultWindow {
		size = dquery.MaxResultWindow
	}

	return &searchBody{
		Query:          &types.Query{Bool: boolQuery},
		Sort:           sortOptions(q.Sort),
		Highlight:      highlight(q.Highlight),
		Size:           size,
		TrackTotalHits: dquery.MaxResultWindow,
	}
}

func relevanceQuery(r dquery.Relevance) types.Query {
	if r.MatchAll() {
		return types.Query{MatchAll: types.NewMatchAllQuery()}
	}

	// Format: "title^1.2", unboosted fields are sent bare
	fields := make([]string, 0, len(r.MultiMatch.Fields))
	for _, f := range r.MultiMatch.Fields {
		if f.Boost != 1.0 {
			fields = append(fields, f.Field+"^"+strconv.FormatFloat(f.Boost, 'f', -1, 64))
		} else {
			fields = append(fields, f.Field)
		}
	}

	return types.Query{
		MultiMatch: &types.MultiMatchQuery{
			Query:  r.MultiMatch.Text,
			Fields: fields,
		},
	}
}

func sortOptions(keys []dquery.SortKey) []types.SortCombinations {
	sorts := make([]types.SortCombinations, 0, len(keys))
	for _, k := range keys {
		order := sortorder.Desc
		if k.Order == dquery.Asc {
			order = sortorder.Asc
		}
		sorts = append(sorts, &types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				k.Field: {Order: &order},
			},
		})
	}
	return sorts
}

func highlight(h dquery.Highlight) *highlightBody {
	if len(h.Fields) == 0 {
		return nil
	}

	fields := make(map[string]struct{}, len(h.Fields))
	for _, f := range h.Fields {
		fields[f] = struct{}{}
	}

	return &highlightBody{
		Fields:   fields,
		PreTags:  []string{h.PreTag},
		PostTags: []string{h.PostTag},
	}
}

func buildAggregationBody(field string, size int) *aggregationBody {
	if size <= 0 || size > dquery.MaxFacetCardinality {
		size = dquery.MaxFacetCardinality
	}

	return &aggregationBody{
		Size: 0,
		Aggs: map[string]types.Aggregations{
			facetAggName: {
				Terms: &types.TermsAggregation{
					Field: &field,
					Size:  &size,
				},
			},
		},
	}
}
