package es

import (
	"encoding/json"
	"testing"

	"github.com/DjordjeVuckovic/movie-hunter/internal/search"
	dquery "github.com/DjordjeVuckovic/movie-hunter/internal/types/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toMap round-trips the body through JSON so assertions see exactly what goes on the wire.
func toMap(t *testing.T, body any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func boolClause(t *testing.T, m map[string]any) map[string]any {
	t.Helper()
	q, ok := m["query"].(map[string]any)
	require.True(t, ok, "query missing")
	b, ok := q["bool"].(map[string]any)
	require.True(t, ok, "bool missing")
	return b
}

func TestBuildSearchBody_DarkKnight(t *testing.T) {
	intent := dquery.Intent{
		Text:   "dark knight",
		Genres: dquery.FacetSetFromFlags(map[string]bool{"Action": true, "Comedy": false}),
	}
	body := toMap(t, buildSearchBody(search.NewCompiler(nil).Compile(intent)))
	b := boolClause(t, body)

	must := b["must"].([]any)
	require.Len(t, must, 1)
	mm := must[0].(map[string]any)["multi_match"].(map[string]any)
	assert.Equal(t, "dark knight", mm["query"])
	assert.Equal(t, []any{"title^1.2", "storyline^1.3", "genres", "languages", "directors^1.1", "writers^1.1", "cast^1.1"}, mm["fields"])

	should := b["should"].([]any)
	require.Len(t, should, 4)
	first := should[0].(map[string]any)["term"].(map[string]any)["title.keyword"].(map[string]any)
	assert.Equal(t, "dark knight", first["value"])
	assert.InDelta(t, 2.1, first["boost"], 1e-6)
	for i, field := range []string{"directors.keyword", "writers.keyword", "cast.keyword"} {
		term := should[i+1].(map[string]any)["term"].(map[string]any)[field].(map[string]any)
		assert.Equal(t, "dark knight", term["value"])
		assert.InDelta(t, 2.0, term["boost"], 1e-6)
	}

	filter := b["filter"].([]any)
	require.Len(t, filter, 1)
	terms := filter[0].(map[string]any)["terms"].(map[string]any)
	assert.Equal(t, []any{"Action"}, terms["genres.keyword"])
	assert.NotContains(t, terms, "languages.keyword")

	assert.Nil(t, b["minimum_should_match"], "bonus clauses must stay advisory")
}

func TestBuildSearchBody_MatchAllWithLanguages(t *testing.T) {
	intent := dquery.Intent{
		Languages: dquery.FacetSetFromFlags(map[string]bool{"French": true, "English": true}),
	}
	body := toMap(t, buildSearchBody(search.NewCompiler(nil).Compile(intent)))
	b := boolClause(t, body)

	must := b["must"].([]any)
	require.Len(t, must, 1)
	assert.Contains(t, must[0].(map[string]any), "match_all")
	assert.Nil(t, b["should"])

	filter := b["filter"].([]any)
	require.Len(t, filter, 1)
	terms := filter[0].(map[string]any)["terms"].(map[string]any)
	assert.ElementsMatch(t, []any{"English", "French"}, terms["languages.keyword"])
}

func TestBuildSearchBody_SortHighlightSize(t *testing.T) {
	body := toMap(t, buildSearchBody(search.NewCompiler(nil).Compile(dquery.Intent{})))

	assert.Equal(t, []any{
		map[string]any{"_score": map[string]any{"order": "desc"}},
		map[string]any{"rating": map[string]any{"order": "desc"}},
		map[string]any{"released_date": map[string]any{"order": "asc"}},
	}, body["sort"])

	h := body["highlight"].(map[string]any)
	assert.Equal(t, []any{"<mark>"}, h["pre_tags"])
	assert.Equal(t, []any{"</mark>"}, h["post_tags"])
	fields := h["fields"].(map[string]any)
	for _, f := range []string{"title", "storyline", "genres", "languages", "directors", "writers", "cast"} {
		assert.Contains(t, fields, f)
	}
	assert.Len(t, fields, 7)

	assert.EqualValues(t, dquery.MaxResultWindow, body["size"])
	assert.EqualValues(t, dquery.MaxResultWindow, body["track_total_hits"])
}

func TestBuildSearchBody_ClampsSize(t *testing.T) {
	q := search.NewCompiler(nil).Compile(dquery.Intent{})
	q.Size = 50000

	assert.Equal(t, dquery.MaxResultWindow, buildSearchBody(q).Size)
}

func TestBuildAggregationBody(t *testing.T) {
	body := toMap(t, buildAggregationBody("genres.keyword", dquery.MaxFacetCardinality))

	assert.EqualValues(t, 0, body["size"])
	terms := body["aggs"].(map[string]any)[facetAggName].(map[string]any)["terms"].(map[string]any)
	assert.Equal(t, "genres.keyword", terms["field"])
	assert.EqualValues(t, dquery.MaxFacetCardinality, terms["size"])

	capped := buildAggregationBody("genres.keyword", 1_000_000)
	assert.Equal(t, dquery.MaxFacetCardinality, *capped.Aggs[facetAggName].Terms.Size)
}
