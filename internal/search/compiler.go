package search

import (
	"strings"

	"github.com/DjordjeVuckovic/movie-hunter/internal/ranking"
	"github.com/DjordjeVuckovic/movie-hunter/internal/types/query"
)

const (
	FacetGenre    = "genre"
	FacetLanguage = "language"
)

// Compiler turns a search intent into a structured request.
// It holds only the immutable ranking profile and is safe for concurrent use.
type Compiler struct {
	profile *ranking.Profile
}

func NewCompiler(profile *ranking.Profile) *Compiler {
	if profile == nil {
		profile = ranking.Default()
	}
	return &Compiler{profile: profile}
}

func (c *Compiler) Profile() *ranking.Profile {
	return c.profile
}

// Compile is pure: the same intent always yields a structurally identical request.
func (c *Compiler) Compile(intent query.Intent) *query.Structured {
	text := strings.TrimSpace(intent.Text)

	q := &query.Structured{
		Relevance: c.relevance(text),
		Bonus:     c.bonus(text),
		Filters:   c.filters(intent),
		Sort: []query.SortKey{
			{Field: query.ScoreField, Order: query.Desc},
			{Field: query.RatingField, Order: query.Desc},
			{Field: query.ReleaseDateField, Order: query.Asc},
		},
		Highlight: query.Highlight{
			Fields:  append([]string(nil), query.HighlightFields...),
			PreTag:  query.MarkBegin,
			PostTag: query.MarkEnd,
		},
		Size: query.MaxResultWindow,
	}

	return q
}

func (c *Compiler) relevance(text string) query.Relevance {
	if text == "" {
		return query.Relevance{}
	}

	fields := make([]query.WeightedField, 0, len(c.profile.Fields))
	for _, f := range c.profile.Fields {
		fields = append(fields, query.WeightedField{Field: f.Field, Boost: f.Boost})
	}

	return query.Relevance{
		MultiMatch: &query.MultiMatch{Text: text, Fields: fields},
	}
}

// bonus rewards documents whose exact field value equals the whole query text.
func (c *Compiler) bonus(text string) []query.ExactTerm {
	if text == "" || len(c.profile.Exact) == 0 {
		return nil
	}

	terms := make([]query.ExactTerm, 0, len(c.profile.Exact))
	for _, e := range c.profile.Exact {
		terms = append(terms, query.ExactTerm{Field: e.Field, Value: text, Boost: e.Boost})
	}
	return terms
}

// filters emits one membership clause per facet dimension with a selection, genre first.
func (c *Compiler) filters(intent query.Intent) []query.TermsFilter {
	var filters []query.TermsFilter

	if intent.Genres.Len() > 0 {
		filters = append(filters, query.TermsFilter{
			Facet:  FacetGenre,
			Field:  c.profile.Facets.Genre,
			Values: intent.Genres.Values(),
		})
	}
	if intent.Languages.Len() > 0 {
		filters = append(filters, query.TermsFilter{
			Facet:  FacetLanguage,
			Field:  c.profile.Facets.Language,
			Values: intent.Languages.Values(),
		})
	}

	return filters
}
