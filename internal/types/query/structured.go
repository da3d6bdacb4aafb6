package query

const (
	// MaxResultWindow is the hard ceiling on hits requested from the engine and on reported totals.
	MaxResultWindow = 10000
	// MaxFacetCardinality caps the number of buckets requested per facet aggregation.
	MaxFacetCardinality = 10000
)

// Highlight marker pair wrapped around matched spans. Styling belongs to the presentation layer.
const (
	MarkBegin = "<mark>"
	MarkEnd   = "</mark>"
)

const (
	ScoreField       = "_score"
	RatingField      = "rating"
	ReleaseDateField = "released_date"
)

// HighlightFields are the fields fragments are requested for, in display order.
var HighlightFields = []string{"title", "storyline", "genres", "languages", "directors", "writers", "cast"}

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

type SortKey struct {
	Field string
	Order SortOrder
}

// WeightedField is a field eligible for free-text or exact matching together with its boost.
type WeightedField struct {
	Field string
	Boost float64
}

// Relevance scores documents. A nil MultiMatch means "match every document".
type Relevance struct {
	MultiMatch *MultiMatch
}

func (r Relevance) MatchAll() bool {
	return r.MultiMatch == nil
}

// MultiMatch is an OR across Fields of a partial-token text match on Text.
type MultiMatch struct {
	Text   string
	Fields []WeightedField
}

// ExactTerm raises the score of documents whose Field equals Value exactly. It never excludes.
type ExactTerm struct {
	Field string
	Value string
	Boost float64
}

// TermsFilter is a mandatory, non-scoring restriction: Field must hold at least one of Values.
type TermsFilter struct {
	Facet  string
	Field  string
	Values []string
}

type Highlight struct {
	Fields  []string
	PreTag  string
	PostTag string
}

// Structured is a compiled search request. It is built per call and never mutated afterwards.
type Structured struct {
	Relevance Relevance
	Bonus     []ExactTerm
	Filters   []TermsFilter
	Sort      []SortKey
	Highlight Highlight
	Size      int
}
