package query

import (
	"sort"
	"strings"
)

// FacetSet is the set of positively selected values for one facet dimension.
// Membership only: no ordering, no duplicates, no weighting.
type FacetSet map[string]struct{}

func NewFacetSet(values ...string) FacetSet {
	s := make(FacetSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// FacetSetFromFlags keeps only the keys explicitly mapped to true.
func FacetSetFromFlags(flags map[string]bool) FacetSet {
	s := make(FacetSet, len(flags))
	for v, selected := range flags {
		if selected {
			s[v] = struct{}{}
		}
	}
	return s
}

func (s FacetSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

func (s FacetSet) Len() int {
	return len(s)
}

// Values returns the members sorted, so compiled requests never depend on map iteration order.
func (s FacetSet) Values() []string {
	values := make([]string, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Intent is what the user asked for: free text plus facet selections.
// An empty (or whitespace-only) Text means "match everything".
type Intent struct {
	Text      string
	Genres    FacetSet
	Languages FacetSet
}

func (i Intent) HasText() bool {
	return strings.TrimSpace(i.Text) != ""
}
