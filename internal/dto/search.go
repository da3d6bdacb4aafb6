package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/DjordjeVuckovic/movie-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/movie-hunter/internal/types/query"
)

// SearchRequest is the body of POST /api/search.
// Facet maps carry a selection flag per value; only true values narrow the search.
type SearchRequest struct {
	Query     string          `json:"query,omitempty" example:"dark knight"`
	Text      string          `json:"text,omitempty"`
	Genres    map[string]bool `json:"genres,omitempty"`
	Languages map[string]bool `json:"languages,omitempty"`
}

type rawSearchRequest struct {
	Query     any            `json:"query"`
	Text      any            `json:"text"`
	Genres    map[string]any `json:"genres"`
	Languages map[string]any `json:"languages"`
}

// DecodeSearchRequest reads and validates a search body. Any shape problem is an
// *apperr.ValidationError, so nothing reaches the compiler.
func DecodeSearchRequest(r io.Reader) (*SearchRequest, error) {
	var raw rawSearchRequest
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return &SearchRequest{}, nil
		}
		return nil, apperr.NewValidationWrap("malformed search request body", err)
	}

	queryText, err := textField("query", raw.Query)
	if err != nil {
		return nil, err
	}
	text, err := textField("text", raw.Text)
	if err != nil {
		return nil, err
	}
	genres, err := facetFlags("genres", raw.Genres)
	if err != nil {
		return nil, err
	}
	languages, err := facetFlags("languages", raw.Languages)
	if err != nil {
		return nil, err
	}

	return &SearchRequest{
		Query:     queryText,
		Text:      text,
		Genres:    genres,
		Languages: languages,
	}, nil
}

func textField(name string, v any) (string, error) {
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", apperr.NewValidation(fmt.Sprintf("%s must be a string", name))
	}
	return s, nil
}

// facetFlags rejects the first non-boolean value, in key order so errors are stable.
func facetFlags(dimension string, raw map[string]any) (map[string]bool, error) {
	if raw == nil {
		return nil, nil
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	flags := make(map[string]bool, len(raw))
	for _, k := range keys {
		b, ok := raw[k].(bool)
		if !ok {
			return nil, apperr.NewValidation(fmt.Sprintf("%s.%s must be a boolean, got %T", dimension, k, raw[k]))
		}
		flags[k] = b
	}
	return flags, nil
}

// Intent prefers query over text when both are present.
func (r *SearchRequest) Intent() query.Intent {
	text := r.Query
	if strings.TrimSpace(text) == "" {
		text = r.Text
	}
	return query.Intent{
		Text:      text,
		Genres:    query.FacetSetFromFlags(r.Genres),
		Languages: query.FacetSetFromFlags(r.Languages),
	}
}

type SearchHit struct {
	ID         string              `json:"id" example:"tt0468569"`
	Source     json.RawMessage     `json:"source" swaggertype:"object"`
	Highlights map[string][]string `json:"highlights,omitempty"`
}

type SearchResponse struct {
	TotalCount    int64       `json:"total_count" example:"42"`
	TotalOverflow bool        `json:"total_overflow"`
	Hits          []SearchHit `json:"hits"`
}

func NewSearchResponse(res *query.Result) SearchResponse {
	hits := make([]SearchHit, 0, len(res.Hits))
	for _, h := range res.Hits {
		hits = append(hits, SearchHit{
			ID:         h.ID,
			Source:     h.Source,
			Highlights: h.Highlights,
		})
	}

	return SearchResponse{
		TotalCount:    res.Total.Value,
		TotalOverflow: res.Total.Overflow,
		Hits:          hits,
	}
}

type FacetsResponse struct {
	Genres    []string `json:"genres"`
	Languages []string `json:"languages"`
}

func NewFacetsResponse(c *query.Catalog) FacetsResponse {
	resp := FacetsResponse{Genres: c.Genres, Languages: c.Languages}
	if resp.Genres == nil {
		resp.Genres = []string{}
	}
	if resp.Languages == nil {
		resp.Languages = []string{}
	}
	return resp
}

type ErrorResponse struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
}
