package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/movie-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/movie-hunter/internal/types/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSearchRequest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		want        *SearchRequest
		errContains string
	}{
		{
			name: "full request",
			body: `{"query": "dark knight", "genres": {"Action": true, "Comedy": false}, "languages": {}}`,
			want: &SearchRequest{
				Query:     "dark knight",
				Genres:    map[string]bool{"Action": true, "Comedy": false},
				Languages: map[string]bool{},
			},
		},
		{
			name: "text alias",
			body: `{"text": "amelie"}`,
			want: &SearchRequest{Text: "amelie"},
		},
		{
			name: "empty body",
			body: ``,
			want: &SearchRequest{},
		},
		{
			name:        "string facet flag",
			body:        `{"genres": {"Action": "yes"}}`,
			errContains: "genres.Action must be a boolean",
		},
		{
			name:        "numeric language flag",
			body:        `{"languages": {"French": 1}}`,
			errContains: "languages.French must be a boolean",
		},
		{
			name:        "null facet flag",
			body:        `{"languages": {"French": null}}`,
			errContains: "languages.French must be a boolean",
		},
		{
			name:        "non-string query",
			body:        `{"query": 42}`,
			errContains: "query must be a string",
		},
		{
			name:        "facets as a list",
			body:        `{"genres": ["Action"]}`,
			errContains: "malformed search request body",
		},
		{
			name:        "not json",
			body:        `dark knight`,
			errContains: "malformed search request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSearchRequest(strings.NewReader(tt.body))

			if tt.errContains != "" {
				require.Error(t, err)
				var ve *apperr.ValidationError
				require.True(t, errors.As(err, &ve), "expected a validation error, got %T", err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchRequest_Intent(t *testing.T) {
	t.Run("query wins over text", func(t *testing.T) {
		intent := (&SearchRequest{Query: "heat", Text: "cold"}).Intent()
		assert.Equal(t, "heat", intent.Text)
	})

	t.Run("blank query falls back to text", func(t *testing.T) {
		intent := (&SearchRequest{Query: "  ", Text: "cold"}).Intent()
		assert.Equal(t, "cold", intent.Text)
	})

	t.Run("only true flags select", func(t *testing.T) {
		intent := (&SearchRequest{
			Genres:    map[string]bool{"Action": true, "Comedy": false},
			Languages: map[string]bool{"French": false},
		}).Intent()

		assert.Equal(t, []string{"Action"}, intent.Genres.Values())
		assert.Zero(t, intent.Languages.Len())
	})
}

func TestNewSearchResponse(t *testing.T) {
	res := &query.Result{
		Total: query.Total{Value: query.MaxResultWindow, Overflow: true},
		Hits: []query.Hit{
			{
				ID:         "tt0468569",
				Source:     json.RawMessage(`{"title":"The Dark Knight"}`),
				Highlights: map[string][]string{"title": {"The <mark>Dark</mark> Knight"}},
			},
		},
	}

	raw, err := json.Marshal(NewSearchResponse(res))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"total_count": 10000,
		"total_overflow": true,
		"hits": [{
			"id": "tt0468569",
			"source": {"title": "The Dark Knight"},
			"highlights": {"title": ["The <mark>Dark</mark> Knight"]}
		}]
	}`, string(raw))
}

func TestNewSearchResponse_NoHits(t *testing.T) {
	raw, err := json.Marshal(NewSearchResponse(&query.Result{}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"total_count": 0, "total_overflow": false, "hits": []}`, string(raw))
}

func TestNewFacetsResponse(t *testing.T) {
	raw, err := json.Marshal(NewFacetsResponse(&query.Catalog{Genres: []string{"Drama"}}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"genres": ["Drama"], "languages": []}`, string(raw))
}
