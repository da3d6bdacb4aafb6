package ranking

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p := Default()

	assert.Equal(t, "v1", p.Version)
	assert.Equal(t, []FieldWeight{
		{Field: "title", Boost: 1.2},
		{Field: "storyline", Boost: 1.3},
		{Field: "genres", Boost: 1},
		{Field: "languages", Boost: 1},
		{Field: "directors", Boost: 1.1},
		{Field: "writers", Boost: 1.1},
		{Field: "cast", Boost: 1.1},
	}, p.Fields)
	assert.Equal(t, []ExactMatchBoost{
		{Field: "title.keyword", Boost: 2.1},
		{Field: "directors.keyword", Boost: 2},
		{Field: "writers.keyword", Boost: 2},
		{Field: "cast.keyword", Boost: 2},
	}, p.Exact)
	assert.Equal(t, FacetFields{Genre: "genres.keyword", Language: "languages.keyword"}, p.Facets)
}

func TestParse(t *testing.T) {
	t.Run("valid profile without exact entries", func(t *testing.T) {
		yaml := `
version: v2-experiment
fields:
  - field: title
    boost: 3
facets:
  genre: genres.keyword
  language: languages.keyword
`
		p, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "v2-experiment", p.Version)
		assert.Len(t, p.Fields, 1)
		assert.Empty(t, p.Exact)
	})

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			yaml:    "version: [",
			wantErr: "parse ranking profile YAML",
		},
		{
			name: "missing version",
			yaml: `
fields:
  - field: title
    boost: 1
facets: {genre: g, language: l}
`,
			wantErr: "no version",
		},
		{
			name: "no fields",
			yaml: `
version: v1
facets: {genre: g, language: l}
`,
			wantErr: "no fields",
		},
		{
			name: "zero boost",
			yaml: `
version: v1
fields:
  - field: title
    boost: 0
facets: {genre: g, language: l}
`,
			wantErr: "positive boost",
		},
		{
			name: "negative exact boost",
			yaml: `
version: v1
fields:
  - field: title
    boost: 1
exact:
  - field: title.keyword
    boost: -2
facets: {genre: g, language: l}
`,
			wantErr: "positive boost",
		},
		{
			name: "duplicate field",
			yaml: `
version: v1
fields:
  - field: title
    boost: 1
  - field: title
    boost: 2
facets: {genre: g, language: l}
`,
			wantErr: "duplicate field",
		},
		{
			name: "missing facet field",
			yaml: `
version: v1
fields:
  - field: title
    boost: 1
facets: {genre: g}
`,
			wantErr: "facet fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("reads profile from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ranking.yaml")
		require.NoError(t, os.WriteFile(path, defaultProfile, 0o600))

		p, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Default(), p)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read ranking profile")
	})
}
