package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid suite", func(t *testing.T) {
		yaml := `
name: movies
version: "1"
queries:
  - id: dark-knight
    text: The Dark Knight
    judgments:
      - movie_id: tt0468569
        relevance: 3
      - movie_id: tt1345836
        relevance: 2
  - id: anime
    genres: [Animation]
    languages: [Japanese]
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "movies", s.Name)
		require.Len(t, s.Queries, 2)
		assert.Equal(t, map[string]int{"tt0468569": 3, "tt1345836": 2}, s.Queries[0].JudgmentMap())

		intent := s.Queries[1].Intent()
		assert.False(t, intent.HasText())
		assert.True(t, intent.Genres.Has("Animation"))
		assert.True(t, intent.Languages.Has("Japanese"))
	})

	errorCases := map[string]struct {
		yaml string
		want string
	}{
		"no queries": {
			yaml: "name: empty\n",
			want: "no queries",
		},
		"missing id": {
			yaml: "queries:\n  - text: heat\n",
			want: "has no id",
		},
		"duplicate id": {
			yaml: "queries:\n  - id: q1\n  - id: q1\n",
			want: `duplicate query id "q1"`,
		},
		"judgment without movie": {
			yaml: "queries:\n  - id: q1\n    judgments:\n      - relevance: 2\n",
			want: "without movie_id",
		},
		"grade out of range": {
			yaml: "queries:\n  - id: q1\n    judgments:\n      - movie_id: tt1\n        relevance: 5\n",
			want: "relevance 5",
		},
		"malformed yaml": {
			yaml: "queries: [",
			want: "parse suite YAML",
		},
	}

	for name, tc := range errorCases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Run("bundled suite", func(t *testing.T) {
		s, err := LoadFromFile(filepath.Join("..", "..", "..", "testdata", "eval", "movies_v1.yaml"))
		require.NoError(t, err)
		assert.NotEmpty(t, s.Queries)
	})

	t.Run("from temp dir", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "suite.yaml")
		require.NoError(t, os.WriteFile(path, []byte("queries:\n  - id: q1\n    text: heat\n"), 0o600))

		s, err := LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "heat", s.Queries[0].Text)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "read suite file")
	})
}
