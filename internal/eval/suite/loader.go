package suite

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/movie-hunter/internal/eval/metrics"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Queries) == 0 {
		return nil, fmt.Errorf("suite has no queries")
	}

	seen := make(map[string]bool, len(s.Queries))
	for i, q := range s.Queries {
		if q.ID == "" {
			return nil, fmt.Errorf("query at index %d has no id", i)
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate query id %q", q.ID)
		}
		seen[q.ID] = true

		for _, j := range q.Judgments {
			if j.MovieID == "" {
				return nil, fmt.Errorf("query %q has a judgment without movie_id", q.ID)
			}
			if j.Relevance < metrics.GradeNotRelevant || j.Relevance > metrics.GradeHighly {
				return nil, fmt.Errorf("query %q judges %s with relevance %d, want %d..%d",
					q.ID, j.MovieID, j.Relevance, metrics.GradeNotRelevant, metrics.GradeHighly)
			}
		}
	}

	return &s, nil
}
