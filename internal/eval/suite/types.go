package suite

import (
	"github.com/DjordjeVuckovic/movie-hunter/internal/types/query"
)

type Suite struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Version     string  `yaml:"version"`
	Queries     []Query `yaml:"queries"`
}

// Query is one search as a user would issue it, plus graded judgments for the movies
// that should come back. Grades run from 0 (not relevant) to 3 (highly relevant).
type Query struct {
	ID          string     `yaml:"id"`
	Description string     `yaml:"description"`
	Text        string     `yaml:"text"`
	Genres      []string   `yaml:"genres,omitempty"`
	Languages   []string   `yaml:"languages,omitempty"`
	Judgments   []Judgment `yaml:"judgments"`
}

type Judgment struct {
	MovieID   string `yaml:"movie_id"`
	Relevance int    `yaml:"relevance"`
}

func (q *Query) Intent() query.Intent {
	return query.Intent{
		Text:      q.Text,
		Genres:    query.NewFacetSet(q.Genres...),
		Languages: query.NewFacetSet(q.Languages...),
	}
}

// JudgmentMap keys the judgments by movie id.
func (q *Query) JudgmentMap() map[string]int {
	m := make(map[string]int, len(q.Judgments))
	for _, j := range q.Judgments {
		m[j.MovieID] = j.Relevance
	}
	return m
}
