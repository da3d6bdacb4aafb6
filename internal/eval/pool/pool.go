// Package pool gathers the top movies every candidate profile returned per query,
// so an annotator can grade them before they are folded back into a suite.
package pool

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/movie-hunter/internal/eval/runner"
	"github.com/DjordjeVuckovic/movie-hunter/internal/eval/suite"
	"gopkg.in/yaml.v3"
)

type File struct {
	Suite   string  `yaml:"suite"`
	Depth   int     `yaml:"depth"`
	Queries []Entry `yaml:"queries"`
}

type Entry struct {
	QueryID string        `yaml:"query_id"`
	Text    string        `yaml:"text,omitempty"`
	Movies  []PooledMovie `yaml:"movies"`
}

// PooledMovie carries the existing grade when the suite already judges the movie; nil means ungraded.
type PooledMovie struct {
	MovieID string   `yaml:"movie_id"`
	Sources []string `yaml:"sources"`
	Grade   *int     `yaml:"grade"`
}

// Build walks candidates in run order so the pool is stable between runs.
// Failed queries contribute nothing.
func Build(s *suite.Suite, res *runner.Result, depth int) *File {
	f := &File{Suite: s.Name, Depth: depth}

	for i := range s.Queries {
		q := &s.Queries[i]
		judged := q.JudgmentMap()
		entry := Entry{QueryID: q.ID, Text: q.Text, Movies: []PooledMovie{}}
		index := make(map[string]int)

		for _, name := range res.Candidates {
			qr, ok := res.Results[q.ID][name]
			if !ok || qr.Error != nil {
				continue
			}
			for _, id := range qr.RankedIDs[:min(depth, len(qr.RankedIDs))] {
				if pos, seen := index[id]; seen {
					entry.Movies[pos].Sources = append(entry.Movies[pos].Sources, name)
					continue
				}
				pm := PooledMovie{MovieID: id, Sources: []string{name}}
				if grade, ok := judged[id]; ok {
					pm.Grade = &grade
				}
				index[id] = len(entry.Movies)
				entry.Movies = append(entry.Movies, pm)
			}
		}

		f.Queries = append(f.Queries, entry)
	}

	return f
}

func Write(f *File, path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal pool file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write pool file: %w", err)
	}
	return nil
}

func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pool file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse pool file: %w", err)
	}
	return &f, nil
}
