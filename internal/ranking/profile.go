// Package ranking holds the versioned field weight tables used to score free-text matches.
// Tuning a weight means shipping a new profile, not touching the query compiler.
package ranking

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed profiles/v1.yaml
var defaultProfile []byte

type FieldWeight struct {
	Field string  `yaml:"field"`
	Boost float64 `yaml:"boost"`
}

// ExactMatchBoost targets the keyword (exact value) variant of a text field.
type ExactMatchBoost struct {
	Field string  `yaml:"field"`
	Boost float64 `yaml:"boost"`
}

// FacetFields names the exact, case-preserving fields facet filters and aggregations run against.
type FacetFields struct {
	Genre    string `yaml:"genre"`
	Language string `yaml:"language"`
}

type Profile struct {
	Version string            `yaml:"version"`
	Fields  []FieldWeight     `yaml:"fields"`
	Exact   []ExactMatchBoost `yaml:"exact"`
	Facets  FacetFields       `yaml:"facets"`
}

// Default returns the built-in profile. It panics only if the embedded file is broken.
func Default() *Profile {
	p, err := Parse(defaultProfile)
	if err != nil {
		panic(fmt.Sprintf("embedded ranking profile is invalid: %v", err))
	}
	return p
}

func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read ranking profile: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse ranking profile YAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Profile) Validate() error {
	if p.Version == "" {
		return fmt.Errorf("ranking profile has no version")
	}
	if len(p.Fields) == 0 {
		return fmt.Errorf("ranking profile %q has no fields", p.Version)
	}

	seen := make(map[string]bool, len(p.Fields))
	for i, f := range p.Fields {
		if f.Field == "" {
			return fmt.Errorf("ranking profile %q: field at index %d has no name", p.Version, i)
		}
		if f.Boost <= 0 {
			return fmt.Errorf("ranking profile %q: field %q must have a positive boost, got %v", p.Version, f.Field, f.Boost)
		}
		if seen[f.Field] {
			return fmt.Errorf("ranking profile %q: duplicate field %q", p.Version, f.Field)
		}
		seen[f.Field] = true
	}

	seen = make(map[string]bool, len(p.Exact))
	for i, e := range p.Exact {
		if e.Field == "" {
			return fmt.Errorf("ranking profile %q: exact entry at index %d has no name", p.Version, i)
		}
		if e.Boost <= 0 {
			return fmt.Errorf("ranking profile %q: exact field %q must have a positive boost, got %v", p.Version, e.Field, e.Boost)
		}
		if seen[e.Field] {
			return fmt.Errorf("ranking profile %q: duplicate exact field %q", p.Version, e.Field)
		}
		seen[e.Field] = true
	}

	if p.Facets.Genre == "" || p.Facets.Language == "" {
		return fmt.Errorf("ranking profile %q: facet fields for genre and language are required", p.Version)
	}

	return nil
}
