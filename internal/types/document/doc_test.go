package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovie_ContainsFields(t *testing.T) {
	full := Movie{
		ID:           "tt0468569",
		Title:        "The Dark Knight",
		Storyline:    "Batman raises the stakes in his war on crime.",
		Genres:       []string{"Action", "Crime"},
		Languages:    []string{"English"},
		Directors:    []string{"Christopher Nolan"},
		Writers:      []string{"Jonathan Nolan"},
		Cast:         []string{"Christian Bale"},
		Rating:       9,
		ReleasedDate: "2008-07-18",
	}

	assert.True(t, ContainsFields(full, RequiredFields))
	assert.True(t, ContainsFields(full, []string{"storyline", "genres", "languages", "directors", "writers", "cast", "rating", "released_date"}))
	assert.False(t, ContainsFields(full, []string{"budget"}))

	assert.False(t, ContainsFields(Movie{ID: "x"}, RequiredFields))
	assert.False(t, ContainsFields(Movie{Title: "Untitled"}, RequiredFields))
}
