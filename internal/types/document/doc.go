package document

type Document interface {
	ContainsField(field string) bool
}

func ContainsFields[D Document](doc D, fields []string) bool {
	for _, field := range fields {
		if !doc.ContainsField(field) {
			return false
		}
	}
	return true
}

// Movie is the indexed shape of a movie. Text fields also carry an exact ".keyword" variant in the index.
type Movie struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Storyline    string   `json:"storyline,omitempty"`
	Genres       []string `json:"genres,omitempty"`
	Languages    []string `json:"languages,omitempty"`
	Directors    []string `json:"directors,omitempty"`
	Writers      []string `json:"writers,omitempty"`
	Cast         []string `json:"cast,omitempty"`
	Rating       float64  `json:"rating,omitempty"`
	ReleasedDate string   `json:"released_date,omitempty"`
}

func (m Movie) ContainsField(field string) bool {
	switch field {
	case "id":
		return m.ID != ""
	case "title":
		return m.Title != ""
	case "storyline":
		return m.Storyline != ""
	case "genres":
		return len(m.Genres) > 0
	case "languages":
		return len(m.Languages) > 0
	case "directors":
		return len(m.Directors) > 0
	case "writers":
		return len(m.Writers) > 0
	case "cast":
		return len(m.Cast) > 0
	case "rating":
		return m.Rating != 0
	case "released_date":
		return m.ReleasedDate != ""
	default:
		return false
	}
}

// RequiredFields must be present on every movie handed to a search backend.
var RequiredFields = []string{"id", "title"}
