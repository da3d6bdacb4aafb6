package runner

var DefaultKValues = []int{1, 3, 5}

const (
	DefaultMaxK               = 10
	DefaultRelevanceThreshold = 1
	DefaultRuns               = 1
)

type Config struct {
	KValues            []int
	MaxK               int // ranked lists are cut to this length before scoring
	RelevanceThreshold int
	WarmupRuns         int
	Runs               int
}

func DefaultConfig() Config {
	return Config{
		KValues:            DefaultKValues,
		MaxK:               DefaultMaxK,
		RelevanceThreshold: DefaultRelevanceThreshold,
		Runs:               DefaultRuns,
	}
}
