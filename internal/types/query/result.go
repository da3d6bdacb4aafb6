package query

import "encoding/json"

// Total is the number of matching documents, capped at MaxResultWindow.
// Overflow is set when the real number is at least MaxResultWindow.
type Total struct {
	Value    int64
	Overflow bool
}

// NewTotal caps value at MaxResultWindow. lowerBound reports that the engine
// stopped counting, so value is only a lower bound of the real count.
func NewTotal(value int64, lowerBound bool) Total {
	if lowerBound || value >= MaxResultWindow {
		return Total{Value: MaxResultWindow, Overflow: true}
	}
	return Total{Value: value}
}

type Hit struct {
	ID     string
	Source json.RawMessage
	// Highlights holds fragments only for fields that matched.
	Highlights map[string][]string
}

type Result struct {
	Total Total
	Hits  []Hit
}

// Bucket is a single aggregation entry.
type Bucket struct {
	Value string
	Count int64
}

type Catalog struct {
	Genres    []string
	Languages []string
}
