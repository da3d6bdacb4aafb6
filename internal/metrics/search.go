package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search and facet catalog metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "moviehunter",
			Name:      "searches_total",
			Help:      "Total number of executed searches",
		},
		[]string{"outcome"}, // "ok" / "invalid" / "failed"
	)

	SearchOverflowTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "moviehunter",
			Name:      "search_overflow_total",
			Help:      "Searches whose total reached the result window",
		},
	)

	CatalogLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "moviehunter",
			Name:      "catalog_loads_total",
			Help:      "Facet catalog loads by source and outcome",
		},
		[]string{"source", "outcome"}, // source: "cache" / "engine"
	)
)

const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

func init() {
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchOverflowTotal)
	prometheus.MustRegister(CatalogLoadsTotal)
}
