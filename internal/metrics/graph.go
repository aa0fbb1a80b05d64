package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Graph and search Prometheus metrics.
var (
	GraphQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "heritagegraph",
			Name:      "graph_queries_total",
			Help:      "Total number of triple store queries",
		},
		[]string{"entity", "status"},
	)

	GraphQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "heritagegraph",
			Name:      "graph_query_duration_seconds",
			Help:      "Triple store query duration in seconds",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"entity"},
	)

	GraphTriplesLoaded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "heritagegraph",
			Name:      "graph_triples_loaded_total",
			Help:      "Total triples loaded into per-request resource graphs",
		},
		[]string{"entity"},
	)

	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "heritagegraph",
			Name:      "search_requests_total",
			Help:      "Total number of search index requests",
		},
		[]string{"entity", "status"},
	)

	SearchRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "heritagegraph",
			Name:      "search_request_duration_seconds",
			Help:      "Search index request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"entity"},
	)

	HydrationGapsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "heritagegraph",
			Name:      "hydration_gaps_total",
			Help:      "Search hits with no matching record in the triple store",
		},
		[]string{"entity"},
	)
)

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

var registerOnce sync.Once

// RegisterGraphMetrics registers the graph and search metrics with the
// default registry. Safe to call more than once.
func RegisterGraphMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			GraphQueriesTotal,
			GraphQueryDuration,
			GraphTriplesLoaded,
			SearchRequestsTotal,
			SearchRequestDuration,
			HydrationGapsTotal,
		)
	})
}

// Status returns the status label for err.
func Status(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusOK
}
