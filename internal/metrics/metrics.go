// Package metrics defines Prometheus metrics for cinegraph.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinegraph_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinegraph_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinegraph_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	SparqlQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinegraph_sparql_queries_total",
			Help: "Total SPARQL operations by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinegraph_recommendations_total",
			Help: "Recommendation entries served by source",
		},
		[]string{"source"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		SparqlQueriesTotal, RecommendationsTotal,
	)
}
