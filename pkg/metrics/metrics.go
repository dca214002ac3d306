package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Store operation latency (seconds), labeled by backing store
	StoreOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_op_duration_seconds",
			Help:    "Domain store operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"operation", "backend"},
	)

	// Records removed by cascade deletes
	CascadeDeleteCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cascade_delete_records_total",
			Help: "Total number of records removed by cascading deletes",
		},
		[]string{"kind"}, // kind: activity, milestone, dependency
	)

	// Slow database queries
	SlowQueryCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_slow_query_total",
			Help: "Total number of queries exceeding the slow-query threshold",
		},
		[]string{"command"},
	)
)

// RecordHTTPRequestDuration records one HTTP request observation.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordStoreOpDuration records one store operation observation.
func RecordStoreOpDuration(operation, backend string, duration time.Duration) {
	StoreOpDuration.WithLabelValues(operation, backend).Observe(duration.Seconds())
}

// AddCascadeDeletes counts records removed as a side effect of a delete.
func AddCascadeDeletes(kind string, n int) {
	if n > 0 {
		CascadeDeleteCount.WithLabelValues(kind).Add(float64(n))
	}
}

// IncrementSlowQuery counts one slow query.
func IncrementSlowQuery(command string) {
	SlowQueryCount.WithLabelValues(command).Inc()
}
