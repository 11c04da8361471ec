package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ripple_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// FeedAssembleLatency records how long a feed page takes to assemble, by mode.
	FeedAssembleLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ripple_feed_assemble_latency_seconds",
		Help:    "Feed page assembly latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode"})

	// ToggleTotal counts like/follow toggles by relation and direction.
	ToggleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_toggles_total",
		Help: "Total number of like/follow toggles by relation and direction",
	}, []string{"relation", "direction"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
