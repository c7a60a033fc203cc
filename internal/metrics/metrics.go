// Package metrics exposes Prometheus counters for the correction pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every eggcorn metric. It is separate from the default
// registry so tests can read values without global collectors leaking in.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// CommentsChecked counts comments run through the checker
	CommentsChecked = factory.NewCounter(prometheus.CounterOpts{
		Name: "eggcorn_comments_checked_total",
		Help: "Comments run through the mistake checker",
	})

	// Corrections counts published corrections by rule key
	Corrections = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "eggcorn_corrections_total",
		Help: "Corrections published, by rule",
	}, []string{"rule"})

	// CommentsSkipped counts comments not checked, by reason
	CommentsSkipped = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "eggcorn_comments_skipped_total",
		Help: "Comments skipped before checking, by reason",
	}, []string{"reason"})

	// PublishErrors counts replies that could not be delivered
	PublishErrors = factory.NewCounter(prometheus.CounterOpts{
		Name: "eggcorn_publish_errors_total",
		Help: "Replies that failed to publish",
	})

	// CheckDuration tracks time spent in the checker per comment
	CheckDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "eggcorn_check_duration_seconds",
		Help:    "Time to prepare and check one comment",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8), // 10µs to ~160ms
	})
)

// Handler serves the registry in the Prometheus exposition format
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
