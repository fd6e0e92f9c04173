// Package astarmetrics instruments the astar engine with Prometheus
// counters and histograms, built with a shared namespace ("astar") and
// no subsystem.
package astarmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels recorded per completed search.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
)

const (
	namespace = "astar"
)

// Metrics wraps the Prometheus collectors the astar engine reports to.
// Safe for use by multiple AStar engines concurrently; a single Metrics
// value is meant to be shared across all engines over one process.
type Metrics struct {
	searchesTotal  *prometheus.CounterVec
	searchSteps    *prometheus.HistogramVec
	searchDuration *prometheus.HistogramVec
}

// New creates and registers the astar metrics against reg. If reg is
// nil, a private, unregistered registry is used so library consumers are
// never forced onto the global default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		searchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total number of SearchPath calls, by outcome.",
		}, []string{"outcome"}),
		searchSteps: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_steps",
			Help:      "Number of NextStep expansions per SearchPath call.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		}, []string{"outcome"}),
		searchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall-clock duration of SearchPath calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.searchesTotal, m.searchSteps, m.searchDuration)
	return m
}

// ObserveSearch records the outcome, step count, and duration of one
// completed SearchPath call.
func (m *Metrics) ObserveSearch(outcome string, steps int, duration time.Duration) {
	if m == nil {
		return
	}
	m.searchesTotal.WithLabelValues(outcome).Inc()
	m.searchSteps.WithLabelValues(outcome).Observe(float64(steps))
	m.searchDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}
