// Package metrics provides Prometheus metrics for the city scoring engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the scoring engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Run-level metrics.
	scoringRuns    prometheus.Counter
	citiesScored   prometheus.Counter
	citiesExcluded prometheus.Counter
	runDuration    prometheus.Histogram

	// Category score spread: one observation per scored city per category.
	categoryScores *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// Default histogram buckets for category score spread, 0-100 in tens.
var scoreBuckets = prometheus.LinearBuckets(0, 10, 11) //nolint:gochecknoglobals // shared bucket layout

// Default run-duration buckets, in milliseconds: 0.25ms to 512ms doubling,
// so sub-millisecond runs land in real buckets instead of the first one.
var durationBuckets = prometheus.ExponentialBuckets(0.25, 2, 12) //nolint:gochecknoglobals // shared bucket layout

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "cityrank",
		subsystem:        "engine",
		histogramBuckets: durationBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.scoringRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_runs_total",
		Help:      "Total number of scoring runs executed",
	})

	m.citiesScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cities_scored_total",
		Help:      "Total number of cities scored across all runs",
	})

	m.citiesExcluded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cities_excluded_total",
		Help:      "Total number of cities excluded for missing data",
	})

	m.runDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_duration_milliseconds",
		Help:      "Histogram of full scoring-run duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.categoryScores = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "category_score",
		Help:      "Distribution of category scores across scored cities",
		Buckets:   scoreBuckets,
	}, []string{"category"})
}

// RecordRun records the outcome of one scoring run.
func (m *Manager) RecordRun(duration time.Duration, included, excluded int) {
	if !m.enabled {
		return
	}
	m.scoringRuns.Inc()
	m.citiesScored.Add(float64(included))
	m.citiesExcluded.Add(float64(excluded))
	m.runDuration.Observe(float64(duration.Nanoseconds()) / 1e6)
}

// RecordCategoryScores records the six category scores for one city.
func (m *Manager) RecordCategoryScores(climate, cost, demographics, quality, values, entertainment float64) {
	if !m.enabled {
		return
	}
	m.categoryScores.WithLabelValues("climate").Observe(climate)
	m.categoryScores.WithLabelValues("cost").Observe(cost)
	m.categoryScores.WithLabelValues("demographics").Observe(demographics)
	m.categoryScores.WithLabelValues("quality").Observe(quality)
	m.categoryScores.WithLabelValues("values").Observe(values)
	m.categoryScores.WithLabelValues("entertainment").Observe(entertainment)
}

// Global returns the process-wide manager backed by the custom registry.
func Global() *Manager {
	return globalManager
}

// Registry returns the custom registry backing the global manager, for
// exposition or test scraping.
func Registry() *prometheus.Registry {
	return customRegistry
}
