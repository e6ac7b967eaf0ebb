package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Runs — счётчик прогонов по терминальному исходу (validation_state).
	Runs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "precheck_runs_total",
			Help: "Number of finished validation runs by terminal state",
		},
		[]string{"state"},
	)
	// StepRuns — счётчик вызовов шагов по исходу.
	StepRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "precheck_step_runs_total",
			Help: "Number of validation step invocations",
		},
		[]string{"step", "outcome"}, // passed|blocked|error
	)
	// RunDuration — длительность прогона от первого шага до терминала.
	RunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "precheck_run_duration_seconds",
			Help:    "Validation run duration",
			Buckets: prometheus.DefBuckets,
		},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired|deleted
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

var (
	// BackendRequests — запросы к HTTP API ресторана.
	BackendRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_requests_total",
			Help: "Requests to the restaurant backend API",
		},
		[]string{"method", "outcome"}, // ok|error
	)
)

var (
	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_events_published_total",
			Help: "Number of run outcome events published to Kafka",
		},
		[]string{"topic"},
	)
	EventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_events_failed_total",
			Help: "Number of run outcome events failed to publish",
		},
		[]string{"topic"},
	)
)

var registerOnce sync.Once

// MustRegister — регистрация всех коллекторов; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			Runs, StepRuns, RunDuration,
			CacheOps, CacheSize,
			BackendRequests,
			EventsPublished, EventsFailed,
		)
	})
}
