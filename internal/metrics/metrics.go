// Package metrics provides Prometheus instrumentation for the notifier.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "notifier"

// Registry holds all metric instances.
type Registry struct {
	// Job substrate
	JobsSubmitted    *prometheus.CounterVec
	JobsCompleted    *prometheus.CounterVec
	JobDuration      *prometheus.HistogramVec
	WorkerPoolSize   prometheus.Gauge
	WorkerPoolActive prometheus.Gauge
	WorkerPoolQueued prometheus.Gauge

	// Scheduling
	PollerTicks     *prometheus.CounterVec
	SchedulesDue    prometheus.Counter
	RetriesEnqueued prometheus.Counter

	// Delivery
	Deliveries *prometheus.CounterVec

	// Maintenance
	DatabaseUp        prometheus.Gauge
	ProfilesRefreshed prometheus.Counter
}

// NewRegistry creates the collectors and registers them with reg.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		JobsSubmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "jobs",
				Name:      "submitted_total",
				Help:      "Total number of jobs submitted to the worker pool",
			},
			[]string{"job"},
		),

		JobsCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "jobs",
				Name:      "completed_total",
				Help:      "Total number of jobs finished, by result",
			},
			[]string{"job", "result"},
		),

		JobDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "jobs",
				Name:      "duration_seconds",
				Help:      "Time spent executing jobs",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"job"},
		),

		WorkerPoolSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "workerpool",
				Name:      "size",
				Help:      "Configured number of workers",
			},
		),

		WorkerPoolActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "workerpool",
				Name:      "active_workers",
				Help:      "Number of workers currently executing a job",
			},
		),

		WorkerPoolQueued: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "workerpool",
				Name:      "queued_jobs",
				Help:      "Number of jobs waiting for a worker",
			},
		),

		PollerTicks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "poller",
				Name:      "ticks_total",
				Help:      "Total number of poller ticks, by outcome",
			},
			[]string{"outcome"},
		),

		SchedulesDue: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "poller",
				Name:      "schedules_due_total",
				Help:      "Total number of due schedules found by the poller",
			},
		),

		RetriesEnqueued: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "retry",
				Name:      "enqueued_total",
				Help:      "Total number of retry jobs enqueued",
			},
		),

		Deliveries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "delivery",
				Name:      "attempts_total",
				Help:      "Total number of delivery attempts, by channel and resulting status",
			},
			[]string{"channel", "status"},
		),

		DatabaseUp: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "health",
				Name:      "database_up",
				Help:      "1 when the last health check reached the database",
			},
		),

		ProfilesRefreshed: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "maintenance",
				Name:      "profiles_refreshed_total",
				Help:      "Total number of learning profiles refreshed",
			},
		),
	}
}
