package worker

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks sweep runs for Prometheus.
type Metrics struct {
	// SweepRunsTotal counts runs by outcome (success, failure).
	SweepRunsTotal *prometheus.CounterVec

	// SweepDurationSeconds observes how long each run took.
	SweepDurationSeconds prometheus.Histogram

	// SweptSubscriptionsTotal counts the expired premium windows cleared.
	SweptSubscriptionsTotal prometheus.Counter

	// LastSuccessTimestamp is the Unix time of the last successful run;
	// alert when it falls too far behind the schedule.
	LastSuccessTimestamp prometheus.Gauge
}

// NewMetrics registers the sweeper metrics with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SweepRunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sweeper_runs_total",
			Help: "Total subscription sweep runs by status.",
		}, []string{"status"}),
		SweepDurationSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "sweeper_run_duration_seconds",
			Help:    "Duration of subscription sweep runs.",
			Buckets: []float64{0.01, 0.05, 0.25, 1, 5, 30, 120},
		}),
		SweptSubscriptionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "sweeper_swept_subscriptions_total",
			Help: "Total expired premium subscriptions cleared.",
		}),
		LastSuccessTimestamp: factory.NewGauge(prometheus.GaugeOpts{
			Name: "sweeper_last_success_timestamp_seconds",
			Help: "Unix timestamp of the last successful sweep run.",
		}),
	}
}

// RecordRun records one sweep outcome.
func (m *Metrics) RecordRun(err error, swept int64, duration time.Duration) {
	m.SweepDurationSeconds.Observe(duration.Seconds())
	if err != nil {
		m.SweepRunsTotal.WithLabelValues("failure").Inc()
		return
	}
	m.SweepRunsTotal.WithLabelValues("success").Inc()
	m.SweptSubscriptionsTotal.Add(float64(swept))
	m.LastSuccessTimestamp.SetToCurrentTime()
}
