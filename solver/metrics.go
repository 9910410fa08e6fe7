package solver

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Solve outcomes recorded in the "outcome" label.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics holds the Prometheus collectors updated by every solve.
// A nil *Metrics records nothing.
type Metrics struct {
	solves   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	settled  *prometheus.HistogramVec
}

// NewMetrics registers the solver collectors with reg. A nil reg falls back to
// prometheus.DefaultRegisterer. Registering twice on the same registry panics,
// as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "placepath_solves_total",
			Help: "Total shortest-path solves by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "placepath_solve_duration_seconds",
			Help:    "Wall time of one solve",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"algorithm"}),
		settled: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "placepath_solve_settled_places",
			Help:    "Places settled before a solve returned",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
	}
}

// observe records one finished solve.
func (m *Metrics) observe(algo string, found bool, settled int, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeNotFound
	switch {
	case err != nil:
		outcome = OutcomeError
	case found:
		outcome = OutcomeFound
	}
	m.solves.WithLabelValues(algo, outcome).Inc()
	m.duration.WithLabelValues(algo).Observe(elapsed.Seconds())
	m.settled.WithLabelValues(algo).Observe(float64(settled))
}
