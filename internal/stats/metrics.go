package stats

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess   = "success"
	OutcomeIO        = "io"
	OutcomeFetch     = "fetch"
	OutcomeClone     = "clone"
	OutcomeWorkspace = "workspace"
	OutcomeUnknown   = "unknown"
)

type Metrics struct {
	runs     *prometheus.CounterVec
	duration prometheus.Histogram
	inFlight prometheus.Gauge
}

// NewMetrics registers the pipeline collectors with registerer. A nil registerer
// creates unregistered collectors.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "repostats",
			Subsystem: "pipeline",
			Name:      "runs_total",
			Help:      "Number of analysis runs by outcome.",
		}, []string{"outcome"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "repostats",
			Subsystem: "pipeline",
			Name:      "duration_seconds",
			Help:      "Duration of analysis runs, including clone and cleanup.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "repostats",
			Subsystem: "pipeline",
			Name:      "in_flight",
			Help:      "Number of analysis runs in progress.",
		}),
	}
}

// start marks a run as started. The returned func records its outcome.
func (m *Metrics) start() func(error) {
	started := time.Now()
	m.inFlight.Inc()

	return func(err error) {
		m.inFlight.Dec()
		m.duration.Observe(time.Since(started).Seconds())
		m.runs.WithLabelValues(outcome(err)).Inc()
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrIO):
		return OutcomeIO
	case errors.Is(err, ErrFetch):
		return OutcomeFetch
	case errors.Is(err, ErrClone):
		return OutcomeClone
	case errors.Is(err, ErrWorkspace):
		return OutcomeWorkspace
	default:
		return OutcomeUnknown
	}
}
