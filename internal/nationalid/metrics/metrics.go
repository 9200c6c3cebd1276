package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OutcomeOK labels a successful decode; failures are labelled with their
// error kind.
const OutcomeOK = "ok"

// Metrics provides observability for national ID decoding.
type Metrics struct {
	// Decode outcomes by format and outcome
	DecodeOutcome *prometheus.CounterVec

	// Single decode latency by format
	DecodeLatency *prometheus.HistogramVec

	// Items per batch request
	BatchSize prometheus.Histogram
}

// New creates a Metrics instance registered with the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the metrics with reg. Tests pass a fresh
// prometheus.NewRegistry() so repeated construction does not collide.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DecodeOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "natid_decode_outcomes_total",
			Help: "Total national ID decode attempts by format and outcome",
		}, []string{"format", "outcome"}),

		DecodeLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "natid_decode_duration_seconds",
			Help:    "Duration of a single national ID decode",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}, []string{"format"}),

		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "natid_batch_size",
			Help:    "Number of items per batch decode request",
			Buckets: []float64{1, 5, 10, 25, 50, 100},
		}),
	}
}

// IncrementOutcome records a decode outcome.
func (m *Metrics) IncrementOutcome(format, outcome string) {
	if m != nil {
		m.DecodeOutcome.WithLabelValues(format, outcome).Inc()
	}
}

// ObserveDecodeLatency records the duration of one decode.
func (m *Metrics) ObserveDecodeLatency(format string, d time.Duration) {
	if m != nil {
		m.DecodeLatency.WithLabelValues(format).Observe(d.Seconds())
	}
}

// ObserveBatchSize records the size of a batch request.
func (m *Metrics) ObserveBatchSize(n int) {
	if m != nil {
		m.BatchSize.Observe(float64(n))
	}
}
