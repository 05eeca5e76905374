// Package metrics provides Prometheus metrics for document loading
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Load outcomes.
const (
	StatusOK             = "ok"
	StatusContainerError = "container_error"
	StatusFormatError    = "format_error"
)

// Metrics records loader activity. A nil *Metrics records nothing.
type Metrics struct {
	DocumentsLoaded *prometheus.CounterVec
	LoadDuration    prometheus.Histogram
	Skipped         *prometheus.CounterVec
	ShapesBuilt     prometheus.Counter
	EdgesDecoded    prometheus.Counter
}

// New creates the loader metrics and registers them with reg. A nil reg
// creates unregistered collectors.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		DocumentsLoaded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fla_documents_loaded_total",
				Help: "Total number of document loads by outcome",
			},
			[]string{"status"},
		),
		LoadDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fla_load_duration_seconds",
				Help:    "Time taken to load a document",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
		),
		Skipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fla_skipped_total",
				Help: "Total number of well-formed constructs omitted from the model",
			},
			[]string{"kind"},
		),
		ShapesBuilt: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fla_shapes_built_total",
				Help: "Total number of shapes built",
			},
		),
		EdgesDecoded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fla_edges_decoded_total",
				Help: "Total number of edges decoded",
			},
		),
	}
}

// RecordLoad records the outcome and duration of a load
func (m *Metrics) RecordLoad(status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.DocumentsLoaded.WithLabelValues(status).Inc()
	m.LoadDuration.Observe(duration.Seconds())
}

// RecordSkip records an omitted construct
func (m *Metrics) RecordSkip(kind string) {
	if m == nil {
		return
	}
	m.Skipped.WithLabelValues(kind).Inc()
}

// RecordShape records a built shape and its edge count
func (m *Metrics) RecordShape(edges int) {
	if m == nil {
		return
	}
	m.ShapesBuilt.Inc()
	m.EdgesDecoded.Add(float64(edges))
}

// Timer is a helper for measuring duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Duration returns the elapsed time since the timer was created
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
