// Package metrics exposes Prometheus counters for radial offset invocations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Faultbox/radial-offset/internal/radial"
)

// Metrics holds the collectors on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	Invocations *prometheus.CounterVec
	Displaced   prometheus.Counter
	Degenerate  prometheus.Counter
	Duration    prometheus.Histogram
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "radoff_invocations_total",
				Help: "Radial offset invocations by reference mode and outcome.",
			},
			[]string{"mode", "status"},
		),
		Displaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "radoff_vertices_displaced_total",
			Help: "Selected vertices moved by the transform.",
		}),
		Degenerate: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "radoff_degenerate_vertices_total",
			Help: "Selected vertices left in place because they coincided with the reference point.",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "radoff_transform_duration_seconds",
			Help:    "Wall time of a single transform invocation.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 7),
		}),
	}
	m.Registry.MustRegister(m.Invocations, m.Displaced, m.Degenerate, m.Duration)
	return m
}

// Observe implements radial.Recorder.
func (m *Metrics) Observe(mode radial.Mode, status string, displaced, degenerate int, elapsed time.Duration) {
	m.Invocations.WithLabelValues(mode.String(), status).Inc()
	m.Displaced.Add(float64(displaced))
	m.Degenerate.Add(float64(degenerate))
	m.Duration.Observe(elapsed.Seconds())
}

// WriteTextfile writes the current values in the node exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}

var _ radial.Recorder = (*Metrics)(nil)
