package observability

import (
	"github.com/couchcryptid/heat-risk-model/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "heatrisk"

// Metrics holds the Prometheus collectors for a generate-and-export run.
type Metrics struct {
	SamplesGenerated  prometheus.Counter
	SamplesByLabel    *prometheus.CounterVec // labels: label={safe,caution,danger,extreme}
	SamplesOutOfRange prometheus.Counter

	GenerationDuration prometheus.Histogram
	ExportDuration     prometheus.Histogram
	ExportBytes        prometheus.Gauge
	ExportErrors       prometheus.Counter
	LastRunSuccess     prometheus.Gauge
}

func newMetrics() *Metrics {
	m := &Metrics{
		SamplesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples_generated_total",
			Help:      "Total synthetic samples generated.",
		}),
		SamplesByLabel: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples_by_label_total",
			Help:      "Generated samples by reference risk label.",
		}, []string{"label"}),
		SamplesOutOfRange: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples_out_of_range_total",
			Help:      "Samples labeled with the Rothfusz regression outside its validity range.",
		}),
		GenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Duration of dataset generation.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		ExportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "export_duration_seconds",
			Help:      "Duration of rendering and writing the model header.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		ExportBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "export_bytes",
			Help:      "Size of the last exported model header.",
		}),
		ExportErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "export_errors_total",
			Help:      "Total failed exports.",
		}),
		LastRunSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_success",
			Help:      "1 when the last run exported the model, 0 otherwise.",
		}),
	}

	// Pre-create every label so absent categories report 0.
	for _, c := range domain.RiskCategories() {
		m.SamplesByLabel.WithLabelValues(c.String())
	}
	return m
}

// NewMetrics creates all metrics and registers them with reg, or the default
// Prometheus registry when reg is nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := newMetrics()
	reg.MustRegister(
		m.SamplesGenerated,
		m.SamplesByLabel,
		m.SamplesOutOfRange,
		m.GenerationDuration,
		m.ExportDuration,
		m.ExportBytes,
		m.ExportErrors,
		m.LastRunSuccess,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid "already
// registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
