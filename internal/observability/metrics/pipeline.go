package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PipelineMetrics tracks extraction outcomes per tier.
type PipelineMetrics struct {
	registry *prometheus.Registry

	extractionsTotal *prometheus.CounterVec
	escalationsTotal *prometheus.CounterVec
	aiLatency        prometheus.Histogram
	inFlight         prometheus.Gauge
}

func NewPipelineMetrics() *PipelineMetrics {
	registry := prometheus.NewRegistry()

	extractionsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docextract",
			Subsystem: "pipeline",
			Name:      "extractions_total",
			Help:      "Completed extractions by tier and status.",
		},
		[]string{"tier", "status"},
	)
	escalationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docextract",
			Subsystem: "pipeline",
			Name:      "escalations_total",
			Help:      "Escalations to the AI tier by trigger.",
		},
		[]string{"reason"},
	)
	aiLatency := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "docextract",
			Subsystem: "pipeline",
			Name:      "ai_call_duration_seconds",
			Help:      "Model-based extractor call duration.",
			Buckets:   prometheus.DefBuckets,
		},
	)
	inFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "docextract",
			Subsystem: "pipeline",
			Name:      "extractions_in_flight",
			Help:      "Extractions currently being processed.",
		},
	)

	registry.MustRegister(extractionsTotal, escalationsTotal, aiLatency, inFlight)

	return &PipelineMetrics{
		registry:         registry,
		extractionsTotal: extractionsTotal,
		escalationsTotal: escalationsTotal,
		aiLatency:        aiLatency,
		inFlight:         inFlight,
	}
}

func (m *PipelineMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *PipelineMetrics) Start() {
	if m == nil {
		return
	}
	m.inFlight.Inc()
}

func (m *PipelineMetrics) Finish(tier, status string) {
	if m == nil {
		return
	}
	m.inFlight.Dec()
	m.extractionsTotal.WithLabelValues(tier, status).Inc()
}

func (m *PipelineMetrics) Escalated(reason string) {
	if m == nil {
		return
	}
	m.escalationsTotal.WithLabelValues(reason).Inc()
}

func (m *PipelineMetrics) ObserveAICall(d time.Duration) {
	if m == nil {
		return
	}
	m.aiLatency.Observe(d.Seconds())
}
