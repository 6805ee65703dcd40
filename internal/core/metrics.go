package core

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OUTCOME_ANSWERED     = "answered"
	OUTCOME_EMPTY        = "empty"
	OUTCOME_AI_ERROR     = "ai_error"
	OUTCOME_UNKNOWN_MODE = "unknown_mode"
)

type Metrics struct {
	registry *prometheus.Registry

	askTotal      *prometheus.CounterVec
	askLatency    *prometheus.HistogramVec
	imageFailures prometheus.Counter
}

func NewMetrics(namespace, subsystem string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		askTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "ask_total",
			Help:      "Answered requests by mode and outcome.",
		}, []string{"mode", "outcome"}),
		askLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "ask_duration_seconds",
			Help:      "Time spent producing an answer.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
		}, []string{"mode"}),
		imageFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "image_materialize_failures_total",
			Help:      "Images that could not be fetched or decoded.",
		}),
	}

	m.registry.MustRegister(
		m.askTotal,
		m.askLatency,
		m.imageFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveAsk(mode, outcome string, elapsed time.Duration) {
	m.askTotal.WithLabelValues(mode, outcome).Inc()
	m.askLatency.WithLabelValues(mode).Observe(elapsed.Seconds())
}

func (m *Metrics) ImageFailed() {
	m.imageFailures.Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
