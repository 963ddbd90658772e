package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "swiftkit"

type Metrics struct {
	registry *prometheus.Registry

	RequestTotal      *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
	ValidationTotal   *prometheus.CounterVec
	MessageTotal      *prometheus.CounterVec
	MessageErrorTotal *prometheus.CounterVec
}

// NewMetrics registers the collectors on a dedicated registry so that several
// servers can live in one process.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		RequestTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "path"},
		),
		ValidationTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "identifier_validations_total",
				Help:      "Total number of validated identifiers",
			},
			[]string{"type", "result"},
		),
		MessageTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "messages_generated_total",
				Help:      "Total number of generated payment messages",
			},
			[]string{"type"},
		),
		MessageErrorTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "message_errors_total",
				Help:      "Total number of rejected payment messages",
			},
			[]string{"type", "reason"},
		),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) observeValidation(kind string, valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	m.ValidationTotal.WithLabelValues(kind, result).Inc()
}
