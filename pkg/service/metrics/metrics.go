package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the bot
type Metrics struct {
	registry *prometheus.Registry

	// CommandsTotal counts dispatched commands by command token and outcome
	CommandsTotal *prometheus.CounterVec

	// DeliveriesTotal counts outbound Slack deliveries by mode and outcome.
	// The "dropped" status marks the missing-token no-op, which is a
	// configuration error rather than a runtime failure.
	DeliveriesTotal *prometheus.CounterVec

	// UpstreamRequestsTotal counts third-party API calls by provider and outcome
	UpstreamRequestsTotal *prometheus.CounterVec

	// PreviewsTotal counts URL preview fetches by outcome
	PreviewsTotal *prometheus.CounterVec
}

// New creates a Metrics instance with all metrics registered
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	return &Metrics{
		registry: registry,

		CommandsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "kotori_commands_total",
				Help: "Total number of dispatched commands by token and status",
			},
			[]string{"command", "status"}, // status: ok, error
		),

		DeliveriesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "kotori_deliveries_total",
				Help: "Total number of outbound Slack deliveries by mode and status",
			},
			[]string{"mode", "status"}, // status: ok, error, dropped
		),

		UpstreamRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "kotori_upstream_requests_total",
				Help: "Total number of third-party API requests by provider and status",
			},
			[]string{"provider", "status"},
		),

		PreviewsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "kotori_url_previews_total",
				Help: "Total number of URL preview fetches by status",
			},
			[]string{"status"},
		),
	}
}

// Handler returns an HTTP handler exposing the registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
