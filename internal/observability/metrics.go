// Package observability wires dispatcher lifecycle hooks to Prometheus.
package observability

import (
	"context"

	"github.com/envirosense/actionserver/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records per-action invocation counts and durations.
type Metrics struct {
	invocations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics creates and registers the action metrics on the given
// registerer (use prometheus.DefaultRegisterer for the global one).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "action_invocations_total",
				Help: "Total number of action handler invocations",
			},
			[]string{"action"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "action_duration_seconds",
				Help: "Duration of action handler executions",
			},
			[]string{"action"},
		),
	}
	reg.MustRegister(m.invocations, m.duration)
	return m
}

// Hooks returns dispatcher hooks feeding these metrics.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnActionStart: func(ctx context.Context, e *domain.ActionEvent) {
			m.invocations.WithLabelValues(e.Action).Inc()
		},
		OnActionEnd: func(ctx context.Context, e *domain.ActionEvent) {
			m.duration.WithLabelValues(e.Action).Observe(e.Duration.Seconds())
		},
	}
}
