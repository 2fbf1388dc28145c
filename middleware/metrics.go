package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
)

const outcomeValid = "valid"

// Metrics counts validation outcomes per route. The outcome label is "valid"
// or the issue code of the rejection.
type Metrics struct {
	validations *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg (skipped when
// reg is nil).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fieldschema_validations_total",
			Help: "Request bodies validated, by route and outcome.",
		}, []string{"route", "outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.validations)
	}
	return m
}

// Validations exposes the underlying counter vector.
func (m *Metrics) Validations() *prometheus.CounterVec { return m.validations }

func (m *Metrics) observe(route, outcome string) {
	if m == nil {
		return
	}
	m.validations.WithLabelValues(route, outcome).Inc()
}
