package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	SeniorsRegistered    prometheus.Counter
	VolunteersRegistered prometheus.Counter
	Logins               prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		SeniorsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "buddylink_seniors_registered_total",
			Help: "Total number of senior profiles registered",
		}),
		VolunteersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "buddylink_volunteers_registered_total",
			Help: "Total number of volunteer profiles registered",
		}),
		Logins: promauto.NewCounter(prometheus.CounterOpts{
			Name: "buddylink_logins_total",
			Help: "Total number of successful logins",
		}),
	}
}

// IncSeniorsRegistered increments the senior registration counter. Safe on a
// nil receiver so tests can run without a registry.
func (m *Metrics) IncSeniorsRegistered() {
	if m == nil {
		return
	}
	m.SeniorsRegistered.Inc()
}

// IncVolunteersRegistered increments the volunteer registration counter.
func (m *Metrics) IncVolunteersRegistered() {
	if m == nil {
		return
	}
	m.VolunteersRegistered.Inc()
}

// IncLogins increments the successful login counter.
func (m *Metrics) IncLogins() {
	if m == nil {
		return
	}
	m.Logins.Inc()
}
