package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	LinksGenerated     prometheus.Counter
	ValidationFailures prometheus.Counter
	Resets             prometheus.Counter
	SettingsLoads      *prometheus.CounterVec
	FormSessions       prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		LinksGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wigconnect",
			Name:      "links_generated_total",
			Help:      "WhatsApp links revealed to visitors.",
		}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wigconnect",
			Name:      "validation_failures_total",
			Help:      "Phone number submissions rejected as too short.",
		}),
		Resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wigconnect",
			Name:      "form_resets_total",
			Help:      "Contact forms reset by visitors.",
		}),
		SettingsLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wigconnect",
			Name:      "settings_loads_total",
			Help:      "Settings document loads by result.",
		}, []string{"result"}),
		FormSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "wigconnect",
			Name:      "form_sessions",
			Help:      "Form sessions currently tracked.",
		}),
	}
	reg.MustRegister(m.LinksGenerated, m.ValidationFailures, m.Resets, m.SettingsLoads, m.FormSessions)
	return m
}

// SettingsLoaded has the shape of settings.LoadResult.
func (m *Metrics) SettingsLoaded(fallback bool) {
	result := "ok"
	if fallback {
		result = "fallback"
	}
	m.SettingsLoads.WithLabelValues(result).Inc()
}
