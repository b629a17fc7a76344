package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricNameCommandsTotal  = "zuul_commands_total"
	MetricNameSessionsActive = "zuul_sessions_active"
	MetricNameSessionsTotal  = "zuul_sessions_total"

	LabelVerb    = "verb"
	LabelOutcome = "outcome"
)

// Metrics counts what players do. It satisfies commands.Recorder and
// session.Recorder.
type Metrics struct {
	commands       *prometheus.CounterVec
	sessionsActive prometheus.Gauge
	sessionsTotal  prometheus.Counter
}

// New registers the game's collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		commands: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameCommandsTotal,
				Help: "Commands executed, by verb and outcome.",
			},
			[]string{LabelVerb, LabelOutcome},
		),
		sessionsActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: MetricNameSessionsActive,
				Help: "Games currently being played.",
			},
		),
		sessionsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: MetricNameSessionsTotal,
				Help: "Games started since the process began.",
			},
		),
	}
}

func (m *Metrics) CommandExecuted(verb string, outcome string) {
	m.commands.WithLabelValues(verb, outcome).Inc()
}

func (m *Metrics) SessionStarted() {
	m.sessionsActive.Inc()
	m.sessionsTotal.Inc()
}

func (m *Metrics) SessionEnded() {
	m.sessionsActive.Dec()
}
