package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters for the dashboard service.
type Metrics struct {
	FetchesTotal        *prometheus.CounterVec // labels: store={reports,notifications}, outcome={success,error}
	StaleResponsesTotal *prometheus.CounterVec // labels: store={reports,notifications}
	ModerationTotal     *prometheus.CounterVec // labels: store, action={read,read_all,verify,fake,reset}
	SubmissionsTotal    *prometheus.CounterVec // labels: outcome={accepted,rejected,failed}
	LoginsTotal         prometheus.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		FetchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oceaneye",
			Name:      "fetches_total",
			Help:      "Upstream fetches by store and outcome.",
		}, []string{"store", "outcome"}),
		StaleResponsesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oceaneye",
			Name:      "stale_responses_total",
			Help:      "Fetch responses discarded because a newer refresh was issued.",
		}, []string{"store"}),
		ModerationTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oceaneye",
			Name:      "moderation_actions_total",
			Help:      "Verification and read-state transitions applied by moderators.",
		}, []string{"store", "action"}),
		SubmissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oceaneye",
			Name:      "report_submissions_total",
			Help:      "Incident report submissions by outcome.",
		}, []string{"outcome"}),
		LoginsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oceaneye",
			Name:      "logins_total",
			Help:      "Completed login calls.",
		}),
	}
}

// NewMetrics creates and registers all dashboard metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.FetchesTotal,
		m.StaleResponsesTotal,
		m.ModerationTotal,
		m.SubmissionsTotal,
		m.LoginsTotal,
	)
	return m
}

// NewMetricsForTesting creates Metrics without touching the default
// registry, avoiding "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
