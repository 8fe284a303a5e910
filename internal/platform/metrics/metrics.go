package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "welfare"

// Recorder agrupa los contadores del motor de bienestar.
// Un Recorder nil es válido: todos los métodos son no-op.
type Recorder struct {
	gatherer prometheus.Gatherer

	logsAppended      prometheus.Counter
	riskFlags         *prometheus.CounterVec
	sentinelDegraded  prometheus.Counter
	adoptionChanges   *prometheus.CounterVec
	escalationChanges *prometheus.CounterVec
	notifications     *prometheus.CounterVec
}

// New registra los collectors en reg. Con reg nil usa un registry propio
// (útil en tests para no chocar con el DefaultRegisterer).
func New(reg *prometheus.Registry) *Recorder {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	r := &Recorder{
		gatherer: reg,
		logsAppended: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logs_appended_total",
			Help:      "Welfare log entries appended by adopters.",
		}),
		riskFlags: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "risk_flags_total",
			Help:      "Welfare log entries flagged by the sentinel, by rule.",
		}, []string{"rule"}),
		sentinelDegraded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sentinel_degraded_total",
			Help:      "Sentinel evaluations that could not load the pattern window.",
		}),
		adoptionChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "adoption_transitions_total",
			Help:      "Adoption status transitions, by target status and result.",
		}, []string{"to", "result"}),
		escalationChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "escalation_transitions_total",
			Help:      "Escalation status transitions, by subject and target status.",
		}, []string{"subject", "to"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Best-effort notifications raised, by kind and result.",
		}, []string{"kind", "result"}),
	}

	reg.MustRegister(
		r.logsAppended,
		r.riskFlags,
		r.sentinelDegraded,
		r.adoptionChanges,
		r.escalationChanges,
		r.notifications,
	)
	return r
}

// Handler expone /metrics para el registry del recorder.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}

func (r *Recorder) LogAppended() {
	if r == nil {
		return
	}
	r.logsAppended.Inc()
}

func (r *Recorder) RiskFlagged(rule string) {
	if r == nil {
		return
	}
	r.riskFlags.WithLabelValues(rule).Inc()
}

func (r *Recorder) SentinelDegraded() {
	if r == nil {
		return
	}
	r.sentinelDegraded.Inc()
}

func (r *Recorder) AdoptionTransition(to string, ok bool) {
	if r == nil {
		return
	}
	r.adoptionChanges.WithLabelValues(to, result(ok)).Inc()
}

func (r *Recorder) EscalationTransition(subject, to string) {
	if r == nil {
		return
	}
	r.escalationChanges.WithLabelValues(subject, to).Inc()
}

func (r *Recorder) Notification(kind string, ok bool) {
	if r == nil {
		return
	}
	r.notifications.WithLabelValues(kind, result(ok)).Inc()
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "error"
}
