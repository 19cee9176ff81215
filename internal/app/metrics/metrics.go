package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "interview_coach"

// Recorder exposes the interview counters on its own registry
type Recorder struct {
	registry        *prometheus.Registry
	sessionsStarted prometheus.Counter
	turnsCompleted  *prometheus.CounterVec
	turnFailures    *prometheus.CounterVec
	degradations    *prometheus.CounterVec
	providerCalls   *prometheus.HistogramVec
}

// NewRecorder creates a recorder with Go runtime and process collectors
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Interview sessions created.",
		}),
		turnsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_completed_total",
			Help:      "Answers evaluated and committed, by whether the interview finished.",
		}, []string{"final"}),
		turnFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turn_failures_total",
			Help:      "Operations that failed, by operation and error kind.",
		}, []string{"operation", "kind"}),
		degradations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "degraded_total",
			Help:      "Non-fatal failures replaced by a fallback, by step.",
		}, []string{"step"}),
		providerCalls: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_call_seconds",
			Help:      "Latency of calls to external providers.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"step", "outcome"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.sessionsStarted,
		r.turnsCompleted,
		r.turnFailures,
		r.degradations,
		r.providerCalls,
	)
	return r
}

// Registry is served on /metrics
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) SessionStarted() {
	r.sessionsStarted.Inc()
}

func (r *Recorder) TurnCompleted(final bool) {
	if final {
		r.turnsCompleted.WithLabelValues("true").Inc()
		return
	}
	r.turnsCompleted.WithLabelValues("false").Inc()
}

func (r *Recorder) Failed(operation, kind string) {
	r.turnFailures.WithLabelValues(operation, kind).Inc()
}

func (r *Recorder) Degraded(step string) {
	r.degradations.WithLabelValues(step).Inc()
}

func (r *Recorder) ObserveProvider(step string, started time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.providerCalls.WithLabelValues(step, outcome).Observe(time.Since(started).Seconds())
}
