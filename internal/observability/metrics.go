// Package observability holds the Prometheus metrics of the assessment API.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Advice outcomes.
const (
	AdviceDelivered  = "delivered"
	AdviceFailed     = "failed"
	AdviceSuperseded = "superseded"
	AdviceDisabled   = "disabled"
)

var (
	wizardTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitassess",
		Subsystem: "wizard",
		Name:      "transitions_total",
		Help:      "Wizard actions applied, by action type and resulting signal.",
	}, []string{"action", "signal"})

	assessmentsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitassess",
		Subsystem: "wizard",
		Name:      "assessments_completed_total",
		Help:      "Number of wizard sessions that reached the results view.",
	})

	planExercises = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fitassess",
		Subsystem: "plan",
		Name:      "matched_exercises",
		Help:      "Exercises matched per computed plan.",
		Buckets:   prometheus.LinearBuckets(0, 1, 10),
	})

	adviceOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitassess",
		Subsystem: "advice",
		Name:      "requests_total",
		Help:      "Safety brief requests by outcome.",
	}, []string{"outcome"})

	adviceLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fitassess",
		Subsystem: "advice",
		Name:      "request_duration_seconds",
		Help:      "Latency of safety brief requests.",
		Buckets:   prometheus.DefBuckets,
	})

	activeSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fitassess",
		Subsystem: "sessions",
		Name:      "active",
		Help:      "Wizard sessions currently held in memory.",
	})
)

func init() {
	prometheus.MustRegister(wizardTransitions, assessmentsCompleted, planExercises, adviceOutcomes, adviceLatency, activeSessions)
}

// RecordTransition counts an applied wizard action.
func RecordTransition(action, signal string) {
	wizardTransitions.WithLabelValues(action, signal).Inc()
}

// RecordCompletion counts a completed assessment.
func RecordCompletion() {
	assessmentsCompleted.Inc()
}

// RecordPlan observes the size of a computed plan.
func RecordPlan(exercises int) {
	planExercises.Observe(float64(exercises))
}

// RecordAdvice counts an advice outcome and, when started is set, its latency.
func RecordAdvice(outcome string, started time.Time) {
	adviceOutcomes.WithLabelValues(outcome).Inc()
	if !started.IsZero() {
		adviceLatency.Observe(time.Since(started).Seconds())
	}
}

// SetActiveSessions updates the session gauge.
func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}
