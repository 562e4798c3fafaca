package consumer

import (
	"github.com/prometheus/client_golang/prometheus"

	"example.com/fitassess/internal/events"
	"example.com/fitassess/internal/profile"
)

// otherLabel replaces label values outside the known vocabularies so that
// event payloads cannot create unbounded series.
const otherLabel = "other"

var (
	processedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitassess",
		Subsystem: "consumer",
		Name:      "messages_processed_total",
		Help:      "Number of Kafka messages processed by the insights consumer.",
	}, []string{"topic", "event_type"})

	failedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitassess",
		Subsystem: "consumer",
		Name:      "messages_failed_total",
		Help:      "Number of Kafka messages the insights consumer could not handle.",
	}, []string{"topic", "event_type"})

	deadLetteredCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitassess",
		Subsystem: "consumer",
		Name:      "messages_dead_lettered_total",
		Help:      "Number of rejected Kafka messages forwarded to the dead-letter topic.",
	}, []string{"topic", "event_type"})

	lastMessageGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "fitassess",
		Subsystem: "consumer",
		Name:      "last_message_timestamp_seconds",
		Help:      "Timestamp of the most recent Kafka message processed.",
	}, []string{"topic"})

	completionsByLevel = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitassess",
		Subsystem: "insights",
		Name:      "completions_by_level_total",
		Help:      "Completed assessments by activity level.",
	}, []string{"activity_level"})

	completionsByGoal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitassess",
		Subsystem: "insights",
		Name:      "completions_by_goal_total",
		Help:      "Completed assessments by goal.",
	}, []string{"goal"})

	zoneSelections = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitassess",
		Subsystem: "insights",
		Name:      "zone_selections_total",
		Help:      "Target zones selected across completed assessments.",
	}, []string{"zone"})

	injuryReports = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitassess",
		Subsystem: "insights",
		Name:      "injury_reports_total",
		Help:      "Injuries reported across completed assessments.",
	}, []string{"injury"})

	exerciseCounts = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fitassess",
		Subsystem: "insights",
		Name:      "plan_exercises",
		Help:      "Exercises matched per completed assessment.",
		Buckets:   prometheus.LinearBuckets(0, 1, 10),
	})
)

func init() {
	prometheus.MustRegister(
		processedCounter, failedCounter, deadLetteredCounter, lastMessageGauge,
		completionsByLevel, completionsByGoal, zoneSelections, injuryReports, exerciseCounts,
	)
}

func eventTypeLabel(msg Message) string {
	switch eventType := msg.Headers[events.HeaderEventType]; eventType {
	case "", events.TypeAssessmentCompleted:
		return eventType
	default:
		return otherLabel
	}
}

func levelLabel(level string) string {
	if _, err := profile.ParseActivityLevel(level); err != nil {
		return otherLabel
	}
	return level
}

func goalLabel(goal string) string {
	if !profile.IsSuggestedGoal(goal) {
		return otherLabel
	}
	return goal
}

func zoneLabel(zone string) string {
	if !profile.IsKnownZone(zone) {
		return otherLabel
	}
	return zone
}

func injuryLabel(injury string) string {
	if !profile.IsKnownInjury(injury) {
		return otherLabel
	}
	return injury
}

func recordProcessed(msg Message) {
	processedCounter.WithLabelValues(msg.Topic, eventTypeLabel(msg)).Inc()
	if !msg.Timestamp.IsZero() {
		lastMessageGauge.WithLabelValues(msg.Topic).Set(float64(msg.Timestamp.Unix()))
	}
}

func recordFailed(msg Message) {
	failedCounter.WithLabelValues(msg.Topic, eventTypeLabel(msg)).Inc()
}

func recordDeadLettered(msg Message) {
	deadLetteredCounter.WithLabelValues(msg.Topic, eventTypeLabel(msg)).Inc()
}

func recordCompletion(evt events.AssessmentCompleted) {
	completionsByLevel.WithLabelValues(levelLabel(evt.ActivityLevel)).Inc()
	completionsByGoal.WithLabelValues(goalLabel(evt.Goal)).Inc()
	for _, zone := range evt.TargetZones {
		zoneSelections.WithLabelValues(zoneLabel(zone)).Inc()
	}
	if len(evt.Injuries) == 0 {
		injuryReports.WithLabelValues(profile.InjuryNone).Inc()
	}
	for _, injury := range evt.Injuries {
		injuryReports.WithLabelValues(injuryLabel(injury)).Inc()
	}
	exerciseCounts.Observe(float64(evt.ExerciseCount))
}
