package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const Namespace = "gatekeeper"

var (
	JoinDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "join_decisions_total",
		Help:      "Total number of join request decisions",
	}, []string{"decision"})

	DeletedMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "deleted_messages_total",
		Help:      "Total number of deleted messages",
	}, []string{"reason"})

	WarningsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "warnings_issued_total",
		Help:      "Total number of warnings issued",
	})

	EscalationActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "escalation_actions_total",
		Help:      "Total number of warning-limit escalation actions",
	}, []string{"action"})

	PendingVerifications = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "pending_verifications",
		Help:      "Number of members currently awaiting verification",
	})

	UpdateProcessingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "update_processing_duration_seconds",
		Help:      "Duration of update processing",
		Buckets:   prometheus.DefBuckets,
	}, []string{"type", "status"})
)

func IncJoinDecision(decision string) {
	JoinDecisions.WithLabelValues(decision).Inc()
}

func IncDeletedMessages(reason string) {
	DeletedMessages.WithLabelValues(reason).Inc()
}

func IncWarningsIssued() {
	WarningsIssued.Inc()
}

func IncEscalationAction(action string) {
	EscalationActions.WithLabelValues(action).Inc()
}

func SetPendingVerifications(count float64) {
	PendingVerifications.Set(count)
}

func ObserveUpdateProcessing(updateType string, duration float64, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	UpdateProcessingDuration.WithLabelValues(updateType, status).Observe(duration)
}
