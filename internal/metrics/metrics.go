package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	MessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saga_messages_consumed_total",
			Help: "Messages delivered to a saga consumer",
		},
		[]string{"queue", "routing_key"},
	)

	MessagesDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saga_messages_dropped_total",
			Help: "Messages acknowledged without being handled",
		},
		[]string{"queue", "reason"},
	)

	MessagesRetried = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saga_message_retries_total",
			Help: "Handler retries after a transient error",
		},
		[]string{"queue"},
	)

	DeadLettered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saga_dead_letters_total",
			Help: "Messages published on a dead letter key",
		},
		[]string{"queue"},
	)

	HandlerDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "saga_handler_duration_seconds",
			Help:    "Time spent handling one message including retries",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"queue"},
	)

	MessagesPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saga_messages_published_total",
			Help: "Messages accepted by the local broker channel",
		},
		[]string{"routing_key"},
	)

	PublishFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saga_publish_failures_total",
			Help: "Publish calls that returned an error",
		},
		[]string{"routing_key"},
	)

	Reconnects = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saga_broker_reconnects_total",
			Help: "Broker reconnects triggered by a stale handle",
		},
		[]string{"driver"},
	)

	CollaboratorCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saga_collaborator_calls_total",
			Help: "Outbound HTTP collaborator calls by outcome",
		},
		[]string{"collaborator", "outcome"},
	)

	RefundOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saga_refund_outcomes_total",
			Help: "Inspection results processed by the refund orchestrator",
		},
		[]string{"status"},
	)
)

var registerOnce sync.Once

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			MessagesConsumed,
			MessagesDropped,
			MessagesRetried,
			DeadLettered,
			HandlerDuration,
			MessagesPublished,
			PublishFailures,
			Reconnects,
			CollaboratorCalls,
			RefundOutcomes,
		)
	})
}

// Outcome turns an error into the label used by CollaboratorCalls.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
