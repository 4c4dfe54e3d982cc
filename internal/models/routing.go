package models

const (
	ExchangeName = "grading_topic"

	CreateGradingKey         = "create.grading"
	GetGradingKey            = "get.grading"
	StatusUpdateKey          = "status.update"
	ResultUpdateKey          = "result.update"
	DeliveryUpdateKey        = "delivery.update"
	CreateDeliveryKey        = "create.delivery"
	CreateExternalGradingKey = "create.externalGrading"
	UpdateExternalGradingKey = "update.externalGrading"
	DefaultReplyKey          = "request.return"
	GradingNotifyKey         = "grading.notify"
	DeliveryNotifyKey        = "delivery.notify"
	RefundNotifyKey          = "refund.notify"

	NotifySubject     = "notify"
	DeadLetterSubject = "deadletter"

	GradingServiceName  = "Grading"
	DeliveryServiceName = "Delivery"
	RefundServiceName   = "Refund"
)

const (
	GradingQueue         = "grading"
	ExternalGradingQueue = "external_grading"
	DeliveryQueue        = "delivery"
	NotificationQueue    = "notification"
	DeadLetterQueue      = "deadletter"
)

// QueueBinding is a durable queue and the patterns it is bound to on the exchange.
type QueueBinding struct {
	Queue    string
	Patterns []string
}

var (
	GradingBinding         = QueueBinding{Queue: GradingQueue, Patterns: []string{"*.grading", "*.update"}}
	ExternalGradingBinding = QueueBinding{Queue: ExternalGradingQueue, Patterns: []string{"*.externalGrading"}}
	DeliveryBinding        = QueueBinding{Queue: DeliveryQueue, Patterns: []string{"*.delivery"}}
	NotificationBinding    = QueueBinding{Queue: NotificationQueue, Patterns: []string{"*.notify"}}
	DeadLetterBinding      = QueueBinding{Queue: DeadLetterQueue, Patterns: []string{"*.deadletter"}}
)

// AllBindings lists every queue the sagas rely on.
func AllBindings() []QueueBinding {
	return []QueueBinding{
		GradingBinding,
		ExternalGradingBinding,
		DeliveryBinding,
		NotificationBinding,
		DeadLetterBinding,
	}
}
