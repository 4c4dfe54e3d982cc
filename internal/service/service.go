package service

import (
	"context"

	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
)

// Publisher defines the interface for publishing events on the topic exchange.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// GradingRepo persists grading records. UpdateFields reports how many rows it touched.
type GradingRepo interface {
	Create(ctx context.Context, record *models.GradingRecord) error
	GetBy(ctx context.Context, key string, value interface{}) (*[]models.GradingRecord, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
}

type RefundRepo interface {
	Upsert(ctx context.Context, request *models.RefundRequest) error
}

// ExternalGradingStore holds the partner-side copy of each grading.
type ExternalGradingStore interface {
	Save(ctx context.Context, record models.GradingRecord) error
	Get(ctx context.Context, gradingID string) (*models.GradingRecord, error)
}

// CallbackScheduler arranges for the partner's result to arrive later.
type CallbackScheduler interface {
	ScheduleCallback(ctx context.Context, record models.GradingRecord) error
}

type CarrierClient interface {
	CreateOrder(ctx context.Context, order models.CarrierOrder) (string, error)
}

type Notifier interface {
	Send(ctx context.Context, envelope models.NotificationEnvelope) error
}

type PaymentClient interface {
	Refund(ctx context.Context, paymentIntentID string) (int, error)
}

type VerificationClient interface {
	Forward(ctx context.Context, form models.RefundProcessForm) (int, error)
}
