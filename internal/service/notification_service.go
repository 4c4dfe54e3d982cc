package service

import (
	"context"
	"fmt"

	"github.com/setsunaxe7/pokemart-fulfillment/internal/errorx"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/sirupsen/logrus"
)

// NotificationService is the terminal stage: it forwards and never publishes.
type NotificationService struct {
	Notifier Notifier
}

func NewNotificationService(notifier Notifier) *NotificationService {
	return &NotificationService{Notifier: notifier}
}

// Forward sends the envelope on. The client already retries, so a failure here is final.
func (s *NotificationService) Forward(ctx context.Context, envelope models.NotificationEnvelope) error {
	logrus.WithFields(logrus.Fields{
		"service":    envelope.Service,
		"status":     envelope.Data.Status,
		"grading_id": envelope.Data.GradingID,
		"refund_id":  envelope.Data.RefundID,
	}).Info("Forwarding notification")

	if err := s.Notifier.Send(ctx, envelope); err != nil {
		return errorx.Permanent(fmt.Errorf("error forwarding %s notification: %w", envelope.Service, err))
	}
	return nil
}
