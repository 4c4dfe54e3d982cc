package handler

import (
	"context"

	"github.com/setsunaxe7/pokemart-fulfillment/internal/dispatcher"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/sirupsen/logrus"
)

type NotificationServiceIn interface {
	Forward(ctx context.Context, envelope models.NotificationEnvelope) error
}

type NotificationHandler struct {
	NotificationService NotificationServiceIn
}

func Notification(s NotificationServiceIn) *NotificationHandler {
	return &NotificationHandler{
		NotificationService: s,
	}
}

// Handler accepts any *.notify key; the binding already limits what arrives.
func (h *NotificationHandler) Handler(ctx context.Context, routingKey string, raw []byte) error {
	var envelope models.NotificationEnvelope
	if err := dispatcher.Decode(raw, &envelope); err != nil {
		logrus.Errorf("Discarding malformed notification on %s: %s", routingKey, err.Error())
		return err
	}
	return h.NotificationService.Forward(ctx, envelope)
}
