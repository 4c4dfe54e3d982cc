package handler

import (
	"context"

	"github.com/setsunaxe7/pokemart-fulfillment/internal/dispatcher"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/sirupsen/logrus"
)

type DeliveryServiceIn interface {
	CreateDelivery(ctx context.Context, record models.GradingRecord) error
}

type DeliveryHandler struct {
	DeliveryService DeliveryServiceIn
}

func Delivery(s DeliveryServiceIn) *DeliveryHandler {
	return &DeliveryHandler{
		DeliveryService: s,
	}
}

func (h *DeliveryHandler) Routes() *dispatcher.Dispatcher {
	return dispatcher.New(models.DeliveryQueue).
		Handle(models.CreateDeliveryKey, h.CreateDelivery)
}

func (h *DeliveryHandler) CreateDelivery(ctx context.Context, raw []byte) error {
	var record models.GradingRecord
	if err := dispatcher.Decode(raw, &record); err != nil {
		logrus.Errorf("Error unmarshalling delivery request: %s", err.Error())
		return err
	}

	if err := h.DeliveryService.CreateDelivery(ctx, record); err != nil {
		logrus.Errorf("Error creating delivery: %s", err.Error())
		return err
	}
	return nil
}
