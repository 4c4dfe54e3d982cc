package handler

import (
	"context"

	"github.com/setsunaxe7/pokemart-fulfillment/internal/dispatcher"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/sirupsen/logrus"
)

type ExternalGradingServiceIn interface {
	Submit(ctx context.Context, record models.GradingRecord) error
	Complete(ctx context.Context, record models.GradingRecord) error
}

type ExternalGradingHandler struct {
	ExternalGradingService ExternalGradingServiceIn
}

func ExternalGrading(s ExternalGradingServiceIn) *ExternalGradingHandler {
	return &ExternalGradingHandler{
		ExternalGradingService: s,
	}
}

func (h *ExternalGradingHandler) Routes() *dispatcher.Dispatcher {
	return dispatcher.New(models.ExternalGradingQueue).
		Handle(models.CreateExternalGradingKey, h.Submit).
		Handle(models.UpdateExternalGradingKey, h.Complete)
}

func (h *ExternalGradingHandler) Submit(ctx context.Context, raw []byte) error {
	var record models.GradingRecord
	if err := dispatcher.Decode(raw, &record); err != nil {
		logrus.Errorf("Error unmarshalling external grading submission: %s", err.Error())
		return err
	}
	return h.ExternalGradingService.Submit(ctx, record)
}

func (h *ExternalGradingHandler) Complete(ctx context.Context, raw []byte) error {
	var record models.GradingRecord
	if err := dispatcher.Decode(raw, &record); err != nil {
		logrus.Errorf("Error unmarshalling external grading result: %s", err.Error())
		return err
	}
	return h.ExternalGradingService.Complete(ctx, record)
}
