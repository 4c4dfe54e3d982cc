package handler

import (
	"context"

	"github.com/setsunaxe7/pokemart-fulfillment/internal/dispatcher"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/sirupsen/logrus"
)

type GradingServiceIn interface {
	CreateGrading(ctx context.Context, req models.GradingRecord) (*models.GradingRecord, error)
	AttachDelivery(ctx context.Context, record models.GradingRecord) error
	UpdateStatus(ctx context.Context, record models.GradingRecord) error
	UpdateResult(ctx context.Context, record models.GradingRecord) error
	GetGradings(ctx context.Context, req models.GetGradingRequest) error
}

type GradingHandler struct {
	GradingService GradingServiceIn
}

func Grading(s GradingServiceIn) *GradingHandler {
	return &GradingHandler{
		GradingService: s,
	}
}

// Routes lists every key the grading queue acts on.
func (h *GradingHandler) Routes() *dispatcher.Dispatcher {
	return dispatcher.New(models.GradingQueue).
		Handle(models.CreateGradingKey, h.CreateGrading).
		Handle(models.GetGradingKey, h.GetGrading).
		Handle(models.DeliveryUpdateKey, h.DeliveryUpdate).
		Handle(models.StatusUpdateKey, h.StatusUpdate).
		Handle(models.ResultUpdateKey, h.ResultUpdate)
}

func (h *GradingHandler) CreateGrading(ctx context.Context, raw []byte) error {
	var req models.GradingRecord
	if err := dispatcher.Decode(raw, &req); err != nil {
		logrus.Errorf("Error unmarshalling grading request: %s", err.Error())
		return err
	}

	if _, err := h.GradingService.CreateGrading(ctx, req); err != nil {
		logrus.Errorf("Error creating grading: %s", err.Error())
		return err
	}
	return nil
}

func (h *GradingHandler) GetGrading(ctx context.Context, raw []byte) error {
	var req models.GetGradingRequest
	if err := dispatcher.Decode(raw, &req); err != nil {
		logrus.Errorf("Error unmarshalling grading lookup: %s", err.Error())
		return err
	}
	return h.GradingService.GetGradings(ctx, req)
}

func (h *GradingHandler) DeliveryUpdate(ctx context.Context, raw []byte) error {
	return h.update(ctx, raw, h.GradingService.AttachDelivery)
}

func (h *GradingHandler) StatusUpdate(ctx context.Context, raw []byte) error {
	return h.update(ctx, raw, h.GradingService.UpdateStatus)
}

func (h *GradingHandler) ResultUpdate(ctx context.Context, raw []byte) error {
	return h.update(ctx, raw, h.GradingService.UpdateResult)
}

func (h *GradingHandler) update(ctx context.Context, raw []byte, apply func(context.Context, models.GradingRecord) error) error {
	var record models.GradingRecord
	if err := dispatcher.Decode(raw, &record); err != nil {
		logrus.Errorf("Error unmarshalling grading update: %s", err.Error())
		return err
	}

	if err := apply(ctx, record); err != nil {
		logrus.Errorf("Error applying update to grading %s: %s", record.GradingID, err.Error())
		return err
	}
	return nil
}
