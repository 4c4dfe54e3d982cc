package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/errorx"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/sirupsen/logrus"
)

// GradingService owns the grading record and drives it from Created to Graded.
// It is the only writer of grading_records.
type GradingService struct {
	Repo      GradingRepo
	Publisher Publisher
	NewID     func() string
}

func NewGradingService(repo GradingRepo, publisher Publisher) *GradingService {
	return &GradingService{
		Repo:      repo,
		Publisher: publisher,
		NewID:     uuid.NewString,
	}
}

// ValidateGradingRequest checks the fields a grading submission cannot do without.
func ValidateGradingRequest(req models.GradingRecord) error {
	if verr := errorx.MissingFields(map[string]string{
		"userID":     req.UserID,
		"cardID":     req.CardID,
		"address":    req.Address,
		"postalCode": req.PostalCode,
	}, "userID", "cardID", "address", "postalCode"); verr != nil {
		return verr
	}
	return nil
}

// CreateGrading persists a new record with a fresh gradingID, notifies the user and
// asks the delivery worker to book a pickup. Nothing is published if validation fails.
func (s *GradingService) CreateGrading(ctx context.Context, req models.GradingRecord) (*models.GradingRecord, error) {
	if err := ValidateGradingRequest(req); err != nil {
		return nil, err
	}

	record := req
	record.GradingID = s.NewID()
	record.Status = models.GradingStatusCreated
	record.Result = ""
	record.DeliveryID = ""

	if err := s.Repo.Create(ctx, &record); err != nil {
		return nil, fmt.Errorf("error creating grading: %w", err)
	}
	logrus.Infof("Grading %s created for user %s", record.GradingID, record.UserID)

	s.notify(ctx, models.GradingNotifyKey, models.GradingServiceName, record)

	// The record exists now; a rerun would assign a second gradingID.
	if err := s.Publisher.Publish(ctx, models.CreateDeliveryKey, record); err != nil {
		logrus.Errorf("Grading %s persisted but %s was not published: %v", record.GradingID, models.CreateDeliveryKey, err)
		return nil, errorx.Permanent(fmt.Errorf("error publishing %s for grading %s: %w", models.CreateDeliveryKey, record.GradingID, err))
	}
	return &record, nil
}

// AttachDelivery records the carrier's delivery id and hands the card to the partner.
func (s *GradingService) AttachDelivery(ctx context.Context, record models.GradingRecord) error {
	if err := requireGradingID(record); err != nil {
		return err
	}

	record.Status = models.GradingStatusPendingGrading
	if err := s.updateFields(ctx, record.GradingID, map[string]interface{}{
		"delivery_id": record.DeliveryID,
		"status":      record.Status,
	}); err != nil {
		return err
	}

	s.notify(ctx, models.DeliveryNotifyKey, models.DeliveryServiceName, record)

	if err := s.Publisher.Publish(ctx, models.CreateExternalGradingKey, record); err != nil {
		return fmt.Errorf("error publishing %s: %w", models.CreateExternalGradingKey, err)
	}
	return nil
}

func (s *GradingService) UpdateStatus(ctx context.Context, record models.GradingRecord) error {
	if err := requireGradingID(record); err != nil {
		return err
	}
	if err := s.updateFields(ctx, record.GradingID, map[string]interface{}{
		"status": record.Status,
	}); err != nil {
		return err
	}
	s.notify(ctx, models.GradingNotifyKey, models.GradingServiceName, record)
	return nil
}

func (s *GradingService) UpdateResult(ctx context.Context, record models.GradingRecord) error {
	if err := requireGradingID(record); err != nil {
		return err
	}
	if err := s.updateFields(ctx, record.GradingID, map[string]interface{}{
		"status": record.Status,
		"result": record.Result,
	}); err != nil {
		return err
	}
	s.notify(ctx, models.GradingNotifyKey, models.GradingServiceName, record)
	return nil
}

// GetGradings answers a lookup on the requester's reply key. Bad requests and failed
// lookups are answered with an error payload rather than retried.
func (s *GradingService) GetGradings(ctx context.Context, req models.GetGradingRequest) error {
	replyKey := req.ReplyTo
	if replyKey == "" {
		replyKey = models.DefaultReplyKey
	}
	reply := models.GradingReply{
		CorrelationID: req.CorrelationID,
		Code:          http.StatusOK,
		Data:          []models.GradingRecord{},
	}

	if verr := errorx.MissingFields(map[string]string{"userID": req.UserID}, "userID"); verr != nil {
		reply.Code = verr.Code
		reply.Message = verr.Error()
	} else {
		records, err := s.Repo.GetBy(ctx, "user_id", req.UserID)
		switch {
		case err != nil:
			logrus.Errorf("Error looking up gradings for %s: %v", req.UserID, err)
			reply.Code = http.StatusInternalServerError
			reply.Message = "error retrieving gradings"
		case records != nil:
			reply.Data = append(reply.Data, *records...)
		}
	}

	if err := s.Publisher.Publish(ctx, replyKey, reply); err != nil {
		return fmt.Errorf("error publishing reply on %s: %w", replyKey, err)
	}
	return nil
}

// updateFields is last-write-wins per column. An unknown gradingID touches no rows and
// is not an error.
func (s *GradingService) updateFields(ctx context.Context, gradingID string, fields map[string]interface{}) error {
	rows, err := s.Repo.UpdateFields(ctx, gradingID, fields)
	if err != nil {
		return fmt.Errorf("error updating grading %s: %w", gradingID, err)
	}
	if rows == 0 {
		logrus.Warnf("Update for unknown grading %s matched no rows", gradingID)
	}
	return nil
}

// notify is best effort: a lost notification never blocks the saga.
func (s *GradingService) notify(ctx context.Context, routingKey, service string, record models.GradingRecord) {
	envelope := models.NotificationFromGrading(service, record)
	if err := s.Publisher.Publish(ctx, routingKey, envelope); err != nil {
		logrus.Errorf("Error publishing notification for grading %s: %v", record.GradingID, err)
	}
}

func requireGradingID(record models.GradingRecord) error {
	if verr := errorx.MissingFields(map[string]string{"gradingID": record.GradingID}, "gradingID"); verr != nil {
		return verr
	}
	return nil
}
