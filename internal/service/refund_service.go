package service

import (
	"context"
	"net/http"

	"github.com/setsunaxe7/pokemart-fulfillment/internal/errorx"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/metrics"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/sirupsen/logrus"
)

// RefundService turns an inspection result into a payment refund and a notification.
// Payment calls are not deduplicated: replaying a Refund result refunds again.
type RefundService struct {
	Payment      PaymentClient
	Verification VerificationClient
	Repo         RefundRepo
	Publisher    Publisher
	PhoneNumber  string
}

func NewRefundService(payment PaymentClient, verification VerificationClient, repo RefundRepo, publisher Publisher, phoneNumber string) *RefundService {
	return &RefundService{
		Payment:      payment,
		Verification: verification,
		Repo:         repo,
		Publisher:    publisher,
		PhoneNumber:  phoneNumber,
	}
}

// ForwardRefundProcess hands the submission to card verification and returns its status code.
func (s *RefundService) ForwardRefundProcess(ctx context.Context, form models.RefundProcessForm) (int, error) {
	return s.Verification.Forward(ctx, form)
}

func ValidateInspectionResult(req models.InspectionResultRequest) error {
	if verr := errorx.MissingFields(map[string]string{
		"requestId":        req.RequestID,
		"inspectionResult": string(req.InspectionResult),
		"userId":           req.UserID,
		"cardId":           req.CardID,
		"transactionId":    req.TransactionID,
	}, "requestId", "inspectionResult", "userId", "cardId", "transactionId"); verr != nil {
		return verr
	}
	if !req.InspectionResult.IsValid() {
		return errorx.InvalidField("inspectionResult", "must be Refund or Reject")
	}
	return nil
}

// ProcessInspectionResult never fails after validation: payment problems become
// "Refund Failed" and record or publish problems are only logged.
func (s *RefundService) ProcessInspectionResult(ctx context.Context, req models.InspectionResultRequest) (*models.InspectionOutcome, error) {
	if err := ValidateInspectionResult(req); err != nil {
		return nil, err
	}
	logrus.Infof("Received inspection result for request %s: %s", req.RequestID, req.InspectionResult)

	var statusMessage string
	switch req.InspectionResult {
	case models.InspectionRefund:
		statusMessage = s.refund(ctx, req)
	case models.InspectionReject:
		logrus.Infof("Refund request %s rejected", req.RequestID)
		statusMessage = models.RefundRejected
	}
	metrics.RefundOutcomes.WithLabelValues(statusMessage).Inc()

	record := &models.RefundRequest{
		RequestID:        req.RequestID,
		CardID:           req.CardID,
		UserID:           req.UserID,
		TransactionID:    req.TransactionID,
		Status:           models.RefundStatusCompleted,
		InspectionResult: req.InspectionResult,
		StatusMessage:    statusMessage,
	}
	if err := s.Repo.Upsert(ctx, record); err != nil {
		logrus.Errorf("Error recording refund request %s: %v", req.RequestID, err)
	}

	notification := models.NewNotification(models.RefundServiceName, models.NotificationData{
		UserID:      req.UserID,
		CardID:      req.CardID,
		Status:      statusMessage,
		PhoneNumber: s.PhoneNumber,
		RefundID:    req.RequestID,
	})
	if err := s.Publisher.Publish(ctx, models.RefundNotifyKey, notification); err != nil {
		logrus.Errorf("Error publishing refund notification for %s: %v", req.RequestID, err)
	}

	return &models.InspectionOutcome{
		RequestID:        req.RequestID,
		InspectionResult: req.InspectionResult,
		Status:           statusMessage,
	}, nil
}

func (s *RefundService) refund(ctx context.Context, req models.InspectionResultRequest) string {
	logrus.Infof("Initiating refund for transaction %s", req.TransactionID)
	status, err := s.Payment.Refund(ctx, req.TransactionID)
	if err != nil {
		logrus.Warnf("Refund for %s failed: %v", req.RequestID, err)
		return models.RefundFailed
	}
	if status != http.StatusOK {
		logrus.Warnf("Refund for %s failed with status %d", req.RequestID, status)
		return models.RefundFailed
	}
	return models.RefundSuccessful
}
