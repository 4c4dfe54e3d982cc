package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/setsunaxe7/pokemart-fulfillment/internal/errorx"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/service"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type refundMocks struct {
	payment      *mocks.MockPaymentClient
	verification *mocks.MockVerificationClient
	repo         *mocks.MockRefundRepo
	publisher    *mocks.MockPublisher
}

func newRefundService(t *testing.T) (*service.RefundService, refundMocks) {
	m := refundMocks{
		payment:      mocks.NewMockPaymentClient(t),
		verification: mocks.NewMockVerificationClient(t),
		repo:         mocks.NewMockRefundRepo(t),
		publisher:    mocks.NewMockPublisher(t),
	}
	return service.NewRefundService(m.payment, m.verification, m.repo, m.publisher, "+6590000000"), m
}

func inspection(result models.InspectionResult) models.InspectionResultRequest {
	return models.InspectionResultRequest{
		RequestID:        "R1",
		InspectionResult: result,
		UserID:           "U1",
		CardID:           "C1",
		TransactionID:    "pi_123",
	}
}

func expectRefundNotification(ctx context.Context, m refundMocks, status string) {
	m.publisher.EXPECT().
		Publish(ctx, models.RefundNotifyKey, mock.MatchedBy(func(n models.NotificationEnvelope) bool {
			return n.Service == "Refund" &&
				n.Data.RefundID == "R1" &&
				n.Data.Status == status &&
				n.Data.PhoneNumber == "+6590000000" &&
				n.Data.GradingID == ""
		})).
		Return(nil).
		Once()
}

func TestProcessInspectionResult_RefundSuccessful(t *testing.T) {
	refundService, m := newRefundService(t)
	ctx := context.Background()

	m.payment.EXPECT().Refund(ctx, "pi_123").Return(http.StatusOK, nil).Once()
	m.repo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(r *models.RefundRequest) bool {
			return r.RequestID == "R1" && r.StatusMessage == models.RefundSuccessful && r.Status == models.RefundStatusCompleted
		})).
		Return(nil).
		Once()
	expectRefundNotification(ctx, m, models.RefundSuccessful)

	outcome, err := refundService.ProcessInspectionResult(ctx, inspection(models.InspectionRefund))

	require.NoError(t, err)
	assert.Equal(t, "R1", outcome.RequestID)
	assert.Equal(t, models.InspectionRefund, outcome.InspectionResult)
	assert.Equal(t, "Refund Successful", outcome.Status)
}

func TestProcessInspectionResult_PaymentNon200IsRefundFailed(t *testing.T) {
	refundService, m := newRefundService(t)
	ctx := context.Background()

	m.payment.EXPECT().Refund(ctx, "pi_123").Return(http.StatusPaymentRequired, nil).Once()
	m.repo.EXPECT().Upsert(ctx, mock.Anything).Return(nil).Once()
	expectRefundNotification(ctx, m, models.RefundFailed)

	outcome, err := refundService.ProcessInspectionResult(ctx, inspection(models.InspectionRefund))

	require.NoError(t, err)
	assert.Equal(t, "Refund Failed", outcome.Status)
}

func TestProcessInspectionResult_PaymentUnreachableIsRefundFailed(t *testing.T) {
	refundService, m := newRefundService(t)
	ctx := context.Background()

	m.payment.EXPECT().Refund(ctx, "pi_123").Return(0, errors.New("connection refused")).Once()
	m.repo.EXPECT().Upsert(ctx, mock.Anything).Return(nil).Once()
	expectRefundNotification(ctx, m, models.RefundFailed)

	outcome, err := refundService.ProcessInspectionResult(ctx, inspection(models.InspectionRefund))

	require.NoError(t, err)
	assert.Equal(t, "Refund Failed", outcome.Status)
}

func TestProcessInspectionResult_RejectNeverCallsPayment(t *testing.T) {
	refundService, m := newRefundService(t)
	ctx := context.Background()

	m.repo.EXPECT().Upsert(ctx, mock.Anything).Return(nil).Once()
	expectRefundNotification(ctx, m, models.RefundRejected)

	outcome, err := refundService.ProcessInspectionResult(ctx, inspection(models.InspectionReject))

	require.NoError(t, err)
	assert.Equal(t, "Refund Rejected", outcome.Status)
	m.payment.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything)
}

func TestProcessInspectionResult_RecordAndPublishFailuresAreOnlyLogged(t *testing.T) {
	refundService, m := newRefundService(t)
	ctx := context.Background()

	m.repo.EXPECT().Upsert(ctx, mock.Anything).Return(errors.New("db down")).Once()
	m.publisher.EXPECT().Publish(ctx, models.RefundNotifyKey, mock.Anything).Return(errors.New("broker down")).Once()

	outcome, err := refundService.ProcessInspectionResult(ctx, inspection(models.InspectionReject))

	require.NoError(t, err)
	assert.Equal(t, "Refund Rejected", outcome.Status)
}

func TestProcessInspectionResult_MissingFields(t *testing.T) {
	refundService, m := newRefundService(t)
	req := inspection(models.InspectionRefund)
	req.CardID = ""
	req.TransactionID = ""

	outcome, err := refundService.ProcessInspectionResult(context.Background(), req)

	assert.Nil(t, outcome)
	var verr *errorx.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 400, verr.Code)
	assert.Len(t, verr.Details, 2)
	m.payment.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything)
	m.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessInspectionResult_UnknownResult(t *testing.T) {
	refundService, m := newRefundService(t)

	_, err := refundService.ProcessInspectionResult(context.Background(), inspection("Maybe"))

	var verr *errorx.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "inspectionResult", verr.Details[0].Path)
	m.repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestForwardRefundProcess_ReturnsCollaboratorStatus(t *testing.T) {
	refundService, m := newRefundService(t)
	ctx := context.Background()
	form := models.RefundProcessForm{Fields: map[string]string{"cardId": "C1"}}

	m.verification.EXPECT().Forward(ctx, form).Return(http.StatusAccepted, nil).Once()

	status, err := refundService.ForwardRefundProcess(ctx, form)

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)
}
