package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/setsunaxe7/pokemart-fulfillment/internal/dispatcher"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/errorx"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/handler"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/handler/mocks"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func gradingRecord() models.GradingRecord {
	return models.GradingRecord{
		GradingID:  "G1",
		UserID:     "U1",
		CardID:     "C1",
		CardName:   "Charizard",
		Address:    "1 Main St #02-03",
		PostalCode: "123456",
		Status:     models.GradingStatusCreated,
	}
}

func TestGradingHandler_CreateGrading(t *testing.T) {
	mockService := mocks.NewMockGradingServiceIn(t)
	routes := handler.Grading(mockService).Routes()

	req := gradingRecord()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	ctx := context.Background()

	mockService.EXPECT().
		CreateGrading(ctx, req).
		Return(&req, nil).
		Once()

	err = routes.Dispatch(ctx, models.CreateGradingKey, body)

	assert.NoError(t, err)
}

func TestGradingHandler_RoutesUpdatesToTheirServiceMethod(t *testing.T) {
	tests := []struct {
		name       string
		routingKey string
		expect     func(m *mocks.MockGradingServiceIn, ctx context.Context, record models.GradingRecord)
	}{
		{
			name:       "delivery update",
			routingKey: models.DeliveryUpdateKey,
			expect: func(m *mocks.MockGradingServiceIn, ctx context.Context, record models.GradingRecord) {
				m.EXPECT().AttachDelivery(ctx, record).Return(nil).Once()
			},
		},
		{
			name:       "status update",
			routingKey: models.StatusUpdateKey,
			expect: func(m *mocks.MockGradingServiceIn, ctx context.Context, record models.GradingRecord) {
				m.EXPECT().UpdateStatus(ctx, record).Return(nil).Once()
			},
		},
		{
			name:       "result update",
			routingKey: models.ResultUpdateKey,
			expect: func(m *mocks.MockGradingServiceIn, ctx context.Context, record models.GradingRecord) {
				m.EXPECT().UpdateResult(ctx, record).Return(nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockGradingServiceIn(t)
			routes := handler.Grading(mockService).Routes()
			ctx := context.Background()
			record := gradingRecord()
			body, err := json.Marshal(record)
			require.NoError(t, err)

			tt.expect(mockService, ctx, record)

			assert.NoError(t, routes.Dispatch(ctx, tt.routingKey, body))
		})
	}
}

func TestGradingHandler_GetGrading(t *testing.T) {
	mockService := mocks.NewMockGradingServiceIn(t)
	routes := handler.Grading(mockService).Routes()
	ctx := context.Background()
	req := models.GetGradingRequest{UserID: "U1", CorrelationID: "corr-1", ReplyTo: "reply.u1"}
	body, err := json.Marshal(req)
	require.NoError(t, err)

	mockService.EXPECT().GetGradings(ctx, req).Return(nil).Once()

	assert.NoError(t, routes.Dispatch(ctx, models.GetGradingKey, body))
}

func TestGradingHandler_UnmarshalErrorIsPermanent(t *testing.T) {
	mockService := mocks.NewMockGradingServiceIn(t)
	routes := handler.Grading(mockService).Routes()

	err := routes.Dispatch(context.Background(), models.StatusUpdateKey, []byte(`{"invalid json`))

	require.Error(t, err)
	assert.ErrorIs(t, err, errorx.ErrMalformedMessage)
	assert.True(t, errorx.IsPermanent(err))
	mockService.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestGradingHandler_ServiceErrorIsReturned(t *testing.T) {
	mockService := mocks.NewMockGradingServiceIn(t)
	routes := handler.Grading(mockService).Routes()
	ctx := context.Background()
	record := gradingRecord()
	body, err := json.Marshal(record)
	require.NoError(t, err)
	expectedError := errors.New("db down")

	mockService.EXPECT().UpdateResult(ctx, record).Return(expectedError).Once()

	err = routes.Dispatch(ctx, models.ResultUpdateKey, body)

	assert.ErrorIs(t, err, expectedError)
	assert.False(t, errorx.IsPermanent(err))
}

func TestGradingHandler_UnknownKeyNeverReachesService(t *testing.T) {
	mockService := mocks.NewMockGradingServiceIn(t)
	routes := handler.Grading(mockService).Routes()

	err := routes.Dispatch(context.Background(), "delete.grading", []byte(`{}`))

	assert.ErrorIs(t, err, dispatcher.ErrUnrecognizedKey)
	assert.Equal(t, []string{
		models.CreateGradingKey,
		models.DeliveryUpdateKey,
		models.GetGradingKey,
		models.ResultUpdateKey,
		models.StatusUpdateKey,
	}, routes.Keys())
}

func TestExternalGradingHandler_Routes(t *testing.T) {
	mockService := mocks.NewMockExternalGradingServiceIn(t)
	routes := handler.ExternalGrading(mockService).Routes()
	ctx := context.Background()
	record := gradingRecord()
	body, err := json.Marshal(record)
	require.NoError(t, err)

	mockService.EXPECT().Submit(ctx, record).Return(nil).Once()
	mockService.EXPECT().Complete(ctx, record).Return(nil).Once()

	assert.NoError(t, routes.Dispatch(ctx, models.CreateExternalGradingKey, body))
	assert.NoError(t, routes.Dispatch(ctx, models.UpdateExternalGradingKey, body))
}

func TestDeliveryHandler_CreateDelivery(t *testing.T) {
	mockService := mocks.NewMockDeliveryServiceIn(t)
	routes := handler.Delivery(mockService).Routes()
	ctx := context.Background()
	record := gradingRecord()
	body, err := json.Marshal(record)
	require.NoError(t, err)
	expectedError := errors.New("carrier unreachable")

	mockService.EXPECT().CreateDelivery(ctx, record).Return(expectedError).Once()

	err = routes.Dispatch(ctx, models.CreateDeliveryKey, body)

	assert.ErrorIs(t, err, expectedError)
}

func TestDeliveryHandler_IgnoresOtherDeliveryKeys(t *testing.T) {
	mockService := mocks.NewMockDeliveryServiceIn(t)
	routes := handler.Delivery(mockService).Routes()

	err := routes.Dispatch(context.Background(), "cancel.delivery", []byte(`{}`))

	assert.True(t, errorx.IsPermanent(err))
	mockService.AssertNotCalled(t, "CreateDelivery", mock.Anything, mock.Anything)
}

func TestNotificationHandler_ForwardsEnvelope(t *testing.T) {
	mockService := mocks.NewMockNotificationServiceIn(t)
	h := handler.Notification(mockService)
	ctx := context.Background()
	envelope := models.NotificationFromGrading(models.GradingServiceName, gradingRecord())
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	mockService.EXPECT().Forward(ctx, envelope).Return(nil).Once()

	assert.NoError(t, h.Handler(ctx, models.GradingNotifyKey, body))
}

func TestNotificationHandler_MalformedEnvelopeIsDropped(t *testing.T) {
	mockService := mocks.NewMockNotificationServiceIn(t)
	h := handler.Notification(mockService)

	err := h.Handler(context.Background(), models.GradingNotifyKey, []byte(`not json`))

	assert.True(t, errorx.IsPermanent(err))
	mockService.AssertNotCalled(t, "Forward", mock.Anything, mock.Anything)
}
