package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/setsunaxe7/pokemart-fulfillment/internal/errorx"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/service"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var destination = service.Destination{AddressLine1: "90 Stamford Rd", AddressLine2: "#03-01", ZipCode: "178903"}

func TestSplitAddress(t *testing.T) {
	tests := []struct {
		address string
		line1   string
		line2   string
	}{
		{"1 Main St #02-03", "1 Main St", "#02-03"},
		{"  1 Main St  ", "1 Main St", ""},
		{"Blk 5 #01-01 #extra", "Blk 5", "#01-01 #extra"},
		{"#09-09", "", "#09-09"},
		{"", "", ""},
	}

	for _, tt := range tests {
		line1, line2 := service.SplitAddress(tt.address)
		assert.Equal(t, tt.line1, line1, tt.address)
		assert.Equal(t, tt.line2, line2, tt.address)
	}
}

func TestCreateDelivery_Success(t *testing.T) {
	mockCarrier := mocks.NewMockCarrierClient(t)
	mockPublisher := mocks.NewMockPublisher(t)
	deliveryService := service.NewDeliveryService(mockCarrier, mockPublisher, destination)
	ctx := context.Background()
	record := models.GradingRecord{
		GradingID:  "G-1",
		UserID:     "U1",
		Address:    "1 Main St #02-03",
		PostalCode: "123456",
		Status:     models.GradingStatusCreated,
	}

	mockCarrier.EXPECT().
		CreateOrder(ctx, models.CarrierOrder{
			OrderDetails:     "G-1",
			FromAddressLine1: "1 Main St",
			FromAddressLine2: "#02-03",
			FromZipCode:      "123456",
			ToAddressLine1:   "90 Stamford Rd",
			ToAddressLine2:   "#03-01",
			ToZipCode:        "178903",
			UserID:           "U1",
		}).
		Return("4321", nil).
		Once()
	mockPublisher.EXPECT().
		Publish(ctx, models.DeliveryUpdateKey, mock.MatchedBy(func(r models.GradingRecord) bool {
			return r.GradingID == "G-1" && r.DeliveryID == "4321" && r.Address == "1 Main St #02-03"
		})).
		Return(nil).
		Once()

	assert.NoError(t, deliveryService.CreateDelivery(ctx, record))
}

func TestCreateDelivery_CarrierFailurePublishesNothing(t *testing.T) {
	mockCarrier := mocks.NewMockCarrierClient(t)
	mockPublisher := mocks.NewMockPublisher(t)
	deliveryService := service.NewDeliveryService(mockCarrier, mockPublisher, destination)
	ctx := context.Background()
	record := models.GradingRecord{GradingID: "G-1", UserID: "U1", Address: "1 Main St", PostalCode: "123456"}

	mockCarrier.EXPECT().
		CreateOrder(ctx, mock.Anything).
		Return("", fmt.Errorf("%w: carrier returned 500", errorx.ErrCollaborator)).
		Once()

	err := deliveryService.CreateDelivery(ctx, record)

	assert.ErrorIs(t, err, errorx.ErrCollaborator)
	assert.False(t, errorx.IsPermanent(err))
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateDelivery_MissingFieldsIsPermanent(t *testing.T) {
	mockCarrier := mocks.NewMockCarrierClient(t)
	mockPublisher := mocks.NewMockPublisher(t)
	deliveryService := service.NewDeliveryService(mockCarrier, mockPublisher, destination)

	err := deliveryService.CreateDelivery(context.Background(), models.GradingRecord{GradingID: "G-1"})

	assert.True(t, errorx.IsPermanent(err))
	mockCarrier.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}
