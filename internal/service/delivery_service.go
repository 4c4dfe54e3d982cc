package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/setsunaxe7/pokemart-fulfillment/internal/errorx"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/sirupsen/logrus"
)

// Destination is where every card is shipped for grading.
type Destination struct {
	AddressLine1 string
	AddressLine2 string
	ZipCode      string
}

type DeliveryService struct {
	Carrier     CarrierClient
	Publisher   Publisher
	Destination Destination
}

func NewDeliveryService(carrier CarrierClient, publisher Publisher, destination Destination) *DeliveryService {
	return &DeliveryService{
		Carrier:     carrier,
		Publisher:   publisher,
		Destination: destination,
	}
}

// SplitAddress cuts at the first "#": "1 Main St #02-03" gives "1 Main St" and "#02-03".
// Without "#" the whole address is line1 and line2 is empty.
func SplitAddress(address string) (line1, line2 string) {
	before, after, found := strings.Cut(address, "#")
	if !found {
		return strings.TrimSpace(address), ""
	}
	return strings.TrimSpace(before), "#" + after
}

// CreateDelivery books a pickup and passes the carrier's id back to the grading worker.
// When the carrier fails nothing is published.
func (s *DeliveryService) CreateDelivery(ctx context.Context, record models.GradingRecord) error {
	if verr := errorx.MissingFields(map[string]string{
		"gradingID":  record.GradingID,
		"userID":     record.UserID,
		"address":    record.Address,
		"postalCode": record.PostalCode,
	}, "gradingID", "userID", "address", "postalCode"); verr != nil {
		return verr
	}

	line1, line2 := SplitAddress(record.Address)
	order := models.CarrierOrder{
		OrderDetails:     record.GradingID,
		FromAddressLine1: line1,
		FromAddressLine2: line2,
		FromZipCode:      record.PostalCode,
		ToAddressLine1:   s.Destination.AddressLine1,
		ToAddressLine2:   s.Destination.AddressLine2,
		ToZipCode:        s.Destination.ZipCode,
		UserID:           record.UserID,
	}

	deliveryID, err := s.Carrier.CreateOrder(ctx, order)
	if err != nil {
		return fmt.Errorf("error creating carrier order for grading %s: %w", record.GradingID, err)
	}

	record.DeliveryID = deliveryID
	if err := s.Publisher.Publish(ctx, models.DeliveryUpdateKey, record); err != nil {
		return fmt.Errorf("error publishing %s: %w", models.DeliveryUpdateKey, err)
	}
	logrus.Infof("Delivery %s booked for grading %s", deliveryID, record.GradingID)
	return nil
}
