package models

import "time"

// NotificationEnvelope is the write-once event forwarded to the notification channel.
// No field carries omitempty: consumers rely on every key being present.
type NotificationEnvelope struct {
	Service   string           `json:"Service"`
	Text      string           `json:"Text"`
	Timestamp string           `json:"Timestamp"`
	Data      NotificationData `json:"Data"`
}

type NotificationData struct {
	UserID      string `json:"UserID"`
	CardID      string `json:"CardID"`
	Status      string `json:"Status"`
	GradingID   string `json:"GradingID"`
	ShippingID  string `json:"ShippingID"`
	AuctionID   string `json:"AuctionID"`
	Price       string `json:"Price"`
	PhoneNumber string `json:"PhoneNumber"`
	CardName    string `json:"CardName"`
	RefundID    string `json:"RefundID"`
}

func NewNotification(service string, data NotificationData) NotificationEnvelope {
	return NotificationEnvelope{
		Service:   service,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
	}
}

// NotificationFromGrading fills the grading related fields of a notification.
func NotificationFromGrading(service string, record GradingRecord) NotificationEnvelope {
	return NewNotification(service, NotificationData{
		UserID:     record.UserID,
		CardID:     record.CardID,
		Status:     string(record.Status),
		GradingID:  record.GradingID,
		ShippingID: record.DeliveryID,
		CardName:   record.CardName,
	})
}
