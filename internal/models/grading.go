package models

import "time"

type GradingStatus string

const (
	GradingStatusCreated        GradingStatus = "Created"
	GradingStatusPendingGrading GradingStatus = "Pending Grading"
	GradingStatusInProgress     GradingStatus = "In Progress"
	GradingStatusGraded         GradingStatus = "Graded"
)

// GradingRecord is both the persisted grading row and the body of every grading saga event.
// Fields unknown at publish time are sent as empty strings.
type GradingRecord struct {
	GradingID  string        `json:"gradingID" gorm:"primaryKey"`
	UserID     string        `json:"userID" gorm:"index"`
	CardID     string        `json:"cardID"`
	CardName   string        `json:"cardName"`
	Address    string        `json:"address"`
	PostalCode string        `json:"postalCode"`
	Status     GradingStatus `json:"status"`
	Result     string        `json:"result"`
	DeliveryID string        `json:"deliveryID"`
	CreatedAt  time.Time     `json:"-"`
	UpdatedAt  time.Time     `json:"-"`
}

// GetGradingRequest asks the grading worker for every record of a user.
// Replies go to ReplyTo and carry CorrelationID back so concurrent requesters can tell them apart.
type GetGradingRequest struct {
	UserID        string `json:"userID"`
	CorrelationID string `json:"correlationID"`
	ReplyTo       string `json:"replyTo"`
}

type GradingReply struct {
	CorrelationID string          `json:"correlationID"`
	Code          int             `json:"code"`
	Data          []GradingRecord `json:"data"`
	Message       string          `json:"message"`
}
