package models

import "time"

type InspectionResult string

const (
	InspectionRefund InspectionResult = "Refund"
	InspectionReject InspectionResult = "Reject"

	RefundStatusPending   = "pending"
	RefundStatusCompleted = "completed"

	RefundSuccessful = "Refund Successful"
	RefundFailed     = "Refund Failed"
	RefundRejected   = "Refund Rejected"
)

func (r InspectionResult) IsValid() bool {
	switch r {
	case InspectionRefund, InspectionReject:
		return true
	default:
		return false
	}
}

// RefundRequest is the orchestrator's record of an inspected refund.
type RefundRequest struct {
	RequestID        string           `json:"requestId" gorm:"primaryKey"`
	CardID           string           `json:"cardId"`
	UserID           string           `json:"userId"`
	TransactionID    string           `json:"transactionId"`
	ImageURL         string           `json:"imageUrl"`
	RefundReason     string           `json:"refundReason"`
	Details          string           `json:"details"`
	Status           string           `json:"status"`
	InspectionResult InspectionResult `json:"inspectionResult"`
	StatusMessage    string           `json:"statusMessage"`
	CreatedAt        time.Time        `json:"-"`
	UpdatedAt        time.Time        `json:"-"`
}

// InspectionResultRequest is the body of POST /update-inspection-result.
type InspectionResultRequest struct {
	RequestID        string           `json:"requestId"`
	InspectionResult InspectionResult `json:"inspectionResult"`
	UserID           string           `json:"userId"`
	CardID           string           `json:"cardId"`
	TransactionID    string           `json:"transactionId"`
}

// RefundProcessForm holds the multipart fields forwarded to card verification.
type RefundProcessForm struct {
	Fields        map[string]string
	PhotoName     string
	PhotoContent  []byte
	PhotoMimeType string
}

type InspectionOutcome struct {
	RequestID        string           `json:"requestId"`
	InspectionResult InspectionResult `json:"inspectionResult"`
	Status           string           `json:"status"`
}
