package models

type CarrierOrder struct {
	OrderDetails     string `json:"orderDetails"`
	FromAddressLine1 string `json:"fromAddressLine1"`
	FromAddressLine2 string `json:"fromAddressLine2"`
	FromZipCode      string `json:"fromZipCode"`
	ToAddressLine1   string `json:"toAddressLine1"`
	ToAddressLine2   string `json:"toAddressLine2"`
	ToZipCode        string `json:"toZipCode"`
	UserID           string `json:"userId"`
}

type CarrierOrderRequest struct {
	Order CarrierOrder `json:"order"`
}
