package request

import "strings"

// CreatePaymentIntentRequest carries two shapes. With packageId the amount
// is priced from the catalog; without it amountInCent is used as sent.
type CreatePaymentIntentRequest struct {
	AmountInCent       int64  `json:"amountInCent"`
	Currency           string `json:"currency"`
	PhotoUUID          string `json:"photoUuid"`
	OrderID            string `json:"orderId"`
	PrintedPhotoNumber int    `json:"printedPhotoNumber"`

	PackageID             string `json:"packageId"`
	AdditionalPhotoNumber int    `json:"additionalPhotoNumber"`
}

func (r CreatePaymentIntentRequest) ResolvePhotoUUID() string {
	if v := strings.TrimSpace(r.PhotoUUID); v != "" {
		return v
	}
	return strings.TrimSpace(r.OrderID)
}

// QuoteRequest is bound from the query string.
type QuoteRequest struct {
	PackageID             string `form:"packageId"`
	AdditionalPhotoNumber int    `form:"additionalPhotoNumber"`
}
