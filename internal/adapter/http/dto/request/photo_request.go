package request

import "strings"

type GetSignedURLRequest struct {
	SpecCode      string   `json:"specCode"`
	PhotoTypeList []string `json:"photoTypeList"`
}

func (r GetSignedURLRequest) ResolveSpecCode() string {
	return strings.TrimSpace(r.SpecCode)
}

// VerifyPaymentRequest accepts orderId as an alias of photoUuid.
type VerifyPaymentRequest struct {
	PhotoUUID       string `json:"photoUuid"`
	OrderID         string `json:"orderId"`
	PaymentIntentID string `json:"paymentIntentId"`
}

func (r VerifyPaymentRequest) ResolvePhotoUUID() string {
	if v := strings.TrimSpace(r.PhotoUUID); v != "" {
		return v
	}
	return strings.TrimSpace(r.OrderID)
}

func (r VerifyPaymentRequest) ResolvePaymentIntentID() string {
	return strings.TrimSpace(r.PaymentIntentID)
}
