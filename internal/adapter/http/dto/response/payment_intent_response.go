package response

import (
	"photo_studio/internal/domain/pricing"
	"photo_studio/internal/usecase"
)

type PaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	ReturnURL       string `json:"returnUrl,omitempty"`
}

func FromPaymentIntentResult(r usecase.PaymentIntentResult) PaymentIntentResponse {
	return PaymentIntentResponse{
		ClientSecret:    r.Intent.ClientSecret,
		PaymentIntentID: r.Intent.ID,
		Amount:          r.Intent.Amount,
		Currency:        r.Intent.Currency,
		ReturnURL:       r.ReturnURL,
	}
}

type QuoteResponse struct {
	PackageID          string `json:"packageId"`
	TotalAmountInCents int64  `json:"totalAmountInCents"`
	ProcessorAmount    int64  `json:"processorAmount"`
	TotalPhotoNumber   int    `json:"totalPhotoNumber"`
	Currency           string `json:"currency"`
	FormattedTotal     string `json:"formattedTotal"`
}

func FromQuote(q pricing.Quote) QuoteResponse {
	return QuoteResponse{
		PackageID:          q.PackageID,
		TotalAmountInCents: q.TotalAmountInMinorUnits,
		ProcessorAmount:    q.ProcessorAmount,
		TotalPhotoNumber:   q.TotalUnitCount,
		Currency:           q.Currency,
		FormattedTotal:     pricing.FormatPrice(q.TotalAmountInMinorUnits, q.Currency),
	}
}
