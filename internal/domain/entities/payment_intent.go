package entities

import (
	"strconv"
	"strings"
)

// PaymentStatus mirrors the processor's payment intent status.
type PaymentStatus string

const (
	PaymentStatusRequiresPaymentMethod PaymentStatus = "requires_payment_method"
	PaymentStatusRequiresConfirmation  PaymentStatus = "requires_confirmation"
	PaymentStatusRequiresAction        PaymentStatus = "requires_action"
	PaymentStatusProcessing            PaymentStatus = "processing"
	PaymentStatusSucceeded             PaymentStatus = "succeeded"
	PaymentStatusCanceled              PaymentStatus = "canceled"
)

// Metadata keys bound to every intent.
const (
	MetadataPhotoUUID          = "photoUuid"
	MetadataPrintedPhotoNumber = "printedPhotoNumber"
	MetadataAmountInCents      = "amountInCents"
	MetadataProcessorAmount    = "processorAmount"
	MetadataPackageID          = "packageId"
	MetadataCurrency           = "currency"
)

// PaymentIntent is the transient view of a processor-owned intent.
//
// ClientSecret is a client-side handshake token. It is excluded from JSON so
// it cannot leak through logs that serialize the struct.
type PaymentIntent struct {
	ID           string            `json:"id"`
	ClientSecret string            `json:"-"`
	Amount       int64             `json:"amount"`
	Currency     string            `json:"currency"`
	Status       PaymentStatus     `json:"status"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// PhotoUUID is the order identifier this intent was created for.
func (p PaymentIntent) PhotoUUID() string {
	return p.Metadata[MetadataPhotoUUID]
}

// PrintedPhotoNumber reads the unit count bound at creation; 0 when absent.
func (p PaymentIntent) PrintedPhotoNumber() int {
	n, err := strconv.Atoi(p.Metadata[MetadataPrintedPhotoNumber])
	if err != nil {
		return 0
	}
	return n
}

// PaymentIntentRequest is what the processor needs to open a new intent.
type PaymentIntentRequest struct {
	PhotoUUID          string
	Amount             int64
	Currency           string
	PrintedPhotoNumber int
	AmountInCents      int64
	PackageID          string
	ReturnURL          string
	IdempotencyKey     string
}

// Metadata returns the key/value pairs attached to the created intent.
func (r PaymentIntentRequest) Metadata() map[string]string {
	md := map[string]string{
		MetadataPhotoUUID:          r.PhotoUUID,
		MetadataPrintedPhotoNumber: strconv.Itoa(r.PrintedPhotoNumber),
		MetadataProcessorAmount:    strconv.FormatInt(r.Amount, 10),
		MetadataCurrency:           strings.ToLower(r.Currency),
	}
	if r.AmountInCents > 0 {
		md[MetadataAmountInCents] = strconv.FormatInt(r.AmountInCents, 10)
	}
	if r.PackageID != "" {
		md[MetadataPackageID] = r.PackageID
	}
	return md
}

// Processor error types that carry a message fit for the customer.
const (
	ProcessorErrorCard       = "card_error"
	ProcessorErrorValidation = "validation_error"
)

// UnexpectedPaymentMessage is shown for every other confirmation failure.
const UnexpectedPaymentMessage = "An unexpected error occurred."

// ProcessorError is a typed failure reported by the payment processor while
// confirming a payment.
type ProcessorError struct {
	Type    string
	Message string
}

func (e *ProcessorError) Error() string {
	return e.Type + ": " + e.Message
}

// CustomerMessage returns the text that may be shown to the customer.
func (e *ProcessorError) CustomerMessage() string {
	switch e.Type {
	case ProcessorErrorCard, ProcessorErrorValidation:
		return e.Message
	default:
		return UnexpectedPaymentMessage
	}
}
