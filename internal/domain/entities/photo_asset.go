package entities

// SignedUpload is the one-time upload target issued by the photo API.
type SignedUpload struct {
	SignedURL string `json:"signedUrl"`
}

// PhotoSubmission is the reply of the one-time upload target.
type PhotoSubmission struct {
	PhotoUUID            string   `json:"photoUuid"`
	Issues               []string `json:"issues"`
	IDPhotoURL           string   `json:"idPhotoUrl"`
	IDPhotoPngURL        string   `json:"idPhotoPngUrl,omitempty"`
	IDPhotoOriginalBgURL string   `json:"idPhotoOriginalBgUrl,omitempty"`
}

// FinalPhoto is the unwatermarked deliverable for a paid order.
type FinalPhoto struct {
	PhotoUUID            string `json:"photoUuid"`
	SpecCode             string `json:"specCode"`
	IDPhotoURL           string `json:"idPhotoUrl"`
	IDPhotoOriginalBgURL string `json:"idPhotoOriginalBgUrl"`
}

// OrderMetadata is pushed back into the photo API once payment is verified.
type OrderMetadata struct {
	PaymentIntentID    string `json:"paymentIntentId"`
	AmountInCents      int64  `json:"amountInCents"`
	Currency           string `json:"currency"`
	PrintedPhotoNumber int    `json:"printedPhotoNumber"`
	PaymentStatus      string `json:"paymentStatus"`
}

// PaidPhoto is the reconciliation result: the final asset plus the payment
// fields read from the processor.
type PaidPhoto struct {
	Photo         FinalPhoto
	AmountInCents int64
	Currency      string
	PaymentStatus PaymentStatus
}
