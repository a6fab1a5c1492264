package response

import (
	"photo_studio/internal/domain/entities"
)

type SignedURLResponse struct {
	SignedURL string `json:"signedUrl"`
}

func FromSignedUpload(s entities.SignedUpload) SignedURLResponse {
	return SignedURLResponse{SignedURL: s.SignedURL}
}

// PaidPhotoResponse carries both the order vocabulary (orderId,
// finalImageUrl) and the photo API vocabulary (photoUuid,
// idPhotoTempResultPhotoUrl) consumed by existing clients.
type PaidPhotoResponse struct {
	OrderID                    string `json:"orderId"`
	PhotoUUID                  string `json:"photoUuid"`
	SpecCode                   string `json:"specCode"`
	FinalImageURL              string `json:"finalImageUrl"`
	IDPhotoTempResultPhotoURL  string `json:"idPhotoTempResultPhotoUrl"`
	OriginalBackgroundImageURL string `json:"originalBackgroundImageUrl"`
	IDPhotoOriginalBgPhotoURL  string `json:"idPhotoOriginalBgPhotoUrl"`
	AmountInCents              int64  `json:"amountInCents,omitempty"`
	Currency                   string `json:"currency,omitempty"`
	PaymentStatus              string `json:"paymentStatus,omitempty"`
}

func FromPaidPhoto(p entities.PaidPhoto) PaidPhotoResponse {
	return PaidPhotoResponse{
		OrderID:                    p.Photo.PhotoUUID,
		PhotoUUID:                  p.Photo.PhotoUUID,
		SpecCode:                   p.Photo.SpecCode,
		FinalImageURL:              p.Photo.IDPhotoURL,
		IDPhotoTempResultPhotoURL:  p.Photo.IDPhotoURL,
		OriginalBackgroundImageURL: p.Photo.IDPhotoOriginalBgURL,
		IDPhotoOriginalBgPhotoURL:  p.Photo.IDPhotoOriginalBgURL,
		AmountInCents:              p.AmountInCents,
		Currency:                   p.Currency,
		PaymentStatus:              string(p.PaymentStatus),
	}
}
