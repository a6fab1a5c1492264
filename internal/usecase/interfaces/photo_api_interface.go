package interfaces

import (
	"context"

	"photo_studio/internal/domain/entities"
)

// IPhotoAPI is the outbound side of the request gateway towards the external
// photo-processing service. Implementations inject the shared API credential.
type IPhotoAPI interface {
	GetSignedURL(ctx context.Context, specCode string, photoTypes []string) (entities.SignedUpload, error)
	GetNoWatermarkPhoto(ctx context.Context, photoUUID string) (entities.FinalPhoto, error)
	UpdateUserMetadata(ctx context.Context, photoUUID string, md entities.OrderMetadata) error
}
