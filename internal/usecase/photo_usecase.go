package usecase

import (
	"context"
	"errors"
	"strings"

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var ErrMissingSpecCode = errors.New("specCode is required")

// IPhotoUseCase is the signed-upload broker.
//
// Every submission attempt needs a fresh one-time target; nothing is cached.
type IPhotoUseCase interface {
	GetSignedURL(ctx context.Context, specCode string, photoTypes []string) (entities.SignedUpload, error)
}

type PhotoUseCase struct {
	photoAPI interfaces.IPhotoAPI
}

var _ IPhotoUseCase = (*PhotoUseCase)(nil)

func NewPhotoUseCase(photoAPI interfaces.IPhotoAPI) *PhotoUseCase {
	return &PhotoUseCase{photoAPI: photoAPI}
}

func (u *PhotoUseCase) GetSignedURL(ctx context.Context, specCode string, photoTypes []string) (entities.SignedUpload, error) {
	specCode = strings.TrimSpace(specCode)
	if specCode == "" {
		return entities.SignedUpload{}, ErrMissingSpecCode
	}
	if photoTypes == nil {
		photoTypes = []string{}
	}

	signed, err := u.photoAPI.GetSignedURL(ctx, specCode, photoTypes)
	if err != nil {
		log.Error().Err(err).Str("component", "photo.usecase").Str("spec_code", specCode).Msg("get signed url failed")
		return entities.SignedUpload{}, err
	}
	log.Debug().Str("component", "photo.usecase").Str("spec_code", specCode).Msg("signed url issued")
	return signed, nil
}
