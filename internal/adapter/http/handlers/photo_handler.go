package handlers

import (
	"errors"
	"net/http"

	request "photo_studio/internal/adapter/http/dto/request"
	response "photo_studio/internal/adapter/http/dto/response"
	"photo_studio/internal/usecase"
	"photo_studio/pkg"

	"github.com/gin-gonic/gin"
)

// PhotoHandler brokers one-time upload targets from the photo API.
type PhotoHandler struct {
	usecase usecase.IPhotoUseCase
}

func NewPhotoHandler(uc usecase.IPhotoUseCase) *PhotoHandler {
	return &PhotoHandler{usecase: uc}
}

// GetSignedURL godoc
// @Summary      Request a one-time upload target
// @Tags         photo
// @Accept       json
// @Produce      json
// @Param        body  body      request.GetSignedURLRequest  true  "spec code and photo types"
// @Success      200   {object}  response.SignedURLResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /photo/get-signed-url [post]
func (h *PhotoHandler) GetSignedURL(c *gin.Context) {
	var payload request.GetSignedURLRequest
	if !bindJSON(c, &payload) {
		return
	}

	signed, err := h.usecase.GetSignedURL(c.Request.Context(), payload.ResolveSpecCode(), payload.PhotoTypeList)
	if err != nil {
		writeError(c, mapPhotoError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromSignedUpload(signed))
}

func mapPhotoError(err error) *pkg.AppError {
	if appErr, ok := timeoutError(err); ok {
		return appErr
	}
	if upstreamErr, ok := pkg.AsUpstreamError(err); ok {
		return forwardedError(upstreamErr)
	}
	switch {
	case errors.Is(err, usecase.ErrMissingSpecCode):
		return validationError(usecase.ErrMissingSpecCode)
	default:
		return pkg.NewInternalError(err)
	}
}
