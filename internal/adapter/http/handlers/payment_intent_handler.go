package handlers

import (
	"errors"
	"net/http"

	request "photo_studio/internal/adapter/http/dto/request"
	response "photo_studio/internal/adapter/http/dto/response"
	"photo_studio/internal/domain/pricing"
	"photo_studio/internal/usecase"
	"photo_studio/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentIntentHandler opens processor payment intents for photo orders.
type PaymentIntentHandler struct {
	usecase usecase.IPaymentIntentUseCase
}

func NewPaymentIntentHandler(uc usecase.IPaymentIntentUseCase) *PaymentIntentHandler {
	return &PaymentIntentHandler{usecase: uc}
}

// CreatePaymentIntent godoc
// @Summary      Create a payment intent for a photo order
// @Description  With packageId the amount is priced from the catalog. Without it amountInCent is taken as the processor amount.
// @Tags         payment
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreatePaymentIntentRequest  true  "order and selection"
// @Success      200   {object}  response.PaymentIntentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /stripe/create-payment-intent [post]
func (h *PaymentIntentHandler) CreatePaymentIntent(c *gin.Context) {
	var payload request.CreatePaymentIntentRequest
	if !bindJSON(c, &payload) {
		return
	}

	result, err := h.usecase.CreatePaymentIntent(c.Request.Context(), usecase.CreatePaymentIntentInput{
		PhotoUUID:             payload.ResolvePhotoUUID(),
		PackageID:             payload.PackageID,
		AdditionalPhotoNumber: payload.AdditionalPhotoNumber,
		AmountInCent:          payload.AmountInCent,
		Currency:              payload.Currency,
		PrintedPhotoNumber:    payload.PrintedPhotoNumber,
	})
	if err != nil {
		writeError(c, mapPaymentIntentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentIntentResult(result))
}

func mapPaymentIntentError(err error) *pkg.AppError {
	if appErr, ok := timeoutError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrMissingIntentFields):
		return validationError(usecase.ErrMissingIntentFields)
	case errors.Is(err, usecase.ErrMissingPhotoUUID):
		return validationError(usecase.ErrMissingPhotoUUID)
	case errors.Is(err, usecase.ErrInvalidIntentCurrency):
		return validationError(usecase.ErrInvalidIntentCurrency)
	case errors.Is(err, pricing.ErrNegativeAdditionalUnits):
		return validationError(pricing.ErrNegativeAdditionalUnits)
	case errors.Is(err, pricing.ErrTooManyAdditionalUnits):
		return validationError(pricing.ErrTooManyAdditionalUnits)
	case errors.Is(err, pricing.ErrAmountOverflow):
		return pkg.NewDomainError("INVALID_AMOUNT", "Order amount out of range", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPackageNotFound):
		return pkg.NewDomainError("PACKAGE_NOT_FOUND", "Package not found", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNonPositiveAmount):
		return pkg.NewDomainError("INVALID_AMOUNT", "Payment amount must be greater than zero", err, http.StatusBadRequest)
	default:
		return pkg.NewInternalError(err)
	}
}
