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

// ReconciliationHandler releases the final photo once payment is verified.
type ReconciliationHandler struct {
	usecase usecase.IOrderReconciliationUseCase
}

func NewReconciliationHandler(uc usecase.IOrderReconciliationUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{usecase: uc}
}

// VerifyPaymentGetPhoto godoc
// @Summary      Verify payment and fetch the unwatermarked photo
// @Tags         photo
// @Accept       json
// @Produce      json
// @Param        body  body      request.VerifyPaymentRequest  true  "order and payment intent"
// @Success      200   {object}  response.PaidPhotoResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      402   {object}  pkg.HTTPError  "payment not succeeded, paymentStatus is set"
// @Failure      500   {object}  pkg.HTTPError
// @Router       /photo/verify-stripe-payment-get-photo [post]
func (h *ReconciliationHandler) VerifyPaymentGetPhoto(c *gin.Context) {
	var payload request.VerifyPaymentRequest
	if !bindJSON(c, &payload) {
		return
	}

	paid, err := h.usecase.VerifyPaymentGetPhoto(c.Request.Context(), payload.ResolvePhotoUUID(), payload.ResolvePaymentIntentID())
	if err != nil {
		writeError(c, mapReconciliationError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPaidPhoto(paid))
}

func mapReconciliationError(err error) *pkg.AppError {
	if appErr, ok := timeoutError(err); ok {
		return appErr
	}
	var notPaid *usecase.PaymentNotSucceededError
	if errors.As(err, &notPaid) {
		return pkg.NewDomainError("PAYMENT_NOT_SUCCEEDED", "Payment not succeeded", err, http.StatusPaymentRequired).
			WithPaymentStatus(string(notPaid.Status))
	}

	switch {
	case errors.Is(err, usecase.ErrMissingVerifyFields):
		return validationError(usecase.ErrMissingVerifyFields)
	case errors.Is(err, usecase.ErrInvalidPaymentIntent):
		return pkg.NewDomainError("INVALID_PAYMENT_INTENT", "Invalid payment intent ID", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIdentifierMismatch):
		return pkg.NewDomainError("IDENTIFIER_MISMATCH", usecase.ErrIdentifierMismatch.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCurrencyMismatch):
		return pkg.NewDomainError("CURRENCY_MISMATCH", usecase.ErrCurrencyMismatch.Error(), err, http.StatusBadRequest)
	}

	if upstreamErr, ok := pkg.AsUpstreamError(err); ok {
		return pkg.NewDomainError("UPSTREAM_ERROR", "Bad request: "+upstreamErr.ResponseText, err, http.StatusBadRequest)
	}
	return pkg.NewInternalError(err)
}
