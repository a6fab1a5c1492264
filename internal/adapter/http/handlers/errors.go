package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"photo_studio/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func validationError(err error) *pkg.AppError {
	return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
}

// timeoutError reports an outbound deadline without leaking the cause.
func timeoutError(err error) (*pkg.AppError, bool) {
	var timeoutErr *pkg.TimeoutError
	if !errors.As(err, &timeoutErr) {
		return nil, false
	}
	msg := fmt.Sprintf("Request timed out after %d seconds", timeoutErr.Seconds())
	return pkg.NewDomainError("UPSTREAM_TIMEOUT", msg, err, http.StatusInternalServerError), true
}

// forwardedError keeps the upstream status and text, the way a plain
// forwarded photo API call reports failures.
func forwardedError(upstreamErr *pkg.UpstreamError) *pkg.AppError {
	status := upstreamErr.StatusCode
	if status < 400 || status > 599 {
		status = http.StatusBadGateway
	}
	msg := "Server error: " + upstreamErr.ResponseText
	if status < http.StatusInternalServerError {
		msg = "Client error: " + upstreamErr.ResponseText
	}
	return pkg.NewDomainError("UPSTREAM_ERROR", msg, upstreamErr, status)
}

// bindJSON decodes the body into payload. An empty body leaves payload zero
// so that missing-field validation reports the field by name.
func bindJSON(c *gin.Context, payload any) bool {
	if err := c.ShouldBindJSON(payload); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, errInvalidRequest)
		return false
	}
	return true
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	event := log.Warn()
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(appErr.Err).
		Str("component", "http.handler").
		Str("path", c.FullPath()).
		Int("status", appErr.HTTPStatus).
		Str("code", appErr.Code).
		Msg(appErr.Message)

	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
