package pkg

import "net/http"

// HTTPError is the uniform error envelope returned to inbound callers.
type HTTPError struct {
	Error         string `json:"error"`
	Code          string `json:"code,omitempty"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
}

// AppError carries a client-safe message, a stable code and the HTTP status
// it maps to. Err keeps the underlying cause for logs only; it is never
// serialized.
type AppError struct {
	Code          string
	Message       string
	Err           error
	HTTPStatus    int
	PaymentStatus string
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// NewInternalError is the fallback for anything the handlers did not expect.
func NewInternalError(err error) *AppError {
	return NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
}

// WithPaymentStatus attaches the processor status reported on 402 responses.
func (e *AppError) WithPaymentStatus(status string) *AppError {
	e.PaymentStatus = status
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: e.Message, Code: e.Code, PaymentStatus: e.PaymentStatus}
}
