package pkg

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUpstreamTimeout is returned when an outbound call exceeds its deadline.
	ErrUpstreamTimeout = errors.New("upstream request timed out")
	// ErrUpstreamTransport covers connection failures and unreadable replies.
	ErrUpstreamTransport = errors.New("upstream transport failure")
)

// TimeoutError is an outbound call that exceeded its deadline. It matches
// ErrUpstreamTimeout.
type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %d seconds", e.Seconds())
}

func (e *TimeoutError) Unwrap() error {
	return ErrUpstreamTimeout
}

// Seconds is the configured timeout in whole seconds.
func (e *TimeoutError) Seconds() int {
	return int(e.After / time.Second)
}

// UpstreamError is an application-level rejection (non-2xx) from an external
// service. ResponseText is the raw body as received.
type UpstreamError struct {
	StatusCode   int
	ResponseText string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.ResponseText)
}

// AsUpstreamError unwraps err into an *UpstreamError when possible.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr, true
	}
	return nil, false
}
