// Package client is a Go SDK for the photo studio API. It mirrors the
// browser flow: upload a photo, open a payment intent for a selection,
// confirm it, then fetch the paid photo.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"photo_studio/pkg"
)

const DefaultTimeout = 60 * time.Second

// HTTPError is a non-2xx reply. Body holds the decoded error envelope when
// the server sent one.
type HTTPError struct {
	StatusCode int
	Body       pkg.HTTPError
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// AsHTTPError unwraps err into an *HTTPError when possible.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

// HTTPService sends JSON requests to one base URL. Each request is bounded
// by the service timeout.
type HTTPService struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

func NewHTTPService(baseURL string, timeout time.Duration, hc *http.Client) *HTTPService {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if hc == nil {
		hc = &http.Client{}
	}
	return &HTTPService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: hc,
	}
}

func (s *HTTPService) Get(ctx context.Context, endpoint string, out any) error {
	return s.request(ctx, http.MethodGet, endpoint, nil, out)
}

func (s *HTTPService) Post(ctx context.Context, endpoint string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return s.request(ctx, http.MethodPost, endpoint, payload, out)
}

func (s *HTTPService) request(ctx context.Context, method, endpoint string, payload []byte, out any) error {
	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(reqCtx, method, s.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return s.transportError(ctx, reqCtx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return s.transportError(ctx, reqCtx, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(raw, &httpErr.Body)
		return httpErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", pkg.ErrUpstreamTransport, err)
	}
	return nil
}

func (s *HTTPService) transportError(parent, reqCtx context.Context, err error) error {
	if parent.Err() != nil {
		return fmt.Errorf("%w: %w", pkg.ErrUpstreamTransport, parent.Err())
	}
	if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
		return &pkg.TimeoutError{After: s.timeout}
	}
	return fmt.Errorf("%w: %v", pkg.ErrUpstreamTransport, err)
}
