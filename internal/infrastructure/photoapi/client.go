package photoapi

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

	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase/interfaces"
	"photo_studio/pkg"

	"github.com/rs/zerolog/log"
)

const (
	PathGetSignedURL       = "/v2/getSignedUrl"
	PathGetNoWatermark     = "/v2/getIdPhotoNoWatermark"
	PathUpdateUserMetadata = "/v2/updateIdPhotoUserMetadata"

	defaultTimeout = 60 * time.Second
)

var ErrIncompleteResponse = errors.New("photo api returned an incomplete response")

type Config struct {
	Endpoint  string
	APIKey    string
	APISecret string
	Timeout   time.Duration
	// HTTPClient defaults to a client without its own timeout; the per-call
	// deadline comes from Timeout.
	HTTPClient *http.Client
}

// Client forwards calls to the external photo API. The shared API key and
// secret are added to every JSON body and never leave the server.
type Client struct {
	endpoint   string
	creds      credentials
	timeout    time.Duration
	httpClient *http.Client
}

var _ interfaces.IPhotoAPI = (*Client)(nil)

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		creds:      credentials{APIKey: cfg.APIKey, APISecret: cfg.APISecret},
		timeout:    timeout,
		httpClient: hc,
	}
}

type credentials struct {
	APIKey    string `json:"apiKey"`
	APISecret string `json:"apiSecret"`
}

type signedURLRequest struct {
	SpecCode      string   `json:"specCode"`
	PhotoTypeList []string `json:"photoTypeList"`
	credentials
}

type noWatermarkRequest struct {
	PhotoUUID string `json:"photoUuid"`
	credentials
}

type userMetadataRequest struct {
	PhotoUUID    string                 `json:"photoUuid"`
	UserMetadata entities.OrderMetadata `json:"userMetadata"`
	credentials
}

func (c *Client) GetSignedURL(ctx context.Context, specCode string, photoTypes []string) (entities.SignedUpload, error) {
	if photoTypes == nil {
		photoTypes = []string{}
	}
	var out entities.SignedUpload
	err := c.post(ctx, PathGetSignedURL, signedURLRequest{SpecCode: specCode, PhotoTypeList: photoTypes, credentials: c.creds}, &out)
	if err != nil {
		return entities.SignedUpload{}, err
	}
	if out.SignedURL == "" {
		return entities.SignedUpload{}, fmt.Errorf("%w: %w: missing signedUrl", pkg.ErrUpstreamTransport, ErrIncompleteResponse)
	}
	return out, nil
}

func (c *Client) GetNoWatermarkPhoto(ctx context.Context, photoUUID string) (entities.FinalPhoto, error) {
	var out entities.FinalPhoto
	err := c.post(ctx, PathGetNoWatermark, noWatermarkRequest{PhotoUUID: photoUUID, credentials: c.creds}, &out)
	if err != nil {
		return entities.FinalPhoto{}, err
	}
	if out.IDPhotoURL == "" {
		return entities.FinalPhoto{}, fmt.Errorf("%w: %w: missing idPhotoUrl", pkg.ErrUpstreamTransport, ErrIncompleteResponse)
	}
	if out.PhotoUUID == "" {
		out.PhotoUUID = photoUUID
	}
	return out, nil
}

func (c *Client) UpdateUserMetadata(ctx context.Context, photoUUID string, md entities.OrderMetadata) error {
	return c.post(ctx, PathUpdateUserMetadata, userMetadataRequest{PhotoUUID: photoUUID, UserMetadata: md, credentials: c.creds}, nil)
}

// post sends body to path and decodes a 2xx reply into out (nil discards
// it). Non-2xx replies become *pkg.UpstreamError with the body verbatim.
func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.endpoint+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.transportError(ctx, reqCtx, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.transportError(ctx, reqCtx, path, err)
	}

	logger := log.With().
		Str("component", "photoapi.client").
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(started)).
		Logger()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Error().Str("response", string(raw)).Msg("forward request failed")
		return &pkg.UpstreamError{StatusCode: resp.StatusCode, ResponseText: string(raw)}
	}
	logger.Debug().Msg("forward request done")

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode %s response: %v", pkg.ErrUpstreamTransport, path, err)
	}
	return nil
}

// transportError separates our own deadline from a caller cancellation and
// from network failures.
func (c *Client) transportError(parent, reqCtx context.Context, path string, err error) error {
	if parent.Err() == nil && errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
		log.Warn().Str("component", "photoapi.client").Str("path", path).Dur("timeout", c.timeout).Msg("forward request timed out")
		return &pkg.TimeoutError{After: c.timeout}
	}
	if parent.Err() != nil {
		return fmt.Errorf("%w: %s: %w", pkg.ErrUpstreamTransport, path, parent.Err())
	}
	log.Error().Err(err).Str("component", "photoapi.client").Str("path", path).Msg("forward request transport failure")
	return fmt.Errorf("%w: %s: %v", pkg.ErrUpstreamTransport, path, err)
}
