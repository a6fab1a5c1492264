package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	request "photo_studio/internal/adapter/http/dto/request"
	response "photo_studio/internal/adapter/http/dto/response"
	"photo_studio/internal/domain/entities"
)

const (
	PathGetSignedURL        = "/api/photo/get-signed-url"
	PathVerifyPaymentPhoto  = "/api/photo/verify-stripe-payment-get-photo"
	PathCreatePaymentIntent = "/api/stripe/create-payment-intent"
	PathCatalog             = "/api/catalog"
	PathQuote               = "/api/catalog/quote"
)

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// StudioService calls the studio API. The photo itself goes straight to the
// one-time upload target, never through the API.
type StudioService struct {
	http       *HTTPService
	timeout    time.Duration
	httpClient *http.Client
}

func NewStudioService(cfg Config) *StudioService {
	return &StudioService{
		http:       NewHTTPService(cfg.BaseURL, cfg.Timeout, cfg.HTTPClient),
		timeout:    cfg.Timeout,
		httpClient: cfg.HTTPClient,
	}
}

func (s *StudioService) GetSignedURL(ctx context.Context, specCode string, photoTypes []string) (string, error) {
	var out response.SignedURLResponse
	err := s.http.Post(ctx, PathGetSignedURL, request.GetSignedURLRequest{SpecCode: specCode, PhotoTypeList: photoTypes}, &out)
	if err != nil {
		return "", err
	}
	return out.SignedURL, nil
}

type createWatermarkPhotoRequest struct {
	ImageBase64 string `json:"imageBase64"`
}

// CreateWatermarkPhoto submits the image to the one-time target. It is not
// retried: the target may already be consumed.
func (s *StudioService) CreateWatermarkPhoto(ctx context.Context, signedURL, imageBase64 string) (entities.PhotoSubmission, error) {
	upload := NewHTTPService(uploadURL(signedURL), s.timeout, s.httpClient)

	var out entities.PhotoSubmission
	if err := upload.Post(ctx, "", createWatermarkPhotoRequest{ImageBase64: imageBase64}, &out); err != nil {
		return entities.PhotoSubmission{}, err
	}
	if out.Issues == nil {
		out.Issues = []string{}
	}
	return out, nil
}

// uploadURL forces TLS on the issued upload target.
func uploadURL(signedURL string) string {
	return strings.Replace(signedURL, "http:", "https:", 1)
}

func (s *StudioService) CreatePaymentIntent(ctx context.Context, payload request.CreatePaymentIntentRequest) (response.PaymentIntentResponse, error) {
	var out response.PaymentIntentResponse
	if err := s.http.Post(ctx, PathCreatePaymentIntent, payload, &out); err != nil {
		return response.PaymentIntentResponse{}, err
	}
	return out, nil
}

func (s *StudioService) VerifyPaymentGetPhoto(ctx context.Context, photoUUID, paymentIntentID string) (response.PaidPhotoResponse, error) {
	var out response.PaidPhotoResponse
	err := s.http.Post(ctx, PathVerifyPaymentPhoto, request.VerifyPaymentRequest{PhotoUUID: photoUUID, PaymentIntentID: paymentIntentID}, &out)
	if err != nil {
		return response.PaidPhotoResponse{}, err
	}
	return out, nil
}

func (s *StudioService) GetCatalog(ctx context.Context) (entities.Catalog, error) {
	var out entities.Catalog
	if err := s.http.Get(ctx, PathCatalog, &out); err != nil {
		return entities.Catalog{}, err
	}
	return out, nil
}

func (s *StudioService) Quote(ctx context.Context, packageID string, additional int) (response.QuoteResponse, error) {
	q := url.Values{}
	q.Set("packageId", packageID)
	q.Set("additionalPhotoNumber", strconv.Itoa(additional))

	var out response.QuoteResponse
	if err := s.http.Get(ctx, PathQuote+"?"+q.Encode(), &out); err != nil {
		return response.QuoteResponse{}, err
	}
	return out, nil
}
