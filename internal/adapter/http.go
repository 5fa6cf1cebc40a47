package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-resource-sync/internal/logger"
	"github.com/MKhiriev/go-resource-sync/internal/utils"
	"github.com/MKhiriev/go-resource-sync/models"
)

// Config holds the settings of the HTTP sync client.
type Config struct {
	// BaseURL is the server address, with or without a scheme.
	BaseURL string

	// Timeout bounds each request. Non-positive values fall back to 15s.
	Timeout time.Duration
}

type httpSyncClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPSyncClient constructs an HTTP/REST implementation of [SyncClient].
// It normalises and validates the base URL and configures the underlying
// HTTP client with the resolved base URL and request timeout.
func NewHTTPSyncClient(cfg Config, logger *logger.Logger) (SyncClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid sync server address: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpSyncClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpSyncClient) Download(ctx context.Context, req models.DownloadRequest) (models.DownloadResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/sync/download")
	if err != nil {
		return models.DownloadResponse{}, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DownloadResponse{}, err
	}

	var response models.DownloadResponse
	if err = json.Unmarshal(resp.Body(), &response); err != nil {
		return models.DownloadResponse{}, fmt.Errorf("download decode response: %w", err)
	}

	return response, nil
}

func (h *httpSyncClient) Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error) {
	// the fingerprint is derived from the items, so a retry with the same
	// items resends the identical fingerprint and is replayed server-side
	if req.Fingerprint == "" {
		fingerprint, err := utils.FingerprintValue(req.Items)
		if err != nil {
			return models.UploadResponse{}, fmt.Errorf("upload fingerprint: %w", err)
		}
		req.Fingerprint = fingerprint
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/sync/upload")
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("upload request: %w", err)
	}

	mappedErr := mapHTTPError(resp)
	if mappedErr != nil && !errors.Is(mappedErr, ErrConflict) {
		return models.UploadResponse{}, mappedErr
	}

	// 409 still carries per-item outcomes the caller needs for reconciliation
	var response models.UploadResponse
	if err = json.Unmarshal(resp.Body(), &response); err != nil {
		return models.UploadResponse{}, fmt.Errorf("upload decode response: %w", err)
	}

	return response, mappedErr
}

func (h *httpSyncClient) Batch(ctx context.Context, req models.BatchRequest) (models.BatchResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/batch")
	if err != nil {
		return models.BatchResponse{}, fmt.Errorf("batch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BatchResponse{}, err
	}

	var response models.BatchResponse
	if err = json.Unmarshal(resp.Body(), &response); err != nil {
		return models.BatchResponse{}, fmt.Errorf("batch decode response: %w", err)
	}

	return response, nil
}
