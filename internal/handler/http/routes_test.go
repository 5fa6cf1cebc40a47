package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-resource-sync/internal/batch"
	"github.com/MKhiriev/go-resource-sync/internal/logger"
	"github.com/MKhiriev/go-resource-sync/internal/service"
	"github.com/MKhiriev/go-resource-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoutedHandler() *Handler {
	return &Handler{
		services: &service.Services{
			SyncService: &stubSyncService{
				downloadFn: func(context.Context, models.DownloadRequest) (models.DownloadResponse, error) {
					return models.DownloadResponse{}, nil
				},
				uploadFn: func(context.Context, models.UploadRequest) (*service.UploadOutcome, error) {
					return &service.UploadOutcome{}, nil
				},
			},
		},
		dispatcher: batch.NewDispatcher(batch.NewAlwaysContinuePolicy(), logger.Nop()),
		buildInfo:  models.NewAppBuildInfo("v1.0.0", "2026-01-10", "abc1234"),
		logger:     logger.Nop(),
	}
}

func TestInit_RegisteredRoutes(t *testing.T) {
	router := newRoutedHandler().Init()

	tests := []struct {
		method string
		target string
		body   string
	}{
		{method: http.MethodPost, target: "/api/sync/download", body: `{"queries":{"notes":{}}}`},
		{method: http.MethodPost, target: "/api/sync/upload", body: `{"client_id":"c1","items":[]}`},
		{method: http.MethodPost, target: "/api/batch", body: `{"requests":[{"resource":"x","operation":"y"}]}`},
		{method: http.MethodGet, target: "/api/version", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.NotEqual(t, http.StatusNotFound, rr.Code, "route must be registered")
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestInit_WrongMethodHidesRoute(t *testing.T) {
	router := newRoutedHandler().Init()

	req := httptest.NewRequest(http.MethodGet, "/api/sync/upload", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	// unsupported methods respond 404, not 405
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_TraceIDOnEveryResponse(t *testing.T) {
	router := newRoutedHandler().Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}
