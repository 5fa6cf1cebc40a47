package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-resource-sync/internal/batch"
	"github.com/MKhiriev/go-resource-sync/internal/logger"
	"github.com/MKhiriev/go-resource-sync/internal/service"
	"github.com/MKhiriev/go-resource-sync/internal/utils"
	"github.com/MKhiriev/go-resource-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSyncService struct {
	downloadFn func(ctx context.Context, request models.DownloadRequest) (models.DownloadResponse, error)
	uploadFn   func(ctx context.Context, request models.UploadRequest) (*service.UploadOutcome, error)
}

func (s *stubSyncService) Download(ctx context.Context, request models.DownloadRequest) (models.DownloadResponse, error) {
	return s.downloadFn(ctx, request)
}

func (s *stubSyncService) Upload(ctx context.Context, request models.UploadRequest) (*service.UploadOutcome, error) {
	return s.uploadFn(ctx, request)
}

func newHandlerWithSyncService(svc service.SyncService) *Handler {
	return &Handler{
		services: &service.Services{SyncService: svc},
		logger:   logger.Nop(),
	}
}

func postJSON(t *testing.T, h http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(data))
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestDownloadHandler_OK(t *testing.T) {
	h := newHandlerWithSyncService(&stubSyncService{
		downloadFn: func(_ context.Context, request models.DownloadRequest) (models.DownloadResponse, error) {
			assert.Equal(t, "client-1", request.ClientID)
			return models.DownloadResponse{
				SyncTime: 12345,
				Items: map[string][]models.ChangeEnvelope{
					"notes": {{SyncID: "s1", ResourceName: "notes", Action: models.ActionCreate, LastModified: 100}},
				},
			}, nil
		},
	})

	rr := postJSON(t, h.download, "/api/sync/download", models.DownloadRequest{
		ClientID: "client-1",
		Queries:  map[string]models.ResourceQuery{"notes": {}},
	})

	require.Equal(t, http.StatusOK, rr.Code)

	var response models.DownloadResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, int64(12345), response.SyncTime)
	assert.Len(t, response.Items["notes"], 1)
}

func TestDownloadHandler_InvalidJSON(t *testing.T) {
	h := newHandlerWithSyncService(&stubSyncService{})

	req := httptest.NewRequest(http.MethodPost, "/api/sync/download", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	h.download(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDownloadHandler_ServiceErrorMapped(t *testing.T) {
	h := newHandlerWithSyncService(&stubSyncService{
		downloadFn: func(context.Context, models.DownloadRequest) (models.DownloadResponse, error) {
			return models.DownloadResponse{}, batch.WrapError(batch.KindNotFound, service.ErrUnknownResource)
		},
	})

	rr := postJSON(t, h.download, "/api/sync/download", models.DownloadRequest{
		Queries: map[string]models.ResourceQuery{"ghosts": {}},
	})

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUploadHandler_CleanCommit(t *testing.T) {
	h := newHandlerWithSyncService(&stubSyncService{
		uploadFn: func(_ context.Context, request models.UploadRequest) (*service.UploadOutcome, error) {
			assert.NotEmpty(t, request.Fingerprint, "omitted fingerprint must be computed server-side")
			return &service.UploadOutcome{
				Response: models.UploadResponse{
					LastUploadTime: 5000,
					Items:          []models.UploadItemResult{{SyncID: "s1", Status: models.UploadStatusOK}},
				},
			}, nil
		},
	})

	rr := postJSON(t, h.upload, "/api/sync/upload", models.UploadRequest{
		ClientID: "client-1",
		Items: []models.ChangeEnvelope{
			{ResourceName: "notes", Action: models.ActionCreate, Element: json.RawMessage(`{"name":"x"}`)},
		},
	})

	require.Equal(t, http.StatusOK, rr.Code)

	var response models.UploadResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, int64(5000), response.LastUploadTime)
}

func TestUploadHandler_ConflictGets409(t *testing.T) {
	h := newHandlerWithSyncService(&stubSyncService{
		uploadFn: func(context.Context, models.UploadRequest) (*service.UploadOutcome, error) {
			return &service.UploadOutcome{
				Response: models.UploadResponse{
					Items: []models.UploadItemResult{{SyncID: "s1", Status: models.UploadStatusConflict}},
				},
			}, nil
		},
	})

	rr := postJSON(t, h.upload, "/api/sync/upload", models.UploadRequest{
		ClientID: "client-1",
		Items: []models.ChangeEnvelope{
			{SyncID: "s1", ResourceName: "notes", Action: models.ActionUpdate, Element: json.RawMessage(`{}`)},
		},
	})

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestUploadHandler_ReplayIsVerbatim(t *testing.T) {
	snapshot := []byte(`{"last_upload_time":5000,"items":[{"sync_id":"s1","status":"ok"}]}`)

	h := newHandlerWithSyncService(&stubSyncService{
		uploadFn: func(context.Context, models.UploadRequest) (*service.UploadOutcome, error) {
			return &service.UploadOutcome{Replayed: true, Snapshot: snapshot}, nil
		},
	})

	rr := postJSON(t, h.upload, "/api/sync/upload", models.UploadRequest{
		ClientID: "client-1",
		Items: []models.ChangeEnvelope{
			{ResourceName: "notes", Action: models.ActionCreate, Element: json.RawMessage(`{"name":"x"}`)},
		},
	})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, string(snapshot), rr.Body.String(), "cached response must be replayed byte-for-byte")
}

func TestUploadHandler_FingerprintMismatch(t *testing.T) {
	h := newHandlerWithSyncService(&stubSyncService{})

	rr := postJSON(t, h.upload, "/api/sync/upload", models.UploadRequest{
		ClientID:    "client-1",
		Fingerprint: "deadbeef",
		Items: []models.ChangeEnvelope{
			{ResourceName: "notes", Action: models.ActionCreate, Element: json.RawMessage(`{"name":"x"}`)},
		},
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUploadHandler_DeclaredFingerprintAccepted(t *testing.T) {
	items := []models.ChangeEnvelope{
		{ResourceName: "notes", Action: models.ActionCreate, Element: json.RawMessage(`{"name":"x"}`)},
	}
	fingerprint, err := utils.FingerprintValue(items)
	require.NoError(t, err)

	h := newHandlerWithSyncService(&stubSyncService{
		uploadFn: func(_ context.Context, request models.UploadRequest) (*service.UploadOutcome, error) {
			assert.Equal(t, fingerprint, request.Fingerprint)
			return &service.UploadOutcome{
				Response: models.UploadResponse{
					Items: []models.UploadItemResult{{SyncID: "s1", Status: models.UploadStatusOK}},
				},
			}, nil
		},
	})

	rr := postJSON(t, h.upload, "/api/sync/upload", models.UploadRequest{
		ClientID:    "client-1",
		Fingerprint: fingerprint,
		Items:       items,
	})

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUploadHandler_InvalidJSON(t *testing.T) {
	h := newHandlerWithSyncService(&stubSyncService{})

	req := httptest.NewRequest(http.MethodPost, "/api/sync/upload", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	h.upload(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
