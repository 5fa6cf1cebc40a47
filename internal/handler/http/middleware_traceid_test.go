package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-resource-sync/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func executeWithTraceID(h *Handler, incomingTraceID string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.withTraceID(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if incomingTraceID != "" {
		req.Header.Set(traceIDHeader, incomingTraceID)
	}

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestWithTraceID_ReusesIncomingHeader(t *testing.T) {
	rr := executeWithTraceID(newTestHandler(), "my-custom-trace-id")

	assert.Equal(t, "my-custom-trace-id", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesUUIDWhenAbsent(t *testing.T) {
	rr := executeWithTraceID(newTestHandler(), "")

	generated := rr.Header().Get(traceIDHeader)
	require.NotEmpty(t, generated)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err, "generated trace id must be a valid UUID")
}

func TestWithTraceID_DistinctPerRequest(t *testing.T) {
	h := newTestHandler()

	first := executeWithTraceID(h, "").Header().Get(traceIDHeader)
	second := executeWithTraceID(h, "").Header().Get(traceIDHeader)

	assert.NotEqual(t, first, second)
}
