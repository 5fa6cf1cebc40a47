package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]string{"status": "ok"}, http.StatusCreated)
	require.NoError(t, err)
	assert.Positive(t, n)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rec := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(rec, make(chan int), http.StatusOK)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWriteRawJSON_ByteForByte(t *testing.T) {
	rec := httptest.NewRecorder()
	snapshot := []byte(`{"items":[{"sync_id":"s1","status":"ok"}]}`)

	n, err := WriteRawJSON(rec, snapshot, http.StatusOK)
	require.NoError(t, err)
	assert.Equal(t, len(snapshot), n)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(snapshot), rec.Body.String(), "snapshot must be replayed verbatim")
}
