package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-resource-sync/internal/batch"
	"github.com/MKhiriev/go-resource-sync/internal/service"
	"github.com/MKhiriev/go-resource-sync/internal/store"
	"github.com/MKhiriev/go-resource-sync/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrUnknownResource: http.StatusNotFound,
	service.ErrUnknownClient:   http.StatusBadRequest,
	service.ErrItemLocked:      http.StatusLocked,
	service.ErrPayloadNotFound: http.StatusNotFound,

	validators.ErrInvalidClientID:    http.StatusBadRequest,
	validators.ErrInvalidFingerprint: http.StatusBadRequest,
	validators.ErrEmptyItems:         http.StatusBadRequest,
	validators.ErrNoQueries:          http.StatusBadRequest,
	validators.ErrInvalidAction:      http.StatusBadRequest,
	validators.ErrNegativeTimestamp:  http.StatusBadRequest,

	store.ErrSyncEntryNotFound:   http.StatusNotFound,
	store.ErrClientStateNotFound: http.StatusNotFound,
	store.ErrDuplicateSyncEntry:  http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	// kind-tagged errors carry their own HTTP mapping
	var tagged *batch.Error
	if errors.As(err, &tagged) {
		return batch.StatusOf(tagged.Kind)
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
