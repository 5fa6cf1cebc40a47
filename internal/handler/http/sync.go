package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-resource-sync/internal/app"
	"github.com/MKhiriev/go-resource-sync/internal/logger"
	"github.com/MKhiriev/go-resource-sync/internal/utils"
	"github.com/MKhiriev/go-resource-sync/models"
)

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var downloadRequest models.DownloadRequest
	if err := json.NewDecoder(r.Body).Decode(&downloadRequest); err != nil {
		log.Err(err).Str("func", "*Handler.download").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	response, err := h.services.SyncService.Download(ctx, downloadRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.download").Msg("error assembling download")
		http.Error(w, app.MsgDownloadFailed, statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var uploadRequest models.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&uploadRequest); err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// the fingerprint covers the items being uploaded: a declared value is
	// verified, an omitted one is computed server-side
	computed, err := utils.FingerprintValue(uploadRequest.Items)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("failed to fingerprint request items")
		http.Error(w, app.MsgFingerprintFailed, http.StatusBadRequest)
		return
	}
	if uploadRequest.Fingerprint == "" {
		uploadRequest.Fingerprint = computed
	} else if uploadRequest.Fingerprint != computed {
		log.Error().Str("func", "*Handler.upload").
			Str("fingerprint from request", uploadRequest.Fingerprint).
			Str("computed fingerprint", computed).
			Msg("fingerprints are not equal")
		http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
		return
	}

	outcome, err := h.services.SyncService.Upload(ctx, uploadRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("error processing upload")
		http.Error(w, app.MsgUploadFailed, statusFromError(err))
		return
	}

	// retried requests replay the cached response byte-for-byte
	if outcome.Replayed {
		utils.WriteRawJSON(w, outcome.Snapshot, http.StatusOK)
		return
	}

	status := http.StatusOK
	if !outcome.Response.Clean() {
		status = http.StatusConflict
	}

	utils.WriteJSON(w, outcome.Response, status)
}
