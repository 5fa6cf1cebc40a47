package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-resource-sync/internal/app"
	"github.com/MKhiriev/go-resource-sync/internal/logger"
	"github.com/MKhiriev/go-resource-sync/internal/utils"
	"github.com/MKhiriev/go-resource-sync/models"
)

func (h *Handler) batch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var batchRequest models.BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&batchRequest); err != nil {
		log.Err(err).Str("func", "*Handler.batch").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if len(batchRequest.Requests) == 0 {
		log.Error().Str("func", "*Handler.batch").Msg("empty batch")
		http.Error(w, app.MsgEmptyBatch, http.StatusBadRequest)
		return
	}

	responses := h.dispatcher.Process(ctx, batchRequest.Requests)

	utils.WriteJSON(w, models.BatchResponse{Responses: responses}, http.StatusOK)
}
