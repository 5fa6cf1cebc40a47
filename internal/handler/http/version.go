package http

import (
	"net/http"

	"github.com/MKhiriev/go-resource-sync/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	response := struct {
		BuildVersion string `json:"build_version"`
		BuildDate    string `json:"build_date"`
		BuildCommit  string `json:"build_commit"`
	}{
		BuildVersion: h.buildInfo.BuildVersion(),
		BuildDate:    h.buildInfo.BuildDate(),
		BuildCommit:  h.buildInfo.BuildCommit(),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
