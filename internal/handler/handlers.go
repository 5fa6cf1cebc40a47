package handler

import (
	"github.com/MKhiriev/go-resource-sync/internal/batch"
	"github.com/MKhiriev/go-resource-sync/internal/config"
	"github.com/MKhiriev/go-resource-sync/internal/handler/http"
	"github.com/MKhiriev/go-resource-sync/internal/logger"
	"github.com/MKhiriev/go-resource-sync/internal/service"
	"github.com/MKhiriev/go-resource-sync/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, dispatcher *batch.Dispatcher, buildInfo models.AppBuildInfo, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, dispatcher, buildInfo, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
