package http

import (
	"github.com/MKhiriev/go-resource-sync/internal/batch"
	"github.com/MKhiriev/go-resource-sync/internal/logger"
	"github.com/MKhiriev/go-resource-sync/internal/service"
	"github.com/MKhiriev/go-resource-sync/models"
)

type Handler struct {
	services   *service.Services
	dispatcher *batch.Dispatcher
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(services *service.Services, dispatcher *batch.Dispatcher, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		dispatcher: dispatcher,
		buildInfo:  buildInfo,
		logger:     logger,
	}
}
