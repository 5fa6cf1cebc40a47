package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-resource-sync/internal/batch"
	"github.com/MKhiriev/go-resource-sync/internal/config"
	"github.com/MKhiriev/go-resource-sync/internal/handler"
	"github.com/MKhiriev/go-resource-sync/internal/logger"
	"github.com/MKhiriev/go-resource-sync/internal/server"
	"github.com/MKhiriev/go-resource-sync/internal/service"
	"github.com/MKhiriev/go-resource-sync/internal/store"
	"github.com/MKhiriev/go-resource-sync/internal/utils"
	"github.com/MKhiriev/go-resource-sync/internal/workers"
	"github.com/MKhiriev/go-resource-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("sync-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if migrateErr := db.Migrate(); migrateErr != nil {
		log.Fatal().Err(migrateErr).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	documents := service.NewDocumentResource("documents", storages.ItemRepository, utils.NewUUIDGenerator())

	registry := service.NewRegistry()
	if registerErr := registry.Register(documents, service.NewClientDefers()); registerErr != nil {
		log.Fatal().Err(registerErr).Msg("error registering resources")
	}

	policy := batch.NewConfigurablePolicy(map[batch.ErrorKind]batch.ContinuationDecision{
		batch.KindConflict:     batch.Continue,
		batch.KindDuplicateKey: batch.Continue,
		batch.KindBadRequest:   batch.Continue,
		batch.KindNotFound:     batch.Continue,
	})

	services := service.NewServices(storages, registry, policy, *cfg, log)

	dispatcher := batch.NewDispatcher(policy, log)
	if registerErr := dispatcher.Register("documents", "get", documentGetHandler(documents)); registerErr != nil {
		log.Fatal().Err(registerErr).Msg("error registering batch handlers")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	handlers, err := handler.NewHandlers(services, dispatcher, buildInfo, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(storages, *cfg, log).Run()

	srv.RunServer()
}

// documentGetHandler exposes document reads through the physical batch
// endpoint. Params carry the server-assigned item id.
func documentGetHandler(documents *service.DocumentResource) batch.Handler {
	return func(ctx context.Context, params json.RawMessage) (json.RawMessage, error) {
		var query struct {
			ServerItemID string `json:"server_item_id"`
		}
		if err := json.Unmarshal(params, &query); err != nil {
			return nil, batch.WrapError(batch.KindBadRequest, err)
		}
		if query.ServerItemID == "" {
			return nil, batch.NewError(batch.KindBadRequest, "server_item_id is required")
		}

		payload, err := documents.LoadPayload(ctx, query.ServerItemID)
		if errors.Is(err, service.ErrPayloadNotFound) {
			return nil, batch.WrapError(batch.KindNotFound, err)
		}
		if err != nil {
			return nil, err
		}

		return payload, nil
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
