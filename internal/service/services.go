package service

import (
	"github.com/MKhiriev/go-resource-sync/internal/batch"
	"github.com/MKhiriev/go-resource-sync/internal/config"
	"github.com/MKhiriev/go-resource-sync/internal/logger"
	"github.com/MKhiriev/go-resource-sync/internal/store"
	"github.com/MKhiriev/go-resource-sync/internal/utils"
	"github.com/MKhiriev/go-resource-sync/internal/validators"
)

// Services bundles the engine and its capabilities behind one constructor.
type Services struct {
	SyncService      SyncService
	IdempotencyCache IdempotencyCache
}

// NewServices wires the service layer: the idempotency cache over the client
// state repository and the synchronization engine over everything else.
// The registry must be fully populated before requests are served.
func NewServices(storages *store.Storages, registry *Registry, policy batch.ContinuationPolicy, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	cache := NewIdempotencyCache(storages.ClientStateRepository, logger)

	return &Services{
		IdempotencyCache: cache,
		SyncService: NewSyncService(
			storages.LedgerRepository,
			storages.ClientStateRepository,
			cache,
			registry,
			NewGrantAllLockCoordinator(),
			validators.NewSyncValidator(),
			policy,
			utils.NewUUIDGenerator(),
			cfg.Sync,
			logger,
		),
	}
}
