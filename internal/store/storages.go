package store

import "github.com/MKhiriev/go-resource-sync/internal/logger"

// Storages bundles every repository behind a single constructor so callers
// wire the persistence layer in one step.
type Storages struct {
	LedgerRepository      LedgerRepository
	ItemRepository        ItemRepository
	ClientStateRepository ClientStateRepository
}

// NewStorages builds all repositories on top of the shared database
// connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		LedgerRepository:      NewLedgerRepository(db, log),
		ItemRepository:        NewItemRepository(db, log),
		ClientStateRepository: NewClientStateRepository(db, log),
	}
}
