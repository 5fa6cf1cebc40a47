package store

import (
	"context"

	"github.com/MKhiriev/go-resource-sync/models"
)

// LedgerRepository persists per-item synchronization metadata. It is the
// source of truth for ordering and conflict detection; it never touches
// domain data.
type LedgerRepository interface {
	// Get returns the ledger entry for syncID, or [ErrSyncEntryNotFound].
	Get(ctx context.Context, syncID string) (models.LedgerEntry, error)

	// GetByItem returns the entry mapped to (resourceName, serverItemID),
	// or [ErrSyncEntryNotFound].
	GetByItem(ctx context.Context, resourceName, serverItemID string) (models.LedgerEntry, error)

	// FindChangedSince returns every entry of the given resource whose
	// LastModified is at or after since, ordered by LastModified ascending
	// and tie-broken by SyncID for determinism. Tombstones are included
	// unless excludeTombstones is set.
	FindChangedSince(ctx context.Context, resourceName string, since int64, excludeTombstones bool) ([]models.LedgerEntry, error)

	// RecordCreate inserts a fresh entry for a newly created item.
	// Returns [ErrDuplicateSyncEntry] if the sync id or the
	// (resource name, server item id) pair is already mapped.
	RecordCreate(ctx context.Context, syncID, resourceName, serverItemID string, requestTime int64) (models.LedgerEntry, error)

	// RecordMutation updates the entry's last action and bumps its
	// LastModified to requestTime (never backwards). Returns
	// [ErrSyncEntryNotFound] if syncID is unknown.
	RecordMutation(ctx context.Context, syncID string, action models.SyncAction, requestTime int64) (models.LedgerEntry, error)
}

// ItemRepository persists the domain payloads of synchronized items as raw
// JSON documents, keyed by (resource name, server item id). The ledger owns
// ordering metadata; this repository owns only the bytes.
type ItemRepository interface {
	// Get returns the stored payload, or [ErrItemNotFound].
	Get(ctx context.Context, resourceName, serverItemID string) ([]byte, error)

	// Insert stores a new document. Returns [ErrDuplicateItem] if the
	// server item id is already taken within the resource.
	Insert(ctx context.Context, resourceName, serverItemID string, payload []byte) error

	// Update replaces an existing document, or returns [ErrItemNotFound].
	Update(ctx context.Context, resourceName, serverItemID string, payload []byte) error

	// Delete removes a document. Deleting an absent item is a no-op; the
	// ledger tombstone is the durable record of the deletion.
	Delete(ctx context.Context, resourceName, serverItemID string) error
}

// ClientStateRepository persists per-client synchronization bookkeeping,
// including the idempotency cache fields.
type ClientStateRepository interface {
	// Get returns the state record for clientID, or [ErrClientStateNotFound].
	Get(ctx context.Context, clientID string) (models.ClientSyncState, error)

	// Create registers a new client id. Creating an already-registered id
	// is a no-op.
	Create(ctx context.Context, clientID string) error

	// SetLastDownloadTime records the sync time acknowledged to the client.
	SetLastDownloadTime(ctx context.Context, clientID string, syncTime int64) error

	// SaveReplay atomically stores the fingerprint/snapshot pair of a
	// committed upload together with its upload time. Must only be called
	// after the upload's domain effects and ledger updates are durable.
	SaveReplay(ctx context.Context, clientID, fingerprint string, snapshot []byte, uploadTime int64) error

	// ClearReplay evicts the client's cached fingerprint and snapshot.
	ClearReplay(ctx context.Context, clientID string) error

	// PurgeReplaysBefore evicts every replay snapshot committed before
	// cutoff, returning the number of affected clients.
	PurgeReplaysBefore(ctx context.Context, cutoff int64) (int64, error)
}
