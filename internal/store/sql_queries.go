package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-resource-sync/models"
)

const (
	getSyncEntry = `SELECT sync_id, resource_name, server_item_id, last_action, last_modified, lock_key
    FROM sync_entries
    WHERE sync_id = $1;`

	getSyncEntryByItem = `SELECT sync_id, resource_name, server_item_id, last_action, last_modified, lock_key
    FROM sync_entries
    WHERE resource_name = $1 AND server_item_id = $2;`

	insertSyncEntry = `INSERT INTO sync_entries (sync_id, resource_name, server_item_id, last_action, last_modified)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING sync_id, resource_name, server_item_id, last_action, last_modified, lock_key;`

	// GREATEST keeps last_modified monotonic even if a lagging clock hands
	// us a request time older than the stored one.
	updateSyncEntry = `UPDATE sync_entries
    SET last_action = $2, last_modified = GREATEST(last_modified, $3)
    WHERE sync_id = $1
    RETURNING sync_id, resource_name, server_item_id, last_action, last_modified, lock_key;`

	getClientState = `SELECT client_id, last_upload_time, last_download_time, last_request_fingerprint, last_response_snapshot
    FROM client_sync_state
    WHERE client_id = $1;`

	insertClientState = `INSERT INTO client_sync_state (client_id)
    VALUES ($1)
    ON CONFLICT (client_id) DO NOTHING;`

	setClientLastDownloadTime = `UPDATE client_sync_state
    SET last_download_time = $2
    WHERE client_id = $1;`

	saveClientReplay = `UPDATE client_sync_state
    SET last_upload_time = $2, last_request_fingerprint = $3, last_response_snapshot = $4, replay_committed_at = $5
    WHERE client_id = $1;`

	clearClientReplay = `UPDATE client_sync_state
    SET last_request_fingerprint = '', last_response_snapshot = NULL, replay_committed_at = 0
    WHERE client_id = $1;`

	purgeClientReplays = `UPDATE client_sync_state
    SET last_request_fingerprint = '', last_response_snapshot = NULL, replay_committed_at = 0
    WHERE replay_committed_at > 0 AND replay_committed_at < $1;`

	getResourceItem = `SELECT payload
    FROM resource_items
    WHERE resource_name = $1 AND server_item_id = $2;`

	insertResourceItem = `INSERT INTO resource_items (resource_name, server_item_id, payload)
    VALUES ($1, $2, $3);`

	updateResourceItem = `UPDATE resource_items
    SET payload = $3
    WHERE resource_name = $1 AND server_item_id = $2;`

	deleteResourceItem = `DELETE FROM resource_items
    WHERE resource_name = $1 AND server_item_id = $2;`
)

// syncEntryColumns lists the ledger columns in scan order. Shared by the
// static queries above and the dynamic changed-since builder so the two can
// never drift apart.
var syncEntryColumns = []string{
	"sync_id",
	"resource_name",
	"server_item_id",
	"last_action",
	"last_modified",
	"lock_key",
}

// buildChangedSinceQuery constructs the parameterised SELECT used by
// [LedgerRepository.FindChangedSince].
//
// The boundary is inclusive (last_modified >= since): timestamps have
// millisecond resolution, so an entry written in the same millisecond as the
// client's previous sync time must still be visible on the next pull.
// Ordering is last_modified ASC with sync_id ASC as a deterministic
// tie-breaker.
func buildChangedSinceQuery(resourceName string, since int64, excludeTombstones bool) (string, []any, error) {
	builder := sq.Select(syncEntryColumns...).
		From("sync_entries").
		Where(sq.Eq{"resource_name": resourceName}).
		Where(sq.GtOrEq{"last_modified": since}).
		OrderBy("last_modified ASC", "sync_id ASC").
		PlaceholderFormat(sq.Dollar)

	if excludeTombstones {
		builder = builder.Where(sq.NotEq{"last_action": models.ActionDelete})
	}

	return builder.ToSql()
}
