// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncAction identifies the most recent mutation recorded for a
// synchronized resource item.
type SyncAction string

const (
	// ActionCreate marks the first appearance of an item on the server.
	ActionCreate SyncAction = "CREATE"

	// ActionUpdate marks an in-place modification of an existing item.
	ActionUpdate SyncAction = "UPDATE"

	// ActionDelete marks a soft deletion. The ledger entry is kept as a
	// tombstone so that clients which have not yet downloaded the change
	// can still observe it.
	ActionDelete SyncAction = "DELETE"
)

// Valid reports whether a is one of the three known sync actions.
func (a SyncAction) Valid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete:
		return true
	}
	return false
}

// LedgerEntry is the server-held synchronization record for one resource
// item. It is the source of truth for ordering and conflict metadata;
// the domain payload itself lives with the owning resource implementation.
//
// For a given SyncID the LastModified timestamp only ever increases.
// Entries are never physically removed by the normal sync flow — a DELETE
// turns the entry into a tombstone (LastAction = ActionDelete).
type LedgerEntry struct {
	// SyncID is the globally unique key of the item. For items created by
	// a client it is derived from the owning client; otherwise it is
	// assigned by the server.
	SyncID string `json:"sync_id"`

	// ResourceName is the logical resource type the item belongs to.
	ResourceName string `json:"resource_name"`

	// ServerItemID is the identifier used to fetch and mutate the
	// underlying domain object.
	ServerItemID string `json:"server_item_id"`

	// LastAction is the most recent mutation recorded for the item.
	LastAction SyncAction `json:"last_action"`

	// LastModified is the server clock (milliseconds since epoch) at the
	// moment the mutation was accepted. Monotonically non-decreasing.
	LastModified int64 `json:"last_modified"`

	// LockKey optionally names the holder of an advisory exclusive lock
	// on the item. Nil when the item is unlocked.
	LockKey *string `json:"lock_key,omitempty"`
}

// Tombstone reports whether the entry records a deletion.
func (e LedgerEntry) Tombstone() bool {
	return e.LastAction == ActionDelete
}
