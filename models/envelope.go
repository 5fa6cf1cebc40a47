// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// ChangeEnvelope is the wire-level unit of synchronization in both
// directions. It is the serialized projection of one ledger entry plus the
// current domain payload of the item.
//
// On upload, LastModified carries the baseline the client last observed
// for the item; the server compares it against the ledger to detect
// conflicting concurrent edits. On download, LastModified is the server
// timestamp of the reported change.
type ChangeEnvelope struct {
	// SyncID identifies the item. Empty on upload of a newly created item;
	// the server assigns one and returns it in the per-item outcome.
	SyncID string `json:"sync_id,omitempty"`

	// ResourceName is the logical resource type of the item.
	ResourceName string `json:"resource_name"`

	// Action is the mutation being reported or requested.
	Action SyncAction `json:"action"`

	// LastModified is a server-assigned timestamp in milliseconds since
	// epoch. See the type comment for its per-direction meaning.
	LastModified int64 `json:"last_modified"`

	// Element is the domain payload. Absent for tombstones (Action is
	// ActionDelete).
	Element json.RawMessage `json:"element,omitempty"`
}
