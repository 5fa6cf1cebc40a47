// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Per-item outcome statuses reported in an UploadResponse.
const (
	// UploadStatusOK — the item committed cleanly, or the server kept its
	// own state by strategy decision (a no-op success).
	UploadStatusOK = "ok"

	// UploadStatusConflict — the item's baseline was stale and the
	// conflict strategy did not resolve the collision.
	UploadStatusConflict = "conflict"

	// UploadStatusDuplicated — a CREATE collided with an existing mapping
	// for the same item.
	UploadStatusDuplicated = "duplicated"

	// UploadStatusFailed — the item failed for a non-conflict reason
	// (malformed envelope, unknown item, lock denial).
	UploadStatusFailed = "failed"

	// UploadStatusNotProcessed — processing stopped before this item was
	// attempted.
	UploadStatusNotProcessed = "not_processed"
)

// UploadRequest pushes a client's local changes to the server.
type UploadRequest struct {
	// ClientID identifies the uploading client.
	ClientID string `json:"client_id"`

	// Fingerprint is the stable hash of the canonicalized request body,
	// used to detect and safely replay retried requests.
	Fingerprint string `json:"fingerprint"`

	// Items are the changes to apply, in the client's intended order.
	Items []ChangeEnvelope `json:"items"`
}

// UploadItemResult is the outcome of one uploaded change.
type UploadItemResult struct {
	// SyncID identifies the item the outcome refers to. For a committed
	// CREATE it carries the server-assigned id.
	SyncID string `json:"sync_id"`

	// Status is one of the UploadStatus constants.
	Status string `json:"status"`

	// ServerItemID is set for committed items.
	ServerItemID string `json:"server_item_id,omitempty"`

	// ServerEntry is the server's current ledger entry, returned on
	// conflict and duplication so the client can reconcile.
	ServerEntry *LedgerEntry `json:"server_entry,omitempty"`

	// ServerPayload is the server's current domain payload accompanying
	// ServerEntry, or the retained payload of a no-op success.
	ServerPayload json.RawMessage `json:"server_payload,omitempty"`

	// ErrorDetail describes the failure for UploadStatusFailed items.
	ErrorDetail string `json:"error_detail,omitempty"`
}

// UploadResponse enumerates one outcome per submitted item, in submission
// order. The upload as a whole succeeded only if every item has
// UploadStatusOK.
type UploadResponse struct {
	// LastUploadTime is the server timestamp assigned to this upload.
	// Zero when the upload did not commit cleanly.
	LastUploadTime int64 `json:"last_upload_time,omitempty"`

	// Items holds one outcome per submitted envelope.
	Items []UploadItemResult `json:"items"`
}

// Clean reports whether every item committed cleanly.
func (r UploadResponse) Clean() bool {
	for _, item := range r.Items {
		if item.Status != UploadStatusOK {
			return false
		}
	}
	return true
}
