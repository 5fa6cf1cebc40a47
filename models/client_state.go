// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// ClientSyncState is the per-client synchronization bookkeeping record,
// keyed by the client id minted on first contact.
//
// LastRequestFingerprint and LastResponseSnapshot together form the
// idempotency cache: the fingerprint identifies the most recently
// committed upload body, and the snapshot is the exact response that was
// returned for it. The fingerprint is only written after the upload's
// domain effects and ledger updates have been durably applied, so a
// client may resend an identical request any number of times before that
// point without double effect.
type ClientSyncState struct {
	// ClientID is the stable identifier assigned to the client on first
	// contact.
	ClientID string `json:"client_id"`

	// LastUploadTime is the server timestamp of the client's last
	// committed upload. Informational only — idempotent replay is decided
	// solely by the fingerprint.
	LastUploadTime int64 `json:"last_upload_time"`

	// LastDownloadTime is the sync time acknowledged to the client by the
	// most recent download response.
	LastDownloadTime int64 `json:"last_download_time"`

	// LastRequestFingerprint is the fingerprint of the most recently
	// committed upload body. Empty when no upload has committed or the
	// cache was evicted after a conflicting attempt.
	LastRequestFingerprint string `json:"last_request_fingerprint,omitempty"`

	// LastResponseSnapshot is the serialized response returned for the
	// fingerprinted upload, replayed verbatim on retry.
	LastResponseSnapshot json.RawMessage `json:"last_response_snapshot,omitempty"`
}
