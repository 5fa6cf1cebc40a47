// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// ResourceQuery narrows a download to the changes of one resource type.
type ResourceQuery struct {
	// LastDownloadTime is the sync time the client acknowledged from its
	// previous download. Changes recorded at or after this timestamp are
	// returned; zero requests the full change history.
	LastDownloadTime int64 `json:"last_download_time"`

	// Filter is an optional resource-specific filter applied to live
	// entries. Its shape is owned by the resource implementation.
	// Tombstones are always reported regardless of the filter.
	Filter json.RawMessage `json:"filter,omitempty"`
}

// DownloadRequest asks the server for all changes a client has not yet
// observed, per resource type.
type DownloadRequest struct {
	// ClientID is the identifier assigned to the client on first contact.
	// Empty on the very first download; the server mints a new id and
	// returns it in the response.
	ClientID string `json:"client_id,omitempty"`

	// Queries maps resource names to per-resource download criteria.
	Queries map[string]ResourceQuery `json:"queries"`
}

// DownloadResponse carries the change sets for every requested resource.
type DownloadResponse struct {
	// ClientID is present only in the first-contact response, carrying the
	// freshly minted client id.
	ClientID string `json:"client_id,omitempty"`

	// SyncTime is the timestamp the client must use as LastDownloadTime on
	// its next download. It is deliberately a few seconds behind the
	// server clock so that items mutated concurrently with this download
	// are not missed; the client may see some changes twice instead.
	SyncTime int64 `json:"sync_time"`

	// Items maps resource names to the changes recorded since the
	// requested time, ordered by LastModified ascending.
	Items map[string][]ChangeEnvelope `json:"items"`
}
