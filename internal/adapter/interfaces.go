// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the synchronization protocol.
//
// The primary abstraction is [SyncClient], which decouples client
// applications from the underlying transport. The package ships an HTTP/REST
// implementation ([NewHTTPSyncClient]) and a SQLite-backed [LocalState] that
// persists the client id and per-resource download baselines between runs.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrLocked] for 423).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-resource-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_client_mock.go -package=mock

// SyncClient defines transport-agnostic communication with the
// synchronization server. Implementations are responsible for serialisation,
// fingerprint management, and mapping transport-level errors to the sentinel
// values defined in this package.
type SyncClient interface {
	// Download asks the server for all changes the client has not yet
	// observed. On first contact (empty client id in the request) the
	// response carries a freshly minted client id that the caller must
	// persist.
	Download(ctx context.Context, req models.DownloadRequest) (models.DownloadResponse, error)

	// Upload pushes local changes to the server. When req.Fingerprint is
	// empty it is computed from req.Items before sending, so a retried call
	// with the same items resends the identical fingerprint and is replayed
	// by the server instead of reprocessed.
	//
	// A response is returned even on [ErrConflict]: its per-item outcomes
	// tell the caller which changes were rejected.
	Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error)

	// Batch submits a physical batch of independent sub-requests and
	// returns one outcome per sub-request, in submission order.
	Batch(ctx context.Context, req models.BatchRequest) (models.BatchResponse, error)
}
