// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service hosts the synchronization engine and its supporting
// capabilities: the per-resource registry, conflict resolution strategies,
// the idempotency cache, and advisory lock coordination.
//
// The engine is the only component that mutates the ledger; resources own
// their domain payloads and the store owns persistence.
package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-resource-sync/models"
)

// Resource is the capability interface a synchronized domain resource must
// implement. The engine never inspects payloads; it passes them through.
type Resource interface {
	// Name returns the logical resource type, unique within the registry.
	Name() string

	// ApplyCreate materializes a new domain object from the payload and
	// returns its server-local identifier.
	ApplyCreate(ctx context.Context, payload json.RawMessage) (string, error)

	// ApplyUpdate replaces the domain object's state with the payload.
	ApplyUpdate(ctx context.Context, serverItemID string, payload json.RawMessage) error

	// ApplyDelete removes (or soft-removes) the domain object. The ledger
	// tombstone is recorded by the engine, not the resource.
	ApplyDelete(ctx context.Context, serverItemID string) error

	// LoadPayload returns the current domain payload, or [ErrPayloadNotFound].
	LoadPayload(ctx context.Context, serverItemID string) (json.RawMessage, error)
}

// Filterer is an optional extension of [Resource]: when implemented, the
// engine applies the client-supplied download filter to live entries.
// Tombstones always flow regardless of the filter.
type Filterer interface {
	// MatchFilter reports whether a payload satisfies the opaque filter.
	MatchFilter(filter, payload json.RawMessage) (bool, error)
}

// UploadOutcome is the engine's answer to one upload call. Replayed
// outcomes must be returned to the client verbatim, byte for byte, which is
// why the snapshot is carried as raw JSON rather than a decoded response.
type UploadOutcome struct {
	// Replayed marks an idempotent retry answered from the cache.
	Replayed bool

	// Snapshot is the cached serialized response; set only when Replayed.
	Snapshot json.RawMessage

	// Response is the freshly computed result; set only when not Replayed.
	Response models.UploadResponse
}

// SyncService orchestrates the download and upload protocols.
type SyncService interface {
	// Download returns all changes the client has not yet observed, per
	// requested resource. Unknown clients get a freshly minted id carried
	// in the response (first contact).
	Download(ctx context.Context, request models.DownloadRequest) (models.DownloadResponse, error)

	// Upload applies the client's local changes. Identical retries are
	// replayed from the idempotency cache without touching the ledger.
	Upload(ctx context.Context, request models.UploadRequest) (*UploadOutcome, error)
}

// IdempotencyCache tracks, per client, the fingerprint of the last committed
// upload and a replayable copy of its response.
type IdempotencyCache interface {
	// IsDuplicate reports whether fingerprint matches the client's cached
	// one. Unknown clients are never duplicates.
	IsDuplicate(ctx context.Context, clientID, fingerprint string) (bool, error)

	// Replay returns the cached response snapshot, or [ErrNoCachedResult].
	// Callers must only replay after IsDuplicate returned true.
	Replay(ctx context.Context, clientID string) (json.RawMessage, error)

	// Commit atomically stores the fingerprint/snapshot pair. Called only
	// after the upload's effects are durably applied.
	Commit(ctx context.Context, clientID, fingerprint string, snapshot []byte, uploadTime int64) error

	// Evict clears the client's cache entry. Called when an upload is
	// rejected: a conflicting attempt carries no replay value.
	Evict(ctx context.Context, clientID string) error
}

// LockMode selects the sharing semantics of an advisory lock.
type LockMode int

const (
	// LockShared admits concurrent readers.
	LockShared LockMode = iota

	// LockExclusive admits a single writer.
	LockExclusive
)

// LockCoordinator is the capability surface for per-item advisory locking.
// It is admission control only: conflict detection stays correct without it.
// The default implementation grants every request.
type LockCoordinator interface {
	// Acquire takes the lock for token, or returns [ErrItemLocked].
	Acquire(ctx context.Context, syncID, token string, mode LockMode) error

	// Release gives the lock back. Releasing a lock the token does not
	// hold is a no-op.
	Release(ctx context.Context, syncID, token string) error

	// Holder reports the current exclusive holder, if any.
	Holder(ctx context.Context, syncID string) (string, bool)
}
