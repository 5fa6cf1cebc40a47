// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-resource-sync/internal/logger"
	"github.com/MKhiriev/go-resource-sync/internal/store"
)

// idempotencyCache implements [IdempotencyCache] on top of the client state
// repository. Fingerprint comparison happens here; persistence stays with
// the store.
//
// A hash collision is treated as a duplicate. Clients resend byte-identical
// bodies on true retry, so a matching fingerprint from the same client is a
// retry by construction.
type idempotencyCache struct {
	clientStates store.ClientStateRepository

	logger *logger.Logger
}

// NewIdempotencyCache constructs an [IdempotencyCache] over the given
// repository.
func NewIdempotencyCache(clientStates store.ClientStateRepository, logger *logger.Logger) IdempotencyCache {
	return &idempotencyCache{
		clientStates: clientStates,
		logger:       logger,
	}
}

// IsDuplicate reports whether the client's cached fingerprint equals the
// given one. A client without state, or with an empty cached fingerprint,
// is never a duplicate.
func (c *idempotencyCache) IsDuplicate(ctx context.Context, clientID, fingerprint string) (bool, error) {
	log := logger.FromContext(ctx)

	state, err := c.clientStates.Get(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrClientStateNotFound) {
			return false, nil
		}
		log.Err(err).
			Str("func", "idempotencyCache.IsDuplicate").
			Str("client_id", clientID).
			Msg("failed to load client sync state")
		return false, err
	}

	if state.LastRequestFingerprint == "" {
		return false, nil
	}

	return state.LastRequestFingerprint == fingerprint, nil
}

// Replay returns the last committed response snapshot verbatim.
func (c *idempotencyCache) Replay(ctx context.Context, clientID string) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	state, err := c.clientStates.Get(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrClientStateNotFound) {
			return nil, fmt.Errorf("%w: client %s", ErrNoCachedResult, clientID)
		}
		log.Err(err).
			Str("func", "idempotencyCache.Replay").
			Str("client_id", clientID).
			Msg("failed to load client sync state")
		return nil, err
	}

	if len(state.LastResponseSnapshot) == 0 {
		return nil, fmt.Errorf("%w: client %s", ErrNoCachedResult, clientID)
	}

	log.Info().
		Str("func", "idempotencyCache.Replay").
		Str("client_id", clientID).
		Int("snapshot_size", len(state.LastResponseSnapshot)).
		Msg("replaying cached upload response")

	return state.LastResponseSnapshot, nil
}

// Commit stores the fingerprint/snapshot pair after a clean upload.
func (c *idempotencyCache) Commit(ctx context.Context, clientID, fingerprint string, snapshot []byte, uploadTime int64) error {
	return c.clientStates.SaveReplay(ctx, clientID, fingerprint, snapshot, uploadTime)
}

// Evict clears the client's cache entry after a rejected upload.
func (c *idempotencyCache) Evict(ctx context.Context, clientID string) error {
	return c.clientStates.ClearReplay(ctx, clientID)
}
