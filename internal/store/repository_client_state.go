// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-resource-sync/internal/logger"
	"github.com/MKhiriev/go-resource-sync/models"
)

// clientStateRepository is the PostgreSQL-backed implementation of
// [ClientStateRepository] over the "client_sync_state" table.
//
// The replay_committed_at column is internal bookkeeping for the janitor
// worker and is deliberately not exposed on [models.ClientSyncState].
type clientStateRepository struct {
	*DB
	logger *logger.Logger
}

// NewClientStateRepository constructs a [ClientStateRepository] backed by
// the provided database connection and logger.
func NewClientStateRepository(db *DB, logger *logger.Logger) ClientStateRepository {
	return &clientStateRepository{
		DB:     db,
		logger: logger,
	}
}

// Get returns the synchronization state record for clientID.
//
// Returns [ErrClientStateNotFound] when the client has never been registered.
func (c *clientStateRepository) Get(ctx context.Context, clientID string) (models.ClientSyncState, error) {
	log := logger.FromContext(ctx)

	var state models.ClientSyncState

	scanErr := c.DB.QueryRowContext(ctx, getClientState, clientID).Scan(
		&state.ClientID,
		&state.LastUploadTime,
		&state.LastDownloadTime,
		&state.LastRequestFingerprint,
		&state.LastResponseSnapshot,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Debug().
				Str("func", "clientStateRepository.Get").
				Str("client_id", clientID).
				Msg("client sync state not found")
			return models.ClientSyncState{}, ErrClientStateNotFound
		}

		log.Err(scanErr).
			Str("func", "clientStateRepository.Get").
			Str("client_id", clientID).
			Msg("failed to execute query for getting client sync state")
		return models.ClientSyncState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return state, nil
}

// Create registers clientID with zeroed synchronization times. Registering
// an already-known client is a no-op (ON CONFLICT DO NOTHING).
func (c *clientStateRepository) Create(ctx context.Context, clientID string) error {
	log := logger.FromContext(ctx)

	_, execErr := c.DB.ExecContext(ctx, insertClientState, clientID)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "clientStateRepository.Create").
			Str("client_id", clientID).
			Msg("failed to register client sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	log.Debug().
		Str("func", "clientStateRepository.Create").
		Str("client_id", clientID).
		Msg("client sync state registered")

	return nil
}

// SetLastDownloadTime records the sync time acknowledged to the client at
// the end of a download cycle.
//
// Returns [ErrClientStateNotFound] if the client is not registered.
func (c *clientStateRepository) SetLastDownloadTime(ctx context.Context, clientID string, syncTime int64) error {
	log := logger.FromContext(ctx)

	result, execErr := c.DB.ExecContext(ctx, setClientLastDownloadTime, clientID, syncTime)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "clientStateRepository.SetLastDownloadTime").
			Str("client_id", clientID).
			Int64("sync_time", syncTime).
			Msg("failed to update last download time")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, affectedErr := result.RowsAffected()
	if affectedErr != nil {
		log.Err(affectedErr).
			Str("func", "clientStateRepository.SetLastDownloadTime").
			Str("client_id", clientID).
			Msg("failed to read affected rows count")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, affectedErr)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "clientStateRepository.SetLastDownloadTime").
			Str("client_id", clientID).
			Msg("client sync state not found")
		return ErrClientStateNotFound
	}

	return nil
}

// SaveReplay stores the fingerprint and serialized response of a committed
// upload, together with its upload time and a commit timestamp used by the
// replay janitor for retention purging.
//
// Returns [ErrClientStateNotFound] if the client is not registered.
func (c *clientStateRepository) SaveReplay(ctx context.Context, clientID, fingerprint string, snapshot []byte, uploadTime int64) error {
	log := logger.FromContext(ctx)

	result, execErr := c.DB.ExecContext(ctx, saveClientReplay, clientID, uploadTime, fingerprint, snapshot, uploadTime)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "clientStateRepository.SaveReplay").
			Str("client_id", clientID).
			Str("fingerprint", fingerprint).
			Msg("failed to save replay snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, affectedErr := result.RowsAffected()
	if affectedErr != nil {
		log.Err(affectedErr).
			Str("func", "clientStateRepository.SaveReplay").
			Str("client_id", clientID).
			Msg("failed to read affected rows count")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, affectedErr)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "clientStateRepository.SaveReplay").
			Str("client_id", clientID).
			Msg("client sync state not found")
		return ErrClientStateNotFound
	}

	log.Info().
		Str("func", "clientStateRepository.SaveReplay").
		Str("client_id", clientID).
		Str("fingerprint", fingerprint).
		Int("snapshot_size", len(snapshot)).
		Msg("replay snapshot saved")

	return nil
}

// ClearReplay evicts the client's cached fingerprint and response snapshot.
// Clearing an absent client is a no-op.
func (c *clientStateRepository) ClearReplay(ctx context.Context, clientID string) error {
	log := logger.FromContext(ctx)

	_, execErr := c.DB.ExecContext(ctx, clearClientReplay, clientID)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "clientStateRepository.ClearReplay").
			Str("client_id", clientID).
			Msg("failed to clear replay snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	return nil
}

// PurgeReplaysBefore evicts every replay snapshot committed before cutoff
// and returns the number of affected clients. Called periodically by the
// replay janitor worker.
func (c *clientStateRepository) PurgeReplaysBefore(ctx context.Context, cutoff int64) (int64, error) {
	log := logger.FromContext(ctx)

	result, execErr := c.DB.ExecContext(ctx, purgeClientReplays, cutoff)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "clientStateRepository.PurgeReplaysBefore").
			Int64("cutoff", cutoff).
			Msg("failed to purge replay snapshots")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, affectedErr := result.RowsAffected()
	if affectedErr != nil {
		log.Err(affectedErr).
			Str("func", "clientStateRepository.PurgeReplaysBefore").
			Int64("cutoff", cutoff).
			Msg("failed to read affected rows count")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, affectedErr)
	}

	log.Info().
		Str("func", "clientStateRepository.PurgeReplaysBefore").
		Int64("cutoff", cutoff).
		Int64("purged", affected).
		Msg("purged expired replay snapshots")

	return affected, nil
}
