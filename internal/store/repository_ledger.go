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

// ledgerRepository is the PostgreSQL-backed implementation of
// [LedgerRepository]. All entries live in the "sync_entries" table, accessed
// through the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (sync_id, resource_name, request time, etc.).
type ledgerRepository struct {
	*DB
	logger *logger.Logger
}

// NewLedgerRepository constructs a [LedgerRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewLedgerRepository(db *DB, logger *logger.Logger) LedgerRepository {
	return &ledgerRepository{
		DB:     db,
		logger: logger,
	}
}

// Get returns the ledger entry identified by syncID.
//
// Returns [ErrSyncEntryNotFound] when no entry exists for the given id.
func (l *ledgerRepository) Get(ctx context.Context, syncID string) (models.LedgerEntry, error) {
	log := logger.FromContext(ctx)

	var entry models.LedgerEntry

	scanErr := l.DB.QueryRowContext(ctx, getSyncEntry, syncID).Scan(
		&entry.SyncID,
		&entry.ResourceName,
		&entry.ServerItemID,
		&entry.LastAction,
		&entry.LastModified,
		&entry.LockKey,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Debug().
				Str("func", "ledgerRepository.Get").
				Str("sync_id", syncID).
				Msg("sync entry not found")
			return models.LedgerEntry{}, ErrSyncEntryNotFound
		}

		log.Err(scanErr).
			Str("func", "ledgerRepository.Get").
			Str("sync_id", syncID).
			Msg("failed to execute query for getting sync entry")
		return models.LedgerEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return entry, nil
}

// GetByItem returns the ledger entry mapped to the given
// (resourceName, serverItemID) pair, or [ErrSyncEntryNotFound].
func (l *ledgerRepository) GetByItem(ctx context.Context, resourceName, serverItemID string) (models.LedgerEntry, error) {
	log := logger.FromContext(ctx)

	var entry models.LedgerEntry

	scanErr := l.DB.QueryRowContext(ctx, getSyncEntryByItem, resourceName, serverItemID).Scan(
		&entry.SyncID,
		&entry.ResourceName,
		&entry.ServerItemID,
		&entry.LastAction,
		&entry.LastModified,
		&entry.LockKey,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Debug().
				Str("func", "ledgerRepository.GetByItem").
				Str("resource_name", resourceName).
				Str("server_item_id", serverItemID).
				Msg("sync entry not found")
			return models.LedgerEntry{}, ErrSyncEntryNotFound
		}

		log.Err(scanErr).
			Str("func", "ledgerRepository.GetByItem").
			Str("resource_name", resourceName).
			Str("server_item_id", serverItemID).
			Msg("failed to execute query for getting sync entry by item")
		return models.LedgerEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return entry, nil
}

// FindChangedSince returns every entry of the given resource whose
// LastModified is at or after since, ordered by (LastModified, SyncID)
// ascending. Tombstoned entries are excluded only when excludeTombstones
// is set — deletions must normally reach clients like any other change.
//
// Returns an empty slice when no entries match.
func (l *ledgerRepository) FindChangedSince(ctx context.Context, resourceName string, since int64, excludeTombstones bool) ([]models.LedgerEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildChangedSinceQuery(resourceName, since, excludeTombstones)
	if err != nil {
		log.Err(err).
			Str("func", "ledgerRepository.FindChangedSince").
			Str("resource_name", resourceName).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := l.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "ledgerRepository.FindChangedSince").
			Str("resource_name", resourceName).
			Int64("since", since).
			Msg("failed to execute query for getting changed sync entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	results := make([]models.LedgerEntry, 0, 50)

	for rows.Next() {
		var entry models.LedgerEntry

		scanErr := rows.Scan(
			&entry.SyncID,
			&entry.ResourceName,
			&entry.ServerItemID,
			&entry.LastAction,
			&entry.LastModified,
			&entry.LockKey,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "ledgerRepository.FindChangedSince").
				Str("resource_name", resourceName).
				Msg("failed to scan sync entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "ledgerRepository.FindChangedSince").
			Str("resource_name", resourceName).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// RecordCreate inserts a fresh ledger entry for a newly created item with
// LastAction = CREATE and LastModified = requestTime.
//
// A unique constraint violation — on the sync id itself or on the
// (resource_name, server_item_id) pair — is translated into
// [ErrDuplicateSyncEntry] so that callers can treat the collision as a
// domain outcome rather than a database failure.
func (l *ledgerRepository) RecordCreate(ctx context.Context, syncID, resourceName, serverItemID string, requestTime int64) (models.LedgerEntry, error) {
	log := logger.FromContext(ctx)

	log.Debug().
		Str("func", "ledgerRepository.RecordCreate").
		Str("sync_id", syncID).
		Str("resource_name", resourceName).
		Str("server_item_id", serverItemID).
		Msg("recording sync entry for created item")

	var entry models.LedgerEntry

	scanErr := l.DB.QueryRowContext(ctx, insertSyncEntry, syncID, resourceName, serverItemID, models.ActionCreate, requestTime).Scan(
		&entry.SyncID,
		&entry.ResourceName,
		&entry.ServerItemID,
		&entry.LastAction,
		&entry.LastModified,
		&entry.LockKey,
	)
	if scanErr != nil {
		if isUniqueViolation(scanErr) {
			log.Warn().
				Str("func", "ledgerRepository.RecordCreate").
				Str("sync_id", syncID).
				Str("resource_name", resourceName).
				Msg("sync entry already exists")
			return models.LedgerEntry{}, fmt.Errorf("%w: %w", ErrDuplicateSyncEntry, scanErr)
		}

		log.Err(scanErr).
			Str("func", "ledgerRepository.RecordCreate").
			Str("sync_id", syncID).
			Str("resource_name", resourceName).
			Msg("failed to insert sync entry")
		return models.LedgerEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
	}

	log.Info().
		Str("func", "ledgerRepository.RecordCreate").
		Str("sync_id", syncID).
		Str("resource_name", resourceName).
		Int64("last_modified", entry.LastModified).
		Msg("successfully recorded sync entry")

	return entry, nil
}

// RecordMutation marks the entry as updated or deleted and bumps its
// LastModified to requestTime. The UPDATE uses GREATEST so the timestamp
// never moves backwards.
//
// Returns [ErrSyncEntryNotFound] when syncID has no entry.
func (l *ledgerRepository) RecordMutation(ctx context.Context, syncID string, action models.SyncAction, requestTime int64) (models.LedgerEntry, error) {
	log := logger.FromContext(ctx)

	log.Debug().
		Str("func", "ledgerRepository.RecordMutation").
		Str("sync_id", syncID).
		Str("action", string(action)).
		Int64("request_time", requestTime).
		Msg("recording sync entry mutation")

	var entry models.LedgerEntry

	scanErr := l.DB.QueryRowContext(ctx, updateSyncEntry, syncID, action, requestTime).Scan(
		&entry.SyncID,
		&entry.ResourceName,
		&entry.ServerItemID,
		&entry.LastAction,
		&entry.LastModified,
		&entry.LockKey,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "ledgerRepository.RecordMutation").
				Str("sync_id", syncID).
				Msg("sync entry not found")
			return models.LedgerEntry{}, ErrSyncEntryNotFound
		}

		log.Err(scanErr).
			Str("func", "ledgerRepository.RecordMutation").
			Str("sync_id", syncID).
			Str("action", string(action)).
			Msg("failed to execute sync entry update")
		return models.LedgerEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
	}

	return entry, nil
}
