// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-resource-sync/internal/logger"
)

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository]
// over the "resource_items" table.
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

// Get returns the stored payload of one item.
//
// Returns [ErrItemNotFound] when no document exists for the pair.
func (i *itemRepository) Get(ctx context.Context, resourceName, serverItemID string) ([]byte, error) {
	log := logger.FromContext(ctx)

	var payload []byte

	scanErr := i.DB.QueryRowContext(ctx, getResourceItem, resourceName, serverItemID).Scan(&payload)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Debug().
				Str("func", "itemRepository.Get").
				Str("resource_name", resourceName).
				Str("server_item_id", serverItemID).
				Msg("resource item not found")
			return nil, ErrItemNotFound
		}

		log.Err(scanErr).
			Str("func", "itemRepository.Get").
			Str("resource_name", resourceName).
			Str("server_item_id", serverItemID).
			Msg("failed to execute query for getting resource item")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return payload, nil
}

// Insert stores a new document.
//
// Returns [ErrDuplicateItem] when the server item id is already taken.
func (i *itemRepository) Insert(ctx context.Context, resourceName, serverItemID string, payload []byte) error {
	log := logger.FromContext(ctx)

	_, execErr := i.DB.ExecContext(ctx, insertResourceItem, resourceName, serverItemID, payload)
	if execErr != nil {
		if isUniqueViolation(execErr) {
			log.Warn().
				Str("func", "itemRepository.Insert").
				Str("resource_name", resourceName).
				Str("server_item_id", serverItemID).
				Msg("resource item already exists")
			return fmt.Errorf("%w: %w", ErrDuplicateItem, execErr)
		}

		log.Err(execErr).
			Str("func", "itemRepository.Insert").
			Str("resource_name", resourceName).
			Str("server_item_id", serverItemID).
			Msg("failed to insert resource item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	return nil
}

// Update replaces the payload of an existing document.
//
// Returns [ErrItemNotFound] when no document exists for the pair.
func (i *itemRepository) Update(ctx context.Context, resourceName, serverItemID string, payload []byte) error {
	log := logger.FromContext(ctx)

	result, execErr := i.DB.ExecContext(ctx, updateResourceItem, resourceName, serverItemID, payload)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "itemRepository.Update").
			Str("resource_name", resourceName).
			Str("server_item_id", serverItemID).
			Msg("failed to update resource item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, affectedErr := result.RowsAffected()
	if affectedErr != nil {
		log.Err(affectedErr).
			Str("func", "itemRepository.Update").
			Str("resource_name", resourceName).
			Str("server_item_id", serverItemID).
			Msg("failed to read affected rows count")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, affectedErr)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "itemRepository.Update").
			Str("resource_name", resourceName).
			Str("server_item_id", serverItemID).
			Msg("resource item not found")
		return ErrItemNotFound
	}

	return nil
}

// Delete removes a document. Deleting an absent item is a no-op.
func (i *itemRepository) Delete(ctx context.Context, resourceName, serverItemID string) error {
	log := logger.FromContext(ctx)

	_, execErr := i.DB.ExecContext(ctx, deleteResourceItem, resourceName, serverItemID)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "itemRepository.Delete").
			Str("resource_name", resourceName).
			Str("server_item_id", serverItemID).
			Msg("failed to delete resource item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	return nil
}
