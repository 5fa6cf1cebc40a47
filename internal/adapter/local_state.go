// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const clientIDKey = "client_id"

const localStateSchema = `
CREATE TABLE IF NOT EXISTS sync_state (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS download_baselines (
    resource_name      TEXT PRIMARY KEY,
    last_download_time INTEGER NOT NULL DEFAULT 0
);`

// LocalState is the client's durable synchronization state, backed by a
// SQLite database file. It survives restarts so the client keeps its
// identity and its per-resource download baselines between runs.
type LocalState struct {
	db *sql.DB
}

// OpenLocalState opens (creating if necessary) the local state database at
// path and ensures its schema exists.
func OpenLocalState(path string) (*LocalState, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open local state: %w", err)
	}

	if _, err = db.Exec(localStateSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init local state schema: %w", err)
	}

	return &LocalState{db: db}, nil
}

// Close releases the underlying database handle.
func (s *LocalState) Close() error {
	return s.db.Close()
}

// ClientID returns the persisted client id, or an empty string if the
// client has never completed a first-contact download.
func (s *LocalState) ClientID(ctx context.Context) (string, error) {
	var clientID string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM sync_state WHERE key = ?`, clientIDKey).Scan(&clientID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read client id: %w", err)
	}
	return clientID, nil
}

// SetClientID persists the id minted by the server on first contact.
func (s *LocalState) SetClientID(ctx context.Context, clientID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sync_state (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		clientIDKey, clientID)
	if err != nil {
		return fmt.Errorf("save client id: %w", err)
	}
	return nil
}

// LastDownloadTime returns the download baseline for one resource, or zero
// if the resource has never been downloaded.
func (s *LocalState) LastDownloadTime(ctx context.Context, resourceName string) (int64, error) {
	var baseline int64
	err := s.db.QueryRowContext(ctx,
		`SELECT last_download_time FROM download_baselines WHERE resource_name = ?`,
		resourceName).Scan(&baseline)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read download baseline: %w", err)
	}
	return baseline, nil
}

// SetLastDownloadTime records the sync time acknowledged from a completed
// download as the resource's next baseline.
func (s *LocalState) SetLastDownloadTime(ctx context.Context, resourceName string, syncTime int64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO download_baselines (resource_name, last_download_time) VALUES (?, ?)
		 ON CONFLICT (resource_name) DO UPDATE SET last_download_time = excluded.last_download_time`,
		resourceName, syncTime)
	if err != nil {
		return fmt.Errorf("save download baseline: %w", err)
	}
	return nil
}
