package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-resource-sync/internal/logger"
	"github.com/MKhiriev/go-resource-sync/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestLedgerRepo(t *testing.T) (*ledgerRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &ledgerRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func ledgerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"sync_id", "resource_name", "server_item_id", "last_action", "last_modified", "lock_key"})
}

func TestLedgerGet_Success(t *testing.T) {
	repo, mock, db := newTestLedgerRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT sync_id").
		WithArgs("sync-1").
		WillReturnRows(ledgerRows().AddRow("sync-1", "notes", "item-1", "UPDATE", int64(1000), nil))

	entry, err := repo.Get(context.Background(), "sync-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.SyncID != "sync-1" {
		t.Errorf("expected sync-1, got %s", entry.SyncID)
	}
	if entry.LastAction != models.ActionUpdate {
		t.Errorf("expected UPDATE, got %s", entry.LastAction)
	}
	if entry.LockKey != nil {
		t.Errorf("expected nil lock key, got %v", *entry.LockKey)
	}
}

func TestLedgerGet_NotFound(t *testing.T) {
	repo, mock, db := newTestLedgerRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT sync_id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, ErrSyncEntryNotFound) {
		t.Fatalf("expected ErrSyncEntryNotFound, got %v", err)
	}
}

func TestLedgerGet_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestLedgerRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT sync_id").
		WithArgs("sync-1").
		WillReturnError(errors.New("db network error"))

	_, err := repo.Get(context.Background(), "sync-1")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestLedgerGetByItem_Success(t *testing.T) {
	repo, mock, db := newTestLedgerRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT sync_id").
		WithArgs("notes", "item-1").
		WillReturnRows(ledgerRows().AddRow("sync-1", "notes", "item-1", "CREATE", int64(1000), nil))

	entry, err := repo.GetByItem(context.Background(), "notes", "item-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.SyncID != "sync-1" {
		t.Errorf("expected sync-1, got %s", entry.SyncID)
	}
}

func TestLedgerGetByItem_NotFound(t *testing.T) {
	repo, mock, db := newTestLedgerRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT sync_id").
		WithArgs("notes", "missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByItem(context.Background(), "notes", "missing")
	if !errors.Is(err, ErrSyncEntryNotFound) {
		t.Fatalf("expected ErrSyncEntryNotFound, got %v", err)
	}
}

func TestLedgerFindChangedSince_Success(t *testing.T) {
	repo, mock, db := newTestLedgerRepo(t)
	defer db.Close()

	rows := ledgerRows().
		AddRow("sync-1", "notes", "item-1", "CREATE", int64(1000), nil).
		AddRow("sync-2", "notes", "item-2", "DELETE", int64(2000), nil)

	mock.ExpectQuery("SELECT sync_id").
		WithArgs("notes", int64(500)).
		WillReturnRows(rows)

	entries, err := repo.FindChangedSince(context.Background(), "notes", 500, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if !entries[1].Tombstone() {
		t.Errorf("expected second entry to be a tombstone")
	}
}

func TestLedgerFindChangedSince_Empty(t *testing.T) {
	repo, mock, db := newTestLedgerRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT sync_id").
		WithArgs("notes", int64(500)).
		WillReturnRows(ledgerRows())

	entries, err := repo.FindChangedSince(context.Background(), "notes", 500, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(entries))
	}
}

func TestLedgerFindChangedSince_ScanError(t *testing.T) {
	repo, mock, db := newTestLedgerRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"sync_id"}). // intentionally wrong shape → scan error
							AddRow("sync-1")

	mock.ExpectQuery("SELECT sync_id").
		WillReturnRows(rows)

	_, err := repo.FindChangedSince(context.Background(), "notes", 500, false)
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestLedgerRecordCreate_Success(t *testing.T) {
	repo, mock, db := newTestLedgerRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO sync_entries").
		WithArgs("sync-1", "notes", "item-1", models.ActionCreate, int64(1000)).
		WillReturnRows(ledgerRows().AddRow("sync-1", "notes", "item-1", "CREATE", int64(1000), nil))

	entry, err := repo.RecordCreate(context.Background(), "sync-1", "notes", "item-1", 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.LastAction != models.ActionCreate {
		t.Errorf("expected CREATE, got %s", entry.LastAction)
	}
	if entry.LastModified != 1000 {
		t.Errorf("expected last_modified=1000, got %d", entry.LastModified)
	}
}

func TestLedgerRecordCreate_Duplicate(t *testing.T) {
	repo, mock, db := newTestLedgerRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO sync_entries").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.RecordCreate(context.Background(), "sync-1", "notes", "item-1", 1000)
	if !errors.Is(err, ErrDuplicateSyncEntry) {
		t.Fatalf("expected ErrDuplicateSyncEntry, got %v", err)
	}
}

func TestLedgerRecordCreate_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestLedgerRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO sync_entries").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db failure"))

	_, err := repo.RecordCreate(context.Background(), "sync-1", "notes", "item-1", 1000)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestLedgerRecordMutation_Success(t *testing.T) {
	repo, mock, db := newTestLedgerRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE sync_entries").
		WithArgs("sync-1", models.ActionDelete, int64(2000)).
		WillReturnRows(ledgerRows().AddRow("sync-1", "notes", "item-1", "DELETE", int64(2000), nil))

	entry, err := repo.RecordMutation(context.Background(), "sync-1", models.ActionDelete, 2000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !entry.Tombstone() {
		t.Errorf("expected tombstoned entry, got action %s", entry.LastAction)
	}
}

func TestLedgerRecordMutation_NotFound(t *testing.T) {
	repo, mock, db := newTestLedgerRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE sync_entries").
		WithArgs("missing", models.ActionUpdate, int64(2000)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.RecordMutation(context.Background(), "missing", models.ActionUpdate, 2000)
	if !errors.Is(err, ErrSyncEntryNotFound) {
		t.Fatalf("expected ErrSyncEntryNotFound, got %v", err)
	}
}

func TestLedgerRecordMutation_KeepsMonotonicTimestamp(t *testing.T) {
	repo, mock, db := newTestLedgerRepo(t)
	defer db.Close()

	// stale request time: GREATEST in the query keeps the stored value
	mock.ExpectQuery("UPDATE sync_entries").
		WithArgs("sync-1", models.ActionUpdate, int64(500)).
		WillReturnRows(ledgerRows().AddRow("sync-1", "notes", "item-1", "UPDATE", int64(1000), nil))

	entry, err := repo.RecordMutation(context.Background(), "sync-1", models.ActionUpdate, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.LastModified != 1000 {
		t.Errorf("expected timestamp to stay at 1000, got %d", entry.LastModified)
	}
}
