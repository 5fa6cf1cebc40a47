package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-resource-sync/internal/logger"
)

func newTestClientStateRepo(t *testing.T) (*clientStateRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &clientStateRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func clientStateRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"client_id", "last_upload_time", "last_download_time", "last_request_fingerprint", "last_response_snapshot"})
}

func TestClientStateGet_Success(t *testing.T) {
	repo, mock, db := newTestClientStateRepo(t)
	defer db.Close()

	snapshot := []byte(`{"last_upload_time":1000,"items":[]}`)

	mock.ExpectQuery("SELECT client_id").
		WithArgs("client-1").
		WillReturnRows(clientStateRows().AddRow("client-1", int64(1000), int64(900), "abc123", snapshot))

	state, err := repo.Get(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.LastUploadTime != 1000 {
		t.Errorf("expected last upload time 1000, got %d", state.LastUploadTime)
	}
	if state.LastRequestFingerprint != "abc123" {
		t.Errorf("expected fingerprint abc123, got %s", state.LastRequestFingerprint)
	}
	if string(state.LastResponseSnapshot) != string(snapshot) {
		t.Errorf("unexpected snapshot: %s", state.LastResponseSnapshot)
	}
}

func TestClientStateGet_NullSnapshot(t *testing.T) {
	repo, mock, db := newTestClientStateRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT client_id").
		WithArgs("client-1").
		WillReturnRows(clientStateRows().AddRow("client-1", int64(0), int64(0), "", nil))

	state, err := repo.Get(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.LastResponseSnapshot != nil {
		t.Errorf("expected nil snapshot, got %s", state.LastResponseSnapshot)
	}
}

func TestClientStateGet_NotFound(t *testing.T) {
	repo, mock, db := newTestClientStateRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT client_id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, ErrClientStateNotFound) {
		t.Fatalf("expected ErrClientStateNotFound, got %v", err)
	}
}

func TestClientStateCreate_Success(t *testing.T) {
	repo, mock, db := newTestClientStateRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO client_sync_state").
		WithArgs("client-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), "client-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientStateCreate_AlreadyRegistered(t *testing.T) {
	repo, mock, db := newTestClientStateRepo(t)
	defer db.Close()

	// ON CONFLICT DO NOTHING → zero rows affected, still no error
	mock.ExpectExec("INSERT INTO client_sync_state").
		WithArgs("client-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Create(context.Background(), "client-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientStateSetLastDownloadTime_Success(t *testing.T) {
	repo, mock, db := newTestClientStateRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE client_sync_state").
		WithArgs("client-1", int64(5000)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetLastDownloadTime(context.Background(), "client-1", 5000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientStateSetLastDownloadTime_NotFound(t *testing.T) {
	repo, mock, db := newTestClientStateRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE client_sync_state").
		WithArgs("missing", int64(5000)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetLastDownloadTime(context.Background(), "missing", 5000)
	if !errors.Is(err, ErrClientStateNotFound) {
		t.Fatalf("expected ErrClientStateNotFound, got %v", err)
	}
}

func TestClientStateSaveReplay_Success(t *testing.T) {
	repo, mock, db := newTestClientStateRepo(t)
	defer db.Close()

	snapshot := []byte(`{"last_upload_time":7000,"items":[]}`)

	mock.ExpectExec("UPDATE client_sync_state").
		WithArgs("client-1", int64(7000), "fp-1", snapshot, int64(7000)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SaveReplay(context.Background(), "client-1", "fp-1", snapshot, 7000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientStateSaveReplay_NotFound(t *testing.T) {
	repo, mock, db := newTestClientStateRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE client_sync_state").
		WithArgs("missing", int64(7000), "fp-1", []byte(`{}`), int64(7000)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveReplay(context.Background(), "missing", "fp-1", []byte(`{}`), 7000)
	if !errors.Is(err, ErrClientStateNotFound) {
		t.Fatalf("expected ErrClientStateNotFound, got %v", err)
	}
}

func TestClientStateReplayRoundTrip_PreservesSnapshotBytes(t *testing.T) {
	repo, mock, db := newTestClientStateRepo(t)
	defer db.Close()

	// key order and spacing the client hashed over; the bytea column must
	// hand them back untouched so retries replay the exact original bytes
	snapshot := []byte(`{"last_upload_time":7000,"items":[{"sync_id":"a","status":"ok"}]}`)

	mock.ExpectExec("UPDATE client_sync_state").
		WithArgs("client-1", int64(7000), "fp-1", snapshot, int64(7000)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT client_id").
		WithArgs("client-1").
		WillReturnRows(clientStateRows().AddRow("client-1", int64(7000), int64(0), "fp-1", snapshot))

	if err := repo.SaveReplay(context.Background(), "client-1", "fp-1", snapshot, 7000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state, err := repo.Get(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(state.LastResponseSnapshot, snapshot) {
		t.Errorf("snapshot bytes changed across round trip: %s", state.LastResponseSnapshot)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestClientStateClearReplay_Success(t *testing.T) {
	repo, mock, db := newTestClientStateRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE client_sync_state").
		WithArgs("client-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ClearReplay(context.Background(), "client-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientStatePurgeReplaysBefore_Success(t *testing.T) {
	repo, mock, db := newTestClientStateRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE client_sync_state").
		WithArgs(int64(1000)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	purged, err := repo.PurgeReplaysBefore(context.Background(), 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if purged != 3 {
		t.Errorf("expected 3 purged clients, got %d", purged)
	}
}

func TestClientStatePurgeReplaysBefore_DBError(t *testing.T) {
	repo, mock, db := newTestClientStateRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE client_sync_state").
		WithArgs(int64(1000)).
		WillReturnError(errors.New("db failure"))

	_, err := repo.PurgeReplaysBefore(context.Background(), 1000)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
