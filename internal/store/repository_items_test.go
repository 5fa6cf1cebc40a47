package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-resource-sync/internal/logger"
)

func newTestItemRepo(t *testing.T) (*itemRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &itemRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestItemGet_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	payload := []byte(`{"name":"x"}`)

	mock.ExpectQuery("SELECT payload").
		WithArgs("notes", "item-1").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(payload))

	got, err := repo.Get(context.Background(), "notes", "item-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("unexpected payload: %s", got)
	}
}

func TestItemGet_NotFound(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT payload").
		WithArgs("notes", "ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "notes", "ghost")
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestItemInsert_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO resource_items").
		WithArgs("notes", "item-1", []byte(`{"name":"x"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Insert(context.Background(), "notes", "item-1", []byte(`{"name":"x"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestItemInsert_Duplicate(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO resource_items").
		WithArgs("notes", "item-1", []byte(`{}`)).
		WillReturnError(pgError("23505"))

	err := repo.Insert(context.Background(), "notes", "item-1", []byte(`{}`))
	if !errors.Is(err, ErrDuplicateItem) {
		t.Errorf("expected ErrDuplicateItem, got %v", err)
	}
}

func TestItemUpdate_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE resource_items").
		WithArgs("notes", "item-1", []byte(`{"name":"y"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), "notes", "item-1", []byte(`{"name":"y"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestItemUpdate_NotFound(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE resource_items").
		WithArgs("notes", "ghost", []byte(`{}`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), "notes", "ghost", []byte(`{}`))
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestItemDelete_AbsentIsNoOp(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM resource_items").
		WithArgs("notes", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "notes", "ghost"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
