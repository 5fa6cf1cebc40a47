package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSyncEntryNotFound is returned when a ledger operation targets a
	// sync id that has no entry in the database.
	ErrSyncEntryNotFound = errors.New("sync entry was not found")

	// ErrDuplicateSyncEntry is returned when recording a CREATE collides
	// with an existing entry — either the sync id itself or the
	// (resource name, server item id) pair is already mapped.
	ErrDuplicateSyncEntry = errors.New("sync entry already exists")

	// ErrClientStateNotFound is returned when a query targets a client id
	// that has never been registered.
	ErrClientStateNotFound = errors.New("client sync state was not found")

	// ErrNoReplaySnapshot is returned when a replay is requested for a
	// client that has no committed response snapshot cached.
	ErrNoReplaySnapshot = errors.New("no cached response snapshot")

	// ErrItemNotFound is returned when a payload operation targets a server
	// item id with no stored document.
	ErrItemNotFound = errors.New("resource item was not found")

	// ErrDuplicateItem is returned when inserting a document collides with
	// an existing server item id.
	ErrDuplicateItem = errors.New("resource item already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrBeginningTransaction is returned when opening a database
	// transaction fails.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a database
	// transaction fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
