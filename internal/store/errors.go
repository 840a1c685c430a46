package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when a lookup by email or id matches no
	// row in the users table.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoProductWasFound is returned when a lookup by id matches no row in
	// the products table.
	ErrNoProductWasFound = errors.New("no product was found")

	// ErrReferencedRowMissing is returned when an INSERT violates a foreign
	// key, i.e. the referenced product or user does not exist.
	ErrReferencedRowMissing = errors.New("referenced row does not exist")

	// ErrDuplicateKey is returned when an INSERT violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrUnknownTable is returned by MaintenanceRepository when asked to
	// prune a table it does not manage.
	ErrUnknownTable = errors.New("unknown table")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails
	// mid-result-set.
	ErrScanningRows = errors.New("failed to iterate rows")

	// ErrUnsupportedDriver is returned by NewConnect for drivers other than
	// pgx and sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
