package store

import (
	"github.com/jackc/pgerrcode"
)

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassifier]. If err is nil or is not a
// PostgreSQL driver error, nil is returned.
func (c *PostgresErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	return ClassifyPgErrorCode(postgresError(err))
}

// ClassifyPgErrorCode maps a PostgreSQL error code to a sentinel error.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
//   - 23503 foreign_key_violation → [ErrReferencedRowMissing]
//   - 23505 unique_violation      → [ErrDuplicateKey]
//
// Any code not listed above yields nil.
func ClassifyPgErrorCode(code string) error {
	switch code {
	case pgerrcode.ForeignKeyViolation:
		return ErrReferencedRowMissing
	case pgerrcode.UniqueViolation:
		return ErrDuplicateKey
	}

	return nil
}
