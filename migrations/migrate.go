// Package migrations embeds the storefront schema and applies it with goose.
// Each supported database/sql driver has its own directory of migrations.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var errNilDB = errors.New("db is nil")

// dialects maps a database/sql driver name to the goose dialect and the
// migrations directory used for it.
var dialects = map[string]struct {
	goose goose.Dialect
	dir   string
}{
	"pgx":      {goose: goose.DialectPostgres, dir: "postgres"},
	"postgres": {goose: goose.DialectPostgres, dir: "postgres"},
	"sqlite3":  {goose: goose.DialectSQLite3, dir: "sqlite"},
}

// Migrate applies every pending migration for driver to db.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	dialect, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(dialect.goose)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, dialect.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
