// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] can be used to
// start the server.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres:
		if cfg.Storage.DB.DSN == "" && (cfg.Storage.DB.Socket == "" || cfg.Storage.DB.Name == "") {
			return fmt.Errorf("%w: postgres needs a DSN or a socket and a database name", ErrInvalidStorageConfigs)
		}
	case DriverSQLite:
		if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.Name == "" {
			return fmt.Errorf("%w: sqlite needs a database file", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Session.Secret == "" || cfg.Session.CookieName == "" {
		return fmt.Errorf("%w: session secret and cookie name are required", ErrInvalidSessionConfigs)
	}

	return nil
}

// DataSourceName returns the connection string handed to sql.Open.
//
// An explicit DSN always wins. Otherwise, for PostgreSQL a keyword/value
// string pointing at the unix socket directory is built and, for SQLite, the
// database name is used as the file path.
func (db DB) DataSourceName() string {
	if db.DSN != "" {
		return db.DSN
	}

	if db.Driver == DriverSQLite {
		return db.Name
	}

	parts := []string{
		"host=" + quoteDSNValue(db.Socket),
		"user=" + quoteDSNValue(db.User),
		"dbname=" + quoteDSNValue(db.Name),
		"sslmode=disable",
	}
	if db.Password != "" {
		parts = append(parts, "password="+quoteDSNValue(db.Password))
	}

	return strings.Join(parts, " ")
}

// quoteDSNValue quotes a libpq keyword/value so that spaces, quotes and
// backslashes survive parsing.
func quoteDSNValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
