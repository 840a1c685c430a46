// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Supported values of [DB.Driver]. They are the database/sql driver names
// registered by the store package.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// StructuredConfig is the top-level configuration container for the
// storefront server. It is populated by merging defaults, an optional .env
// file, environment variables, command-line flags and an optional JSON or
// YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings such as the logger role and level.
	App App `envPrefix:"APP_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Session holds the session cookie and session store settings.
	Session Session `envPrefix:"SESSION_"`

	// ConfigFilePath is the optional path to a JSON (.json) or YAML
	// (.yaml, .yml) configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Name is used as the logger "role" field.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// PublicDir is the directory static assets (/css, /images) are served
	// from. A missing directory disables static serving.
	// Env: SERVER_PUBLIC_DIR
	PublicDir string `env:"PUBLIC_DIR"`

	// ShutdownTimeout bounds the graceful shutdown on SIGTERM/SIGINT.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Storage groups the configuration of the persistence backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database.
type DB struct {
	// Driver is the database/sql driver: [DriverPostgres] or [DriverSQLite].
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// Socket is the directory of the PostgreSQL unix socket.
	// Env: STORAGE_DB_SOCKET
	Socket string `env:"SOCKET"`

	// User is the database role.
	// Env: STORAGE_DB_USER
	User string `env:"USER"`

	// Password is the password of User.
	// Env: STORAGE_DB_PASSWORD
	Password string `env:"PASSWORD"`

	// Name is the database name. For SQLite it is the database file path.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME"`

	// DSN overrides the connection string built from the fields above.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Migrate applies the embedded schema migrations at startup.
	// Env: STORAGE_DB_MIGRATE
	Migrate bool `env:"MIGRATE"`

	// MaxOpenConns caps the connection pool. Zero keeps the default.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Session holds the session cookie and store settings.
type Session struct {
	// Secret signs the session cookie. Must be kept confidential.
	// Env: SESSION_SECRET
	Secret string `env:"SECRET"`

	// CookieName is the name of the session cookie.
	// Env: SESSION_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`

	// TTL is how long an idle session is kept in the store.
	// Env: SESSION_TTL
	TTL time.Duration `env:"TTL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// sources. For every field the first source providing a non-zero value wins:
//  1. Environment variables (including those loaded from a .env file)
//  2. Command-line flags
//  3. Config file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(defaultDotEnvFile).
		withEnv().
		withFlags(os.Args[1:]).
		withFile().
		withDefaults().
		build()
}
