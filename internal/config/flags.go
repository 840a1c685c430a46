package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line arguments (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-public static assets directory
//	-shutdown-timeout graceful shutdown timeout (e.g. "10s")
//	-driver database driver (pgx or sqlite3)
//	-socket database unix socket directory
//	-db-user database user
//	-db-password database password
//	-db-name database name (file path for sqlite3)
//	-d database DSN, overrides the settings above
//	-migrate apply schema migrations at startup
//	-session-secret session cookie signing secret
//	-session-cookie session cookie name
//	-session-ttl session lifetime (e.g. "24h")
//	-log-level log level
//	-c/-config config file path (.json, .yaml, .yml)
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Server.PublicDir, "public", "", "Static assets directory")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&cfg.Storage.DB.Socket, "socket", "", "Database unix socket directory")
	fs.StringVar(&cfg.Storage.DB.User, "db-user", "", "Database user")
	fs.StringVar(&cfg.Storage.DB.Password, "db-password", "", "Database password")
	fs.StringVar(&cfg.Storage.DB.Name, "db-name", "", "Database name")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.BoolVar(&cfg.Storage.DB.Migrate, "migrate", false, "Apply schema migrations at startup")
	fs.StringVar(&cfg.Session.Secret, "session-secret", "", "Session cookie signing secret")
	fs.StringVar(&cfg.Session.CookieName, "session-cookie", "", "Session cookie name")
	fs.DurationVar(&cfg.Session.TTL, "session-ttl", 0, "Session lifetime (e.g., 24h)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.ConfigFilePath, "c", "", "Config file path")
	fs.StringVar(&cfg.ConfigFilePath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces. Any other host must be
// "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
