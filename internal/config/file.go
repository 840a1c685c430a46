package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// fileConfig is the on-disk layout of a JSON or YAML config file.
type fileConfig struct {
	App struct {
		Name     string `json:"name" yaml:"name"`
		LogLevel string `json:"log_level" yaml:"log_level"`
	} `json:"app" yaml:"app"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		PublicDir       string   `json:"public_dir" yaml:"public_dir"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" yaml:"server"`

	Storage struct {
		DB struct {
			Driver       string `json:"driver" yaml:"driver"`
			Socket       string `json:"socket" yaml:"socket"`
			User         string `json:"user" yaml:"user"`
			Password     string `json:"password" yaml:"password"`
			Name         string `json:"name" yaml:"name"`
			DSN          string `json:"dsn" yaml:"dsn"`
			Migrate      bool   `json:"migrate" yaml:"migrate"`
			MaxOpenConns int    `json:"max_open_conns" yaml:"max_open_conns"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Session struct {
		Secret     string   `json:"secret" yaml:"secret"`
		CookieName string   `json:"cookie_name" yaml:"cookie_name"`
		TTL        Duration `json:"ttl" yaml:"ttl"`
	} `json:"session" yaml:"session"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded as
// YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	cfg := &StructuredConfig{
		App: App{
			Name:     fc.App.Name,
			LogLevel: fc.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:     fc.Server.HTTPAddress,
			PublicDir:       fc.Server.PublicDir,
			ShutdownTimeout: time.Duration(fc.Server.ShutdownTimeout),
		},
		Storage: Storage{
			DB: DB{
				Driver:       fc.Storage.DB.Driver,
				Socket:       fc.Storage.DB.Socket,
				User:         fc.Storage.DB.User,
				Password:     fc.Storage.DB.Password,
				Name:         fc.Storage.DB.Name,
				DSN:          fc.Storage.DB.DSN,
				Migrate:      fc.Storage.DB.Migrate,
				MaxOpenConns: fc.Storage.DB.MaxOpenConns,
			},
		},
		Session: Session{
			Secret:     fc.Session.Secret,
			CookieName: fc.Session.CookieName,
			TTL:        time.Duration(fc.Session.TTL),
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// as well as from plain nanosecond numbers.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	return d.set(v)
}

// UnmarshalYAML implements the goccy/go-yaml BytesUnmarshaler interface.
func (d *Duration) UnmarshalYAML(b []byte) error {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return err
	}

	return d.set(v)
}

func (d *Duration) set(v any) error {
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case int:
		*d = Duration(time.Duration(value))
	case int64:
		*d = Duration(time.Duration(value))
	case uint64:
		*d = Duration(time.Duration(value))
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
	case nil:
		*d = 0
	default:
		return fmt.Errorf("invalid duration %v", v)
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
