// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// ishoconEnv holds the variable names used by existing ISHOCON1
// provisioning scripts.
type ishoconEnv struct {
	DBUser        string `env:"ISHOCON1_DB_USER"`
	DBPassword    string `env:"ISHOCON1_DB_PASSWORD"`
	DBName        string `env:"ISHOCON1_DB_NAME"`
	SessionSecret string `env:"ISHOCON1_SESSION_SECRET"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Fields are mapped via the `env` and `envPrefix` tags of
// [StructuredConfig] and its nested types; unset variables leave the field at
// its zero value so that later sources can fill it.
//
// The ISHOCON1_* variables fill only the fields their STORAGE_* and SESSION_*
// counterparts left empty.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	ishocon, err := env.ParseAs[ishoconEnv]()
	if err != nil {
		return fmt.Errorf("error getting ISHOCON1 env configs: %w", err)
	}

	fallback := StructuredConfig{
		Storage: Storage{DB: DB{
			User:     ishocon.DBUser,
			Password: ishocon.DBPassword,
			Name:     ishocon.DBName,
		}},
		Session: Session{Secret: ishocon.SessionSecret},
	}
	if err = mergo.Merge(cfg, fallback); err != nil {
		return fmt.Errorf("error merging ISHOCON1 env configs: %w", err)
	}

	return nil
}
