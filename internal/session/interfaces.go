// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"

	"github.com/MKhiriev/storefront/models"
)

// Store persists sessions by id.
//
// Save assigns an id and a creation time to sessions that have none. Get
// returns ErrSessionNotFound for unknown or expired ids. Implementations must
// be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, s *models.Session) error
	Delete(ctx context.Context, id string) error
}
