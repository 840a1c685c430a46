// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/storefront/internal/logger"

// Storages groups every repository sharing one database handle.
type Storages struct {
	UserRepository        UserRepository
	ProductRepository     ProductRepository
	CommentRepository     CommentRepository
	HistoryRepository     HistoryRepository
	MaintenanceRepository MaintenanceRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, logger),
		ProductRepository:     NewProductRepository(db, logger),
		CommentRepository:     NewCommentRepository(db, logger),
		HistoryRepository:     NewHistoryRepository(db, logger),
		MaintenanceRepository: NewMaintenanceRepository(db, logger),
	}
}
