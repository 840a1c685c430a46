// Package service holds the storefront's use cases: authentication, the
// catalog, purchases, comments and the benchmark reset. Services depend on
// the store interfaces only and never see HTTP.
package service

import (
	"github.com/MKhiriev/storefront/internal/logger"
	"github.com/MKhiriev/storefront/internal/store"
)

type Services struct {
	AuthService        AuthService
	CatalogService     CatalogService
	PurchaseService    PurchaseService
	CommentService     CommentService
	MaintenanceService MaintenanceService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	authService := NewAuthService(storages.UserRepository, logger)

	return &Services{
		AuthService:        authService,
		CatalogService:     NewCatalogService(storages.ProductRepository, storages.CommentRepository, logger),
		PurchaseService:    NewPurchaseService(storages.HistoryRepository, storages.UserRepository, authService, logger),
		CommentService:     NewCommentService(storages.CommentRepository, logger),
		MaintenanceService: NewMaintenanceService(storages.MaintenanceRepository, logger),
	}
}
