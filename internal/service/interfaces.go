// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/storefront/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	// Authenticate checks the credentials and returns the matching user or
	// ErrAuthenticationFailed.
	Authenticate(ctx context.Context, email, password string) (models.User, error)

	// CurrentUser resolves the user id stored in the session. It reports
	// false when the id is zero or does not resolve.
	CurrentUser(ctx context.Context, sessionUserID int64) (models.User, bool)

	// RequireAuthenticated is CurrentUser that fails with
	// ErrPermissionDenied instead of reporting false.
	RequireAuthenticated(ctx context.Context, sessionUserID int64) (models.User, error)
}

type CatalogService interface {
	ListPage(ctx context.Context, page int) ([]models.CatalogProduct, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
}

type PurchaseService interface {
	Buy(ctx context.Context, productID, userID int64) error
	AlreadyBought(ctx context.Context, productID, sessionUserID int64) (bool, error)
	PurchaseHistory(ctx context.Context, userID int64) (models.PurchaseHistory, error)
}

type CommentService interface {
	AddComment(ctx context.Context, productID, userID int64, content string) error
}

type MaintenanceService interface {
	Initialize(ctx context.Context) error
}
