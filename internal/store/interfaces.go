package store

import (
	"context"

	"github.com/MKhiriev/storefront/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository reads the externally seeded users table.
type UserRepository interface {
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// ProductRepository reads the products table.
type ProductRepository interface {
	// MaxID returns the highest product id, or 0 for an empty table.
	MaxID(ctx context.Context) (int64, error)
	// ListInWindow returns products with ids inside w, id descending, at
	// most models.PageSize rows.
	ListInWindow(ctx context.Context, w models.PageWindow) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (models.Product, error)
}

// CommentRepository reads and appends product comments.
type CommentRepository interface {
	// ListInWindow returns every comment whose product id lies inside w,
	// joined with the commenter's name, ordered by product id descending and
	// then newest first.
	ListInWindow(ctx context.Context, w models.PageWindow) ([]models.ProductComment, error)
	Create(ctx context.Context, comment models.Comment) error
}

// HistoryRepository records and reads purchases.
type HistoryRepository interface {
	Create(ctx context.Context, history models.History) error
	CountByProductAndUser(ctx context.Context, productID, userID int64) (int64, error)
	// ListByUser returns one item per history row of the user, newest
	// purchase first. Rows whose product is gone carry zero product fields.
	ListByUser(ctx context.Context, userID int64) ([]models.PurchasedProduct, error)
}

// MaintenanceRepository prunes rows added on top of the seed data.
type MaintenanceRepository interface {
	// DeleteAbove removes every row of table with an id greater than id and
	// reports how many were deleted.
	DeleteAbove(ctx context.Context, table string, id int64) (int64, error)
}

// ErrorClassifier maps driver specific errors to the sentinel errors of this
// package. It returns nil when err has no domain meaning.
type ErrorClassifier interface {
	Classify(err error) error
}
