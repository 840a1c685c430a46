package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/storefront/internal/logger"
	"github.com/MKhiriev/storefront/models"
)

type historyRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Msg("creating history repository")
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

// Create records one purchase. Repeated purchases of the same product are
// separate rows.
func (r *historyRepository) Create(ctx context.Context, history models.History) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateHistoryQuery(r.db.builder(), history)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.Create").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*historyRepository.Create").
			Int64("product_id", history.ProductID).
			Int64("user_id", history.UserID).
			Msg("failed to insert history")
		return r.db.classify(err, ErrExecutingStatement)
	}

	return nil
}

func (r *historyRepository) CountByProductAndUser(ctx context.Context, productID, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountHistoryQuery(r.db.builder(), productID, userID)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.CountByProductAndUser").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "*historyRepository.CountByProductAndUser").
			Int64("product_id", productID).
			Int64("user_id", userID).
			Msg("failed to count histories")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// ListByUser returns the purchase history of userID, newest first. Products
// are left-joined, so a history row pointing at a deleted product yields a
// zero product with the purchase time still set.
func (r *historyRepository) ListByUser(ctx context.Context, userID int64) ([]models.PurchasedProduct, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListHistoryByUserQuery(r.db.builder(), userID)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.ListByUser").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*historyRepository.ListByUser").
			Int64("user_id", userID).
			Msg("failed to execute query for purchase history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	purchases := make([]models.PurchasedProduct, 0, 30)
	for rows.Next() {
		var (
			id          sql.NullInt64
			name        sql.NullString
			description sql.NullString
			imagePath   sql.NullString
			price       sql.NullInt64
			createdAt   time.Time
		)
		if err = rows.Scan(&id, &name, &description, &imagePath, &price, &createdAt); err != nil {
			log.Err(err).Str("func", "*historyRepository.ListByUser").Msg("failed to scan history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		purchases = append(purchases, models.PurchasedProduct{
			Product: models.Product{
				ID:          id.Int64,
				Name:        name.String,
				ImagePath:   imagePath.String,
				Price:       price.Int64,
				Description: description.String,
			},
			PurchasedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*historyRepository.ListByUser").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return purchases, nil
}
