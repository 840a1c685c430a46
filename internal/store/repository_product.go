// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/storefront/internal/logger"
	"github.com/MKhiriev/storefront/models"
)

type productRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// MaxID returns the highest product id. An empty table yields 0.
func (r *productRepository) MaxID(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMaxProductIDQuery(r.db.builder())
	if err != nil {
		log.Err(err).Str("func", "*productRepository.MaxID").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var maxID sql.NullInt64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&maxID); err != nil {
		log.Err(err).Str("func", "*productRepository.MaxID").Msg("failed to query max product id")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return maxID.Int64, nil
}

// ListInWindow returns the products of one catalog page, id descending.
// An empty window returns an empty slice.
func (r *productRepository) ListInWindow(ctx context.Context, w models.PageWindow) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	if w.IsEmpty() {
		return []models.Product{}, nil
	}

	query, args, err := buildListProductsInWindowQuery(r.db.builder(), w)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListInWindow").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*productRepository.ListInWindow").
			Int64("from", w.From).
			Int64("to", w.To).
			Msg("failed to execute query for listing products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0, models.PageSize)
	for rows.Next() {
		var p models.Product
		if err = rows.Scan(&p.ID, &p.Name, &p.ImagePath, &p.Price, &p.Description); err != nil {
			log.Err(err).Str("func", "*productRepository.ListInWindow").Msg("failed to scan product row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*productRepository.ListInWindow").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

// FindByID returns a single product with its full description.
// Returns [ErrNoProductWasFound] when id matches no row.
func (r *productRepository) FindByID(ctx context.Context, id int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindProductByIDQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.FindByID").Msg("failed to build query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var p models.Product
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.Name, &p.ImagePath, &p.Price, &p.Description)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Product{}, ErrNoProductWasFound
	case err != nil:
		log.Err(err).Str("func", "*productRepository.FindByID").Int64("product_id", id).Msg("failed to find product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return p, nil
}
