package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/storefront/internal/logger"
)

type maintenanceRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewMaintenanceRepository(db *DB, logger *logger.Logger) MaintenanceRepository {
	logger.Debug().Msg("creating maintenance repository")
	return &maintenanceRepository{
		db:     db,
		logger: logger,
	}
}

// DeleteAbove runs a single auto-committed DELETE. Only the four storefront
// tables are accepted; anything else returns [ErrUnknownTable].
func (r *maintenanceRepository) DeleteAbove(ctx context.Context, table string, id int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAboveQuery(r.db.builder(), table, id)
	if err != nil {
		log.Err(err).Str("func", "*maintenanceRepository.DeleteAbove").Str("table", table).Msg("failed to build query")
		if errors.Is(err, ErrUnknownTable) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*maintenanceRepository.DeleteAbove").
			Str("table", table).
			Int64("above", id).
			Msg("failed to delete rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		// the rows are gone either way
		deleted = 0
	}
	log.Debug().Str("table", table).Int64("deleted", deleted).Msg("pruned rows")

	return deleted, nil
}
