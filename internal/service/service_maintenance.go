package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/storefront/internal/logger"
	"github.com/MKhiriev/storefront/internal/store"
)

// resetThreshold is the highest id of the seed data in one table.
type resetThreshold struct {
	table string
	maxID int64
}

// resetThresholds are applied in order, each as its own statement.
var resetThresholds = []resetThreshold{
	{table: store.TableUsers, maxID: 5000},
	{table: store.TableProducts, maxID: 10000},
	{table: store.TableComments, maxID: 200000},
	{table: store.TableHistories, maxID: 500000},
}

type maintenanceService struct {
	maintenanceRepository store.MaintenanceRepository
	logger                *logger.Logger
}

func NewMaintenanceService(maintenanceRepository store.MaintenanceRepository, logger *logger.Logger) MaintenanceService {
	return &maintenanceService{
		maintenanceRepository: maintenanceRepository,
		logger:                logger,
	}
}

// Initialize deletes everything added on top of the seed data. It stops at
// the first failing statement; earlier deletions stay committed.
func (m *maintenanceService) Initialize(ctx context.Context) error {
	log := logger.FromContext(ctx)

	for _, threshold := range resetThresholds {
		deleted, err := m.maintenanceRepository.DeleteAbove(ctx, threshold.table, threshold.maxID)
		if err != nil {
			log.Err(err).Str("table", threshold.table).Msg("error resetting table")
			return fmt.Errorf("error resetting %s: %w", threshold.table, err)
		}
		log.Info().Str("table", threshold.table).Int64("deleted", deleted).Msg("table reset")
	}

	return nil
}
