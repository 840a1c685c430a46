package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/storefront/internal/logger"
	"github.com/MKhiriev/storefront/internal/store"
	"github.com/MKhiriev/storefront/internal/utils"
	"github.com/MKhiriev/storefront/models"
)

type purchaseService struct {
	historyRepository store.HistoryRepository
	userRepository    store.UserRepository
	authService       AuthService
	clock             clock
	logger            *logger.Logger
}

func NewPurchaseService(
	historyRepository store.HistoryRepository,
	userRepository store.UserRepository,
	authService AuthService,
	logger *logger.Logger,
) PurchaseService {
	return &purchaseService{
		historyRepository: historyRepository,
		userRepository:    userRepository,
		authService:       authService,
		logger:            logger,
	}
}

// Buy records a purchase. Neither the product nor stock is checked.
func (p *purchaseService) Buy(ctx context.Context, productID, userID int64) error {
	history := models.History{
		ProductID: productID,
		UserID:    userID,
		CreatedAt: p.clock.dbNow(),
	}

	if err := p.historyRepository.Create(ctx, history); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("product_id", productID).
			Int64("user_id", userID).
			Msg("error recording purchase")
		return fmt.Errorf("error recording purchase: %w", err)
	}

	return nil
}

// AlreadyBought reports whether the session user has bought the product at
// least once. Without a logged-in user it is always false.
func (p *purchaseService) AlreadyBought(ctx context.Context, productID, sessionUserID int64) (bool, error) {
	if _, ok := p.authService.CurrentUser(ctx, sessionUserID); !ok {
		return false, nil
	}

	count, err := p.historyRepository.CountByProductAndUser(ctx, productID, sessionUserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("product_id", productID).
			Int64("user_id", sessionUserID).
			Msg("error counting purchases")
		return false, fmt.Errorf("error counting purchases: %w", err)
	}

	return count > 0, nil
}

// PurchaseHistory lists every purchase of userID, newest first, with the sum
// of their prices. Any user id is accepted; an unknown one yields an empty
// history owned by a zero user.
func (p *purchaseService) PurchaseHistory(ctx context.Context, userID int64) (models.PurchaseHistory, error) {
	log := logger.FromContext(ctx)

	purchases, err := p.historyRepository.ListByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error listing purchase history")
		return models.PurchaseHistory{}, fmt.Errorf("error listing purchase history: %w", err)
	}

	var total int64
	for i := range purchases {
		total += purchases[i].Price
		purchases[i].Description = utils.Truncate(purchases[i].Description, DescriptionPreviewLength)
	}

	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Int64("user_id", userID).Msg("error resolving history owner")
		return models.PurchaseHistory{}, fmt.Errorf("error resolving history owner: %w", err)
	}

	return models.PurchaseHistory{
		User:     user,
		Products: purchases,
		TotalPay: total,
	}, nil
}
