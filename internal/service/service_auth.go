package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/storefront/internal/logger"
	"github.com/MKhiriev/storefront/internal/store"
	"github.com/MKhiriev/storefront/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored and compared in plain text.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Authenticate looks the user up by email and compares passwords.
//
// Returns the authenticated user or:
//   - ErrAuthenticationFailed if the email is unknown or the password differs.
//   - A wrapped storage error if the lookup itself fails.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("email", email).Msg("login with unknown email")
		return models.User{}, ErrAuthenticationFailed
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if user.Password != password {
		log.Info().Int64("id", user.ID).Msg("wrong password")
		return models.User{}, ErrAuthenticationFailed
	}

	return user, nil
}

func (a *authService) CurrentUser(ctx context.Context, sessionUserID int64) (models.User, bool) {
	if sessionUserID == 0 {
		return models.User{}, false
	}

	user, err := a.userRepository.FindUserByID(ctx, sessionUserID)
	if err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			logger.FromContext(ctx).Err(err).Int64("user_id", sessionUserID).Msg("error resolving session user")
		}
		return models.User{}, false
	}

	return user, true
}

func (a *authService) RequireAuthenticated(ctx context.Context, sessionUserID int64) (models.User, error) {
	user, ok := a.CurrentUser(ctx, sessionUserID)
	if !ok {
		return models.User{}, ErrPermissionDenied
	}

	return user, nil
}
