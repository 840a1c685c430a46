package handler

import (
	"fmt"

	"github.com/MKhiriev/storefront/internal/config"
	"github.com/MKhiriev/storefront/internal/handler/http"
	"github.com/MKhiriev/storefront/internal/logger"
	"github.com/MKhiriev/storefront/internal/service"
	"github.com/MKhiriev/storefront/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions *session.Manager, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	httpHandler, err := http.NewHandler(services, sessions, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating http handler: %w", err)
	}

	return &Handlers{HTTP: httpHandler}, nil
}
