package http

import (
	"fmt"

	"github.com/MKhiriev/storefront/internal/config"
	"github.com/MKhiriev/storefront/internal/logger"
	"github.com/MKhiriev/storefront/internal/service"
	"github.com/MKhiriev/storefront/internal/session"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager
	views    *views

	// publicDir holds static assets served under /css and /images. Empty
	// disables static serving.
	publicDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, cfg config.Server, logger *logger.Logger) (*Handler, error) {
	views, err := parseViews()
	if err != nil {
		return nil, fmt.Errorf("error parsing views: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		sessions:  sessions,
		views:     views,
		publicDir: cfg.PublicDir,
		logger:    logger,
	}, nil
}
