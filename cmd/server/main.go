package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/storefront/internal/config"
	"github.com/MKhiriev/storefront/internal/handler"
	"github.com/MKhiriev/storefront/internal/logger"
	"github.com/MKhiriev/storefront/internal/server"
	"github.com/MKhiriev/storefront/internal/service"
	"github.com/MKhiriev/storefront/internal/session"
	"github.com/MKhiriev/storefront/internal/store"
	"github.com/MKhiriev/storefront/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("storefront-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Str("driver", cfg.Storage.DB.Driver).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx := context.Background()
	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if cfg.Storage.DB.Migrate {
		if err = db.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("error migrating database")
		}
		log.Info().Msg("database migrated")
	}

	services := service.NewServices(store.NewStorages(db, log), log)
	sessions := session.NewManager(session.NewMemoryStore(cfg.Session.TTL, utils.NewUUIDGenerator()), cfg.Session)

	handlers, err := handler.NewHandlers(services, sessions, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
