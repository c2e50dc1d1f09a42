package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deploy-config/internal/config"
	"github.com/MKhiriev/go-deploy-config/internal/handler"
	"github.com/MKhiriev/go-deploy-config/internal/identity"
	"github.com/MKhiriev/go-deploy-config/internal/logger"
	"github.com/MKhiriev/go-deploy-config/internal/server"
	"github.com/MKhiriev/go-deploy-config/internal/service"
	"github.com/MKhiriev/go-deploy-config/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("deploy-config-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	provider, err := identity.NewHTTPProvider(cfg.Identity, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating identity provider")
	}

	services := service.NewServices(storages, provider, cfg, log)
	handlers := handler.NewHandlers(services, log)

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
