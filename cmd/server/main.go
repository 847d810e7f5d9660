package main

import (
	"fmt"

	"github.com/talentgrid/talentgrid-server/internal/config"
	"github.com/talentgrid/talentgrid-server/internal/handler"
	"github.com/talentgrid/talentgrid-server/internal/logger"
	"github.com/talentgrid/talentgrid-server/internal/schema"
	"github.com/talentgrid/talentgrid-server/internal/server"
	"github.com/talentgrid/talentgrid-server/internal/service"
	"github.com/talentgrid/talentgrid-server/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("talentgrid-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	// The pool is not opened here: the provider constructs it on first use, so
	// the server starts even when the database is unreachable.
	provider := store.NewProvider(cfg.Storage.DB, log)
	storages := store.NewStorages(provider, log)

	services := service.NewServices(*storages, provider, *cfg, log)

	registry := schema.NewRegistry(provider, cfg.App.SchemaInitPolicy == config.SchemaPolicyFailFast, log)

	handlers, err := handler.NewHandlers(services, *storages, registry, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, func() {
		if err := provider.Close(); err != nil {
			log.Err(err).Msg("error closing database pool")
		}
	})
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
