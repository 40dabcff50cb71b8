package main

import (
	"context"
	"fmt"

	"github.com/snesterov/ciphervault/internal/config"
	httphandler "github.com/snesterov/ciphervault/internal/handler/http"
	"github.com/snesterov/ciphervault/internal/logger"
	"github.com/snesterov/ciphervault/internal/server"
	"github.com/snesterov/ciphervault/internal/service"
	"github.com/snesterov/ciphervault/internal/store"
	"github.com/snesterov/ciphervault/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vault-server")

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	users := store.NewUserRepository(db, log)
	vault := store.NewVaultRepository(db, log)

	services := service.NewServices(users, vault, cfg.App, log)

	router := httphandler.NewHandler(services, log).Init()

	srv, err := server.NewServer(router, cfg.Server, log)
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
