package main

import (
	"context"
	"fmt"
	"os"

	"github.com/snesterov/ciphervault/internal/client"
	"github.com/snesterov/ciphervault/internal/config"
	"github.com/snesterov/ciphervault/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, args, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("vault-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewFileLogger("vault-client", cfg.LogPath)

	ctx := context.Background()

	app, err := client.NewApp(ctx, *cfg, log, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}
	err = app.Run(ctx, args)

	if cerr := app.Close(); cerr != nil {
		log.Error().Err(cerr).Msg("close local cache")
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
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
