package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kairos-agro/kairos-server/internal/config"
	myHTTP "github.com/kairos-agro/kairos-server/internal/handler/http"
	"github.com/kairos-agro/kairos-server/internal/logger"
	"github.com/kairos-agro/kairos-server/internal/server"
	"github.com/kairos-agro/kairos-server/internal/service"
	"github.com/kairos-agro/kairos-server/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	log := logger.NewLogger("kairos-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg, log)

	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
