package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/handler"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/metrics"
	"github.com/MKhiriev/go-key-keeper/internal/server"
	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/internal/workers"
	"github.com/MKhiriev/go-key-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("go-key-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log.Info().Stringer("build", build).Msg("starting key vault")

	utils.InitHasherPool(cfg.App.HashKey)

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	m := metrics.New()

	services, err := service.NewServices(storages, *cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}
	defer services.Close()

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(storages, cfg.Workers, m, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
