package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-limerick-locker/internal/config"
	httphandler "github.com/MKhiriev/go-limerick-locker/internal/handler/http"
	"github.com/MKhiriev/go-limerick-locker/internal/logger"
	"github.com/MKhiriev/go-limerick-locker/internal/server"
	"github.com/MKhiriev/go-limerick-locker/internal/service"
	"github.com/MKhiriev/go-limerick-locker/internal/store"
	"github.com/MKhiriev/go-limerick-locker/web"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("limerick-locker-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg.App, log)

	templates, err := web.Templates()
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing page templates")
	}

	handler := httphandler.NewHandler(services, templates, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
