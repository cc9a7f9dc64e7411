// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-time-diary/internal/config"
	"github.com/MKhiriev/go-time-diary/internal/handler"
	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/server"
	"github.com/MKhiriev/go-time-diary/internal/service"
	"github.com/MKhiriev/go-time-diary/internal/store"
	"github.com/MKhiriev/go-time-diary/internal/workers"
	"github.com/MKhiriev/go-time-diary/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("go-time-diary-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Str("backend", cfg.Storage.Backend).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
