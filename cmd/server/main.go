// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-med-keeper/internal/config"
	"github.com/MKhiriev/go-med-keeper/internal/crypto"
	"github.com/MKhiriev/go-med-keeper/internal/handler"
	"github.com/MKhiriev/go-med-keeper/internal/logger"
	"github.com/MKhiriev/go-med-keeper/internal/server"
	"github.com/MKhiriev/go-med-keeper/internal/service"
	"github.com/MKhiriev/go-med-keeper/internal/store"
	"github.com/MKhiriev/go-med-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("go-med-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	key, err := crypto.ParseKey(cfg.App.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error reading encryption key")
	}
	codec, err := crypto.NewCodec(key)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating field codec")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, codec, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(build models.BuildInfo) {
	fmt.Printf("Build version: %s\n", build.Version)
	fmt.Printf("Build date: %s\n", build.Date)
	fmt.Printf("Build commit: %s\n", build.Commit)
}
