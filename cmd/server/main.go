// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/handler"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/server"
	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/workers"
	"github.com/MKhiriev/go-session-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("session-auth-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("session-auth-server", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.ListenAddress()).
		Bool("database", cfg.Storage.DB.DSN != "").
		Dur("session_max_age", cfg.App.SessionMaxAge).
		Dur("cookie_max_age", cfg.App.CookieMaxAge).
		Msg("received configs")
	if cfg.UsesDefaultSecrets() {
		log.Warn().Msg("using development cookie/session secrets; set APP_COOKIE_SECRET and APP_SESSION_SECRET")
	}

	ctx, cancel := context.WithCancel(log.WithContext(context.Background()))
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, cfg.App, log)
	if storages.Persistent {
		if err = services.Users.Seed(ctx, store.DefaultUsers()...); err != nil {
			log.Fatal().Err(err).Msg("error seeding users")
		}
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bg := workers.NewWorkers(services, cfg.Workers, log)
	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		bg.Run(ctx)
	}()

	log.Info().Str("version", buildInfo.BuildVersion).Str("app_version", cfg.App.Version).Msg("starting server")
	srv.RunServer()

	cancel()
	<-workersDone
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion)
	fmt.Printf("Build date: %s\n", info.BuildDate)
	fmt.Printf("Build commit: %s\n", info.BuildCommit)
}
