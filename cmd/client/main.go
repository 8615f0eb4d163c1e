// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/workers"
	"github.com/MKhiriev/go-sync-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildInfo.Version, buildInfo.Date, buildInfo.Commit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("go-sync-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewFileLogger("go-sync-client", cfg.App.LogFile, cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if err := localStorage.Close(); err != nil {
			log.Error().Err(err).Msg("close local storage")
		}
	}()

	services := service.NewClientServices(localStorage, serverAdapter, cfg.Workers, log)

	if err = authenticate(ctx, services.AuthService, cfg.Adapter); err != nil {
		log.Error().Err(err).Msg("authentication failed")
		return
	}

	jobs := workers.NewWorkers(services.SyncJob)
	jobs.Run(ctx)
	log.Info().Msg("client started")

	<-ctx.Done()
	jobs.Stop()
	log.Info().Msg("client stopped")
}

// authenticate registers the configured account and falls back to login
// when it already exists.
func authenticate(ctx context.Context, auth service.ClientAuthService, cfg config.ClientAdapter) error {
	user := models.User{Login: cfg.Login, Password: cfg.Password}

	err := auth.Register(ctx, user)
	if errors.Is(err, store.ErrLoginAlreadyExists) {
		return auth.Login(ctx, user)
	}
	return err
}
