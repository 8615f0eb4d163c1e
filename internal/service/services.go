// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/hasher"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/syncauth"
	"github.com/MKhiriev/go-sync-keeper/internal/syncer"
	"github.com/MKhiriev/go-sync-keeper/internal/validators"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type Services struct {
	AuthService    AuthService
	ItemService    ItemService
	TagService     TagService
	AppInfoService AppInfoService
}

// NewServices wires the server services. Each entity gets its own sync
// authorizer so tokens are scoped to the entity they were listed for.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	h := hasher.New(hasher.Config{Seed: cfg.Sync.HashSeed})
	authCfg := syncauth.Config{
		SignKey:  cfg.Sync.SignKey,
		Issuer:   cfg.App.TokenIssuer,
		TTL:      cfg.Sync.TokenTTL,
		Insecure: cfg.Sync.Insecure,
	}

	itemAuth, err := syncauth.New[int64](authCfg, string(models.SyncEntityItems), h, logger)
	if err != nil {
		return nil, fmt.Errorf("item sync authorizer: %w", err)
	}
	tagAuth, err := syncauth.New[int64](authCfg, string(models.SyncEntityTags), h, logger)
	if err != nil {
		return nil, fmt.Errorf("tag sync authorizer: %w", err)
	}

	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewEntityValidator(cfg.Sync.MaxPageSize)

	items := NewItemService(storages.ItemRepository, storages.TagRepository,
		syncer.New[int64, models.Item](h, itemAuth), logger)
	tags := NewTagService(storages.TagRepository,
		syncer.New[int64, models.Tag](h, tagAuth), logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ItemService:    NewItemValidationService(validator).Wrap(items),
		TagService:     NewTagValidationService(validator).Wrap(tags),
		AppInfoService: appInfo,
	}, nil
}
