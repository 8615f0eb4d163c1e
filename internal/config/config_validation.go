// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged server configuration before startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and positive token duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Sync.Insecure && cfg.App.Environment != EnvironmentDevelopment {
		return ErrInsecureSyncOutsideDevelopment
	}

	if cfg.Sync.SignKey == "" && !cfg.Sync.Insecure {
		return fmt.Errorf("%w: sync sign key is required", ErrInvalidSyncConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: HTTP address and positive request timeout are required", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.Login == "" || cfg.Adapter.Password == "" {
		return fmt.Errorf("%w: login and password are required", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
