// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	ErrInvalidFlags      = errors.New("invalid command-line flags")
	ErrInvalidConfigFile = errors.New("invalid config file")

	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidSyncConfigs    = errors.New("invalid sync configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	ErrInvalidWorkerConfigs  = errors.New("invalid worker configuration")

	// ErrInsecureSyncOutsideDevelopment is returned when SYNC_INSECURE is
	// set while APP_ENVIRONMENT is not "development".
	ErrInsecureSyncOutsideDevelopment = errors.New("sync authorization can only be disabled in development")
)
