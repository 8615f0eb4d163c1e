// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client process settings.
type ClientApp struct {
	LogLevel string
	LogFile  string
}

// ClientAdapter holds the server connection settings.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	Login          string
	Password       string
}

// ClientDB locates the local SQLite cache.
type ClientDB struct {
	DSN string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers holds client background job settings.
type ClientWorkers struct {
	SyncInterval time.Duration
}

// ClientConfig is the client view over the shared configuration sources.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig loads the shared configuration, keeps the fields the
// client uses and validates them.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := load(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Login:          cfg.Adapter.Login,
			Password:       cfg.Adapter.Password,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}
}
