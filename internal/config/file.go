// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout of a JSON or YAML config file.
type fileConfig struct {
	App struct {
		Environment   string    `json:"environment" yaml:"environment"`
		LogLevel      string    `json:"log_level" yaml:"log_level"`
		LogFile       string    `json:"log_file" yaml:"log_file"`
		TokenSignKey  string    `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string    `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration *Duration `json:"token_duration" yaml:"token_duration"`
	} `json:"app" yaml:"app"`

	Sync struct {
		SignKey     string    `json:"sign_key" yaml:"sign_key"`
		TokenTTL    *Duration `json:"token_ttl" yaml:"token_ttl"`
		HashSeed    uint64    `json:"hash_seed" yaml:"hash_seed"`
		Insecure    bool      `json:"insecure" yaml:"insecure"`
		MaxPageSize uint64    `json:"max_page_size" yaml:"max_page_size"`
	} `json:"sync" yaml:"sync"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress     string    `json:"http_address" yaml:"http_address"`
		GRPCAddress     string    `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout  *Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout *Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" yaml:"server"`

	Adapter struct {
		HTTPAddress    string    `json:"http_address" yaml:"http_address"`
		RequestTimeout *Duration `json:"request_timeout" yaml:"request_timeout"`
		Login          string    `json:"login" yaml:"login"`
		Password       string    `json:"password" yaml:"password"`
	} `json:"adapter" yaml:"adapter"`

	Workers struct {
		SyncInterval *Duration `json:"sync_interval" yaml:"sync_interval"`
	} `json:"workers" yaml:"workers"`
}

// parseFile reads a config file. ".yaml" and ".yml" are decoded as YAML,
// everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &fc)
	default:
		err = json.Unmarshal(raw, &fc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfigFile, err)
	}

	return &StructuredConfig{
		App: App{
			Environment:   fc.App.Environment,
			LogLevel:      fc.App.LogLevel,
			LogFile:       fc.App.LogFile,
			TokenSignKey:  fc.App.TokenSignKey,
			TokenIssuer:   fc.App.TokenIssuer,
			TokenDuration: durationOrZero(fc.App.TokenDuration),
		},
		Sync: Sync{
			SignKey:     fc.Sync.SignKey,
			TokenTTL:    durationOrZero(fc.Sync.TokenTTL),
			HashSeed:    fc.Sync.HashSeed,
			Insecure:    fc.Sync.Insecure,
			MaxPageSize: fc.Sync.MaxPageSize,
		},
		Storage: Storage{DB: DB{DSN: fc.Storage.DB.DSN}},
		Server: Server{
			HTTPAddress:     fc.Server.HTTPAddress,
			GRPCAddress:     fc.Server.GRPCAddress,
			RequestTimeout:  durationOrZero(fc.Server.RequestTimeout),
			ShutdownTimeout: durationOrZero(fc.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			RequestTimeout: durationOrZero(fc.Adapter.RequestTimeout),
			Login:          fc.Adapter.Login,
			Password:       fc.Adapter.Password,
		},
		Workers: Workers{SyncInterval: durationOrZero(fc.Workers.SyncInterval)},
	}, nil
}

// Duration decodes "1h30m"-style strings or integer nanoseconds from JSON
// and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// durationOrZero keeps durations absent from the file at zero.
func durationOrZero(d *Duration) time.Duration {
	if d == nil {
		return 0
	}
	return time.Duration(*d)
}
