// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// EnvironmentDevelopment is the only environment in which sync
// authorization may be disabled.
const EnvironmentDevelopment = "development"

// StructuredConfig is the top-level configuration container.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Sync    Sync    `envPrefix:"SYNC_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional JSON or YAML config file.
	// Env: CONFIG
	FilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file loaded before reading the environment.
	// Env: DOTENV
	DotEnvPath string `env:"DOTENV"`
}

// App holds process-wide settings and the authentication token parameters.
type App struct {
	// Environment names the deployment, e.g. "production" or "development".
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the client log destination.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// TokenSignKey signs and verifies authentication JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of authentication and sync tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an authentication JWT.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Sync configures the sync protocol.
type Sync struct {
	// SignKey signs sync validation tokens. Keep it distinct from
	// App.TokenSignKey so a sync token can never pass as a session.
	// Env: SYNC_SIGN_KEY
	SignKey string `env:"SIGN_KEY"`

	// TokenTTL is the lifetime of a sync validation token.
	// Env: SYNC_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`

	// HashSeed seeds xxHash64. Changing it invalidates all client caches.
	// Env: SYNC_HASH_SEED
	HashSeed uint64 `env:"HASH_SEED"`

	// Insecure disables sync authorization. Rejected outside development.
	// Env: SYNC_INSECURE
	Insecure bool `env:"INSECURE"`

	// MaxPageSize caps the page_size of List requests.
	// Env: SYNC_MAX_PAGE_SIZE
	MaxPageSize uint64 `env:"MAX_PAGE_SIZE"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the database connection settings. The server expects a
// PostgreSQL DSN, the client a SQLite file path.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds listener addresses and timeouts.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter configures the client's connection to the server.
type Adapter struct {
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Login and Password are the client credentials.
	// Env: ADAPTER_LOGIN, ADAPTER_PASSWORD
	Login    string `env:"LOGIN"`
	Password string `env:"PASSWORD"`
}

// Workers configures background jobs.
type Workers struct {
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment:   "production",
			LogLevel:      "info",
			LogFile:       "logs",
			TokenIssuer:   "go-sync-keeper",
			TokenDuration: 24 * time.Hour,
		},
		Sync: Sync{
			TokenTTL:    15 * time.Minute,
			MaxPageSize: 500,
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			GRPCAddress:     "localhost:9090",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			SyncInterval: time.Minute,
		},
		DotEnvPath: ".env",
	}
}

// GetStructuredConfig loads and validates the server configuration from
// the process environment and command line.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := load(os.Args[1:])
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(args).
		withEnv().
		withFlags(args).
		withFile().
		build()
}
