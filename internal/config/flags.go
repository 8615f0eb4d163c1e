// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line flags into a config layer.
//
// Flags:
//
//	-a               server HTTP address host:port
//	-grpc-address    server gRPC address host:port
//	-s               server address the client connects to
//	-d               database DSN (postgres) or cache path (client)
//	-c, -config      JSON or YAML config file path
//	-dotenv          .env file path
//	-env             environment name
//	-log-level       log level
//	-token-sign-key  auth token signing key
//	-token-issuer    token issuer name
//	-token-duration  auth token lifetime
//	-sync-sign-key   sync token signing key
//	-sync-token-ttl  sync token lifetime
//	-sync-hash-seed  xxHash64 seed
//	-sync-insecure   disable sync authorization (development only)
//	-request-timeout request timeout
//	-login, -password client credentials
//	-sync-interval   client sync period
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-sync-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress, grpcServerAddress, adapterAddress NetAddress
	cfg := &StructuredConfig{}

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.Var(&adapterAddress, "s", "Server address the client connects to")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.FilePath, "c", "", "Config file path")
	fs.StringVar(&cfg.FilePath, "config", "", "Config file path (alias)")
	fs.StringVar(&cfg.DotEnvPath, "dotenv", "", "Dotenv file path")
	fs.StringVar(&cfg.App.Environment, "env", "", "Environment name")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&cfg.Sync.SignKey, "sync-sign-key", "", "Sync token signing key")
	fs.DurationVar(&cfg.Sync.TokenTTL, "sync-token-ttl", 0, "Sync token lifetime")
	fs.Uint64Var(&cfg.Sync.HashSeed, "sync-hash-seed", 0, "Sync hash seed")
	fs.BoolVar(&cfg.Sync.Insecure, "sync-insecure", false, "Disable sync authorization")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Adapter.Login, "login", "", "Client login")
	fs.StringVar(&cfg.Adapter.Password, "password", "", "Client password")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "Client sync interval")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()
	cfg.Adapter.HTTPAddress = adapterAddress.String()
	cfg.Adapter.RequestTimeout = cfg.Server.RequestTimeout

	return cfg, nil
}

// lookupDotEnvPath resolves the .env path from flags, then DOTENV.
func lookupDotEnvPath(args []string) string {
	if cfg, err := parseFlags(args); err == nil && cfg.DotEnvPath != "" {
		return cfg.DotEnvPath
	}
	return os.Getenv("DOTENV")
}

// String returns host:port, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. Host must be "localhost" or an IP literal.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
