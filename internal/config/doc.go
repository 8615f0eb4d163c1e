// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates configuration for the sync
// server and client.
//
// Sources, lowest priority first:
//  1. built-in defaults
//  2. JSON or YAML config file (path from CONFIG or -c/-config)
//  3. environment variables, including those loaded from a .env file
//  4. command-line flags
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
