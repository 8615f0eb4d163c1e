// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds and applies the goose schema migrations of the
// server database (PostgreSQL) and the client sync cache (SQLite).
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned when no connection is given.
var ErrNilDB = errors.New("migration error: db is nil")

// Migrate applies the server schema to a PostgreSQL connection opened with
// the pgx driver.
func Migrate(db *sql.DB) error {
	return up(db, "pgx", "postgres")
}

// MigrateClient applies the sync cache schema to a SQLite connection.
func MigrateClient(db *sql.DB) error {
	return up(db, "sqlite3", "sqlite")
}

func up(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return ErrNilDB
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
