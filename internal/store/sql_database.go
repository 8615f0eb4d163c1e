// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/migrations"
)

// DB is a database handle shared by the repositories.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	migrate            func(*sql.DB) error
}

// ErrorClassificator decides whether a failed database operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Migrate applies the embedded schema migrations for this database kind.
func (db *DB) Migrate() error {
	if db.migrate == nil {
		return migrations.Migrate(db.DB)
	}
	return db.migrate(db.DB)
}

func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
