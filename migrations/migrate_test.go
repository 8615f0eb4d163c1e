// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: goose's first statement fails
	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	assert.ErrorIs(t, Migrate(nil), ErrNilDB)
	assert.ErrorIs(t, MigrateClient(nil), ErrNilDB)
}

func TestEmbeddedMigrations(t *testing.T) {
	for _, dir := range []string{"postgres", "sqlite"} {
		entries, err := embedMigrations.ReadDir(dir)
		require.NoError(t, err)
		assert.NotEmpty(t, entries, dir)
	}
}
