// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
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
	err = Migrate(db, "postgres")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "postgres")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported dialect")
}

func TestEmbeddedMigrations_MatchAcrossDialects(t *testing.T) {
	pg, err := fs.Glob(embedMigrations, "postgres/*.sql")
	require.NoError(t, err)
	lite, err := fs.Glob(embedMigrations, "sqlite/*.sql")
	require.NoError(t, err)

	require.NotEmpty(t, pg)
	require.Len(t, lite, len(pg))
	for i := range pg {
		assert.Equal(t, pg[i][len("postgres/"):], lite[i][len("sqlite/"):])
	}
}
