// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/migrations"
)

// Dialect names the SQL flavour behind a [DB]; values double as goose dialects.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// DB wraps *sql.DB with the dialect-specific squirrel statement builder.
type DB struct {
	*sql.DB
	dialect Dialect
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:      conn,
		dialect: dialect,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		logger:  log,
	}
}

// Migrate applies the embedded migrations of the DB dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}
