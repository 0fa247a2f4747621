// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
)

// Storages aggregates the backends used by the service layer.
type Storages struct {
	Users    UserDirectory
	Sessions SessionStore

	// Persistent reports whether Users and Sessions live in a database.
	// The in-memory directory stores plaintext passwords; a persisted one
	// stores bcrypt hashes.
	Persistent bool

	db *DB
}

// NewStorages selects the backend by the DSN:
//   - empty                         → in-memory directory seeded with [DefaultUsers];
//   - postgres:// or postgresql://  → PostgreSQL;
//   - anything else                 → SQLite.
//
// Database backends are migrated before returning.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := strings.TrimSpace(cfg.DB.DSN)
	if dsn == "" {
		log.Info().Msg("no database DSN configured, using in-memory storage")
		return &Storages{
			Users:    NewMemoryUserDirectory(DefaultUsers()...),
			Sessions: NewMemorySessionStore(),
		}, nil
	}

	var (
		db  *DB
		err error
	)
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, dsn, log)
	default:
		db, err = NewConnectSQLite(ctx, dsn, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("dialect", string(db.dialect)).Msg("failed to apply migrations")
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return newSQLStorages(db, log), nil
}

func newSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Users:      NewUserRepository(db, log),
		Sessions:   NewSessionRepository(db, log),
		Persistent: true,
		db:         db,
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
