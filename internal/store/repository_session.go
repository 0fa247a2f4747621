// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/models"
)

// sessionRepository is the SQL-backed implementation of [SessionStore].
// State is stored as a JSON document; expires_at holds unix milliseconds.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionStore] backed by the provided
// database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sessionRepository) Get(ctx context.Context, id string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "data", "expires_at").
		From(models.Session{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Get").Msg("failed to build query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		session   models.Session
		data      string
		expiresAt int64
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&session.ID, &data, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Get").Msg("failed to read session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = json.Unmarshal([]byte(data), &session.State); err != nil {
		log.Err(err).Str("func", "*sessionRepository.Get").Msg("stored session state is corrupted")
		return models.Session{}, fmt.Errorf("%w: %w", ErrDecodingSession, err)
	}
	session.ExpiresAt = time.UnixMilli(expiresAt)

	return session, nil
}

// Save inserts the session or replaces the stored state and expiry.
func (r *sessionRepository) Save(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(session.State)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}

	query, args, err := r.db.builder.
		Insert(session.TableName()).
		Columns("id", "data", "expires_at").
		Values(session.ID, string(data), session.ExpiresAt.UnixMilli()).
		Suffix("ON CONFLICT (id) DO UPDATE SET data = excluded.data, expires_at = excluded.expires_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Save").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.Save").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Session{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Delete").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.Delete").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Session{}.TableName()).
		Where(sq.LtOrEq{"expires_at": now.UnixMilli()}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpired").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpired").Msg("failed to delete expired sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return removed, nil
}
