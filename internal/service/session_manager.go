// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
)

// sessionManager implements [SessionManager] over a [store.SessionStore].
//
// Load-mutate-save sequences on one id are serialized with a keyed mutex,
// so concurrent requests sharing a cookie never lose each other's writes.
// Reads are not locked and never create sessions.
type sessionManager struct {
	sessions store.SessionStore
	ids      IDGenerator
	locks    *utils.KeyedMutex
	maxAge   time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

func NewSessionManager(sessions store.SessionStore, ids IDGenerator, maxAge time.Duration, logger *logger.Logger) SessionManager {
	return &sessionManager{
		sessions: sessions,
		ids:      ids,
		locks:    utils.NewKeyedMutex(),
		maxAge:   maxAge,
		now:      time.Now,
		logger:   logger,
	}
}

func (m *sessionManager) CreateOrUpdate(ctx context.Context, sessionID string, mutate SessionMutator) (string, error) {
	log := logger.FromContext(ctx)

	var state models.SessionState
	id := ""

	if sessionID != "" {
		unlock := m.locks.Lock(sessionID)
		defer unlock()

		session, err := m.load(ctx, sessionID)
		switch {
		case err == nil:
			id, state = session.ID, session.State
		case errors.Is(err, ErrSessionNotFound):
			log.Debug().Msg("session is unknown or expired, starting a new one")
		default:
			return "", err
		}
	}

	// a fresh id is known to nobody else yet, so it needs no lock
	if id == "" {
		id = m.ids.Generate()
	}

	if err := m.apply(ctx, id, state, mutate); err != nil {
		return "", err
	}

	return id, nil
}

func (m *sessionManager) Update(ctx context.Context, sessionID string, mutate SessionMutator) error {
	if sessionID == "" {
		return ErrSessionNotFound
	}

	unlock := m.locks.Lock(sessionID)
	defer unlock()

	session, err := m.load(ctx, sessionID)
	if err != nil {
		return err
	}

	return m.apply(ctx, session.ID, session.State, mutate)
}

func (m *sessionManager) Resolve(ctx context.Context, sessionID string) (models.Session, error) {
	if sessionID == "" {
		return models.Session{}, ErrSessionNotFound
	}

	return m.load(ctx, sessionID)
}

func (m *sessionManager) Destroy(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	unlock := m.locks.Lock(sessionID)
	defer unlock()

	if err := m.sessions.Delete(ctx, sessionID); err != nil {
		logger.FromContext(ctx).Err(err).Msg("failed to destroy session")
		return fmt.Errorf("failed to destroy session: %w", err)
	}

	return nil
}

func (m *sessionManager) Sweep(ctx context.Context) (int64, error) {
	removed, err := m.sessions.DeleteExpired(ctx, m.now())
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired sessions: %w", err)
	}

	return removed, nil
}

func (m *sessionManager) MaxAge() time.Duration {
	return m.maxAge
}

// apply runs mutate on state and saves the result with a renewed expiry.
// Nothing is written when mutate fails.
func (m *sessionManager) apply(ctx context.Context, id string, state models.SessionState, mutate SessionMutator) error {
	if err := mutate(&state); err != nil {
		return err
	}

	session := models.Session{
		ID:        id,
		State:     state,
		ExpiresAt: m.now().Add(m.maxAge),
	}
	if err := m.sessions.Save(ctx, session); err != nil {
		logger.FromContext(ctx).Err(err).Msg("failed to save session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// load returns the live session. Expired records are evicted on sight.
func (m *sessionManager) load(ctx context.Context, id string) (models.Session, error) {
	log := logger.FromContext(ctx)

	session, err := m.sessions.Get(ctx, id)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Msg("failed to load session")
		return models.Session{}, fmt.Errorf("failed to load session: %w", err)
	}

	if session.Expired(m.now()) {
		if delErr := m.sessions.Delete(ctx, id); delErr != nil {
			log.Warn().Err(delErr).Msg("failed to evict expired session")
		}
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}
