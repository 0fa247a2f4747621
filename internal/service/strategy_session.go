// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/models"
)

// SessionStrategyName names the user-embedding strategy.
const SessionStrategyName = "session"

// sessionStrategy copies the whole user into the session on login.
// Later directory changes are not reflected until the next login.
type sessionStrategy struct {
	verifier CredentialVerifier
	sessions SessionManager
	logger   *logger.Logger
}

func NewSessionStrategy(verifier CredentialVerifier, sessions SessionManager, logger *logger.Logger) AuthStrategy {
	return &sessionStrategy{
		verifier: verifier,
		sessions: sessions,
		logger:   logger,
	}
}

func (s *sessionStrategy) Name() string {
	return SessionStrategyName
}

func (s *sessionStrategy) Login(ctx context.Context, sessionID string, creds models.Credentials) (string, models.User, error) {
	user, err := s.verifier.Verify(ctx, creds.Username, creds.Password)
	if err != nil {
		return "", models.User{}, err
	}

	embedded := user
	embedded.Password = ""

	id, err := s.sessions.CreateOrUpdate(ctx, sessionID, func(state *models.SessionState) error {
		state.User = &embedded
		return nil
	})
	if err != nil {
		return "", models.User{}, err
	}

	logger.FromContext(ctx).Info().Int64("user_id", user.ID).Str("strategy", s.Name()).Msg("user logged in")

	return id, embedded, nil
}

func (s *sessionStrategy) Principal(_ context.Context, session models.Session) (models.User, error) {
	if session.State.User == nil {
		return models.User{}, ErrNotAuthenticated
	}

	return *session.State.User, nil
}

func (s *sessionStrategy) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		return fmt.Errorf("%w: %w", ErrLogoutFailed, err)
	}

	return nil
}
