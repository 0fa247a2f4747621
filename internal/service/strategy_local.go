// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/models"
)

// LocalStrategyName names the reference-storing strategy.
const LocalStrategyName = "local"

// localStrategy keeps only a [models.PrincipalRef] in the session and
// re-reads the user from the directory on every request.
type localStrategy struct {
	verifier CredentialVerifier
	users    store.UserDirectory
	sessions SessionManager
	logger   *logger.Logger
}

func NewLocalStrategy(verifier CredentialVerifier, users store.UserDirectory, sessions SessionManager, logger *logger.Logger) AuthStrategy {
	return &localStrategy{
		verifier: verifier,
		users:    users,
		sessions: sessions,
		logger:   logger,
	}
}

func (s *localStrategy) Name() string {
	return LocalStrategyName
}

func (s *localStrategy) Login(ctx context.Context, sessionID string, creds models.Credentials) (string, models.User, error) {
	user, err := s.verifier.Verify(ctx, creds.Username, creds.Password)
	if err != nil {
		return "", models.User{}, err
	}

	id, err := s.sessions.CreateOrUpdate(ctx, sessionID, func(state *models.SessionState) error {
		state.Passport = serialize(user)
		return nil
	})
	if err != nil {
		return "", models.User{}, err
	}

	logger.FromContext(ctx).Info().Int64("user_id", user.ID).Str("strategy", s.Name()).Msg("user logged in")

	return id, user, nil
}

func (s *localStrategy) Principal(ctx context.Context, session models.Session) (models.User, error) {
	if session.State.Passport == nil {
		return models.User{}, ErrNotAuthenticated
	}

	return s.deserialize(ctx, *session.State.Passport)
}

// Logout clears the principal reference, then destroys the session.
func (s *localStrategy) Logout(ctx context.Context, sessionID string) error {
	err := s.sessions.Update(ctx, sessionID, func(state *models.SessionState) error {
		state.Passport = nil
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: clearing principal: %w", ErrLogoutFailed, err)
	}

	if err = s.sessions.Destroy(ctx, sessionID); err != nil {
		return fmt.Errorf("%w: %w", ErrLogoutFailed, err)
	}

	return nil
}

// serialize reduces a user to the reference stored in the session.
func serialize(user models.User) *models.PrincipalRef {
	return &models.PrincipalRef{UserID: user.ID}
}

// deserialize restores the full user from a stored reference.
func (s *localStrategy) deserialize(ctx context.Context, ref models.PrincipalRef) (models.User, error) {
	user, err := s.users.FindByID(ctx, ref.UserID)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", ref.UserID).Msg("failed to deserialize session principal")
		return models.User{}, fmt.Errorf("%w: %w", ErrPrincipalVanished, err)
	}

	return user, nil
}
