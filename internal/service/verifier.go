// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/models"
)

// credentialVerifier checks credentials against a [store.UserDirectory]
// with a [PasswordScheme]. It never writes.
type credentialVerifier struct {
	users  store.UserDirectory
	scheme PasswordScheme
	logger *logger.Logger
}

func NewCredentialVerifier(users store.UserDirectory, scheme PasswordScheme, logger *logger.Logger) CredentialVerifier {
	return &credentialVerifier{
		users:  users,
		scheme: scheme,
		logger: logger,
	}
}

// Verify looks the user up by exact username and compares the password.
//
// Returns:
//   - ErrUserNotFound if no user has this username;
//   - ErrBadCredentials if the password does not match;
//   - a wrapped storage or scheme error otherwise.
func (v *credentialVerifier) Verify(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := v.users.FindByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("username", username).Msg("login attempt for unknown user")
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	err = v.scheme.Compare(user.Password, password)
	if errors.Is(err, ErrPasswordMismatch) {
		log.Debug().Int64("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrBadCredentials
	}
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("password comparison failed")
		return models.User{}, fmt.Errorf("password comparison failed: %w", err)
	}

	return user, nil
}
