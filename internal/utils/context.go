// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes type-safe context keys, cookie value signing,
// HTTP response writing, JWT capability tokens, id generation
// and per-key locking.
package utils

import (
	"context"

	"github.com/MKhiriev/go-session-auth/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey holds the int64 id taken from a /users/{id} path.
	UserIDCtxKey = contextKey("userID")

	// SessionCtxKey holds the models.Session resolved from the request cookie.
	SessionCtxKey = contextKey("session")

	// PrincipalCtxKey holds the authenticated models.User.
	PrincipalCtxKey = contextKey("principal")
)

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true : value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithSession stores the resolved session in ctx.
func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// GetSessionFromContext returns the session stored by WithSession.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	return session, ok
}

// WithPrincipal stores the authenticated user in ctx.
func WithPrincipal(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, user)
}

// GetPrincipalFromContext returns the user stored by WithPrincipal.
func GetPrincipalFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(PrincipalCtxKey).(models.User)
	return user, ok
}
