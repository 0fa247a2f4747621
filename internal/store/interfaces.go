// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-session-auth/models"
)

// UserDirectory is the authoritative collection of user records.
// Implementations enforce username uniqueness on Insert and Update.
type UserDirectory interface {
	// FindByUsername returns the user with exactly this username or ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (models.User, error)
	// FindByID returns the user with this id or ErrUserNotFound.
	FindByID(ctx context.Context, id int64) (models.User, error)
	// List returns users matching filter ordered by id.
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	// Insert assigns an id and stores the user.
	Insert(ctx context.Context, user models.User) (models.User, error)
	// Update replaces the stored user with the same id.
	Update(ctx context.Context, user models.User) (models.User, error)
	// Delete removes the user with this id or returns ErrUserNotFound.
	Delete(ctx context.Context, id int64) error
}

// SessionStore persists session records. Expiry is interpreted by the caller;
// Get returns a record even if it is past its ExpiresAt.
type SessionStore interface {
	Get(ctx context.Context, id string) (models.Session, error)
	Save(ctx context.Context, session models.Session) error
	// Delete is idempotent.
	Delete(ctx context.Context, id string) error
	// DeleteExpired removes every session expired at now and reports how many.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
