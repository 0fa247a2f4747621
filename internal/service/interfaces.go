// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-session-auth/models"
)

// PasswordScheme stores and checks user passwords.
type PasswordScheme interface {
	// Hash returns the stored form of password.
	Hash(password string) (string, error)
	// Compare returns ErrPasswordMismatch when password does not match stored.
	Compare(stored, password string) error
}

// CredentialVerifier checks a username/password pair against the directory.
type CredentialVerifier interface {
	// Verify returns the canonical user, ErrUserNotFound or ErrBadCredentials.
	Verify(ctx context.Context, username, password string) (models.User, error)
}

// SessionMutator edits session state in place. Returning an error aborts
// the write.
type SessionMutator func(state *models.SessionState) error

// SessionManager owns the lifecycle of server-side sessions.
type SessionManager interface {
	// CreateOrUpdate applies mutate to the live session sessionID, or to a
	// fresh session under a new id when sessionID is empty, unknown or
	// expired, and saves it with a renewed expiry. It returns the id the
	// state was saved under.
	CreateOrUpdate(ctx context.Context, sessionID string, mutate SessionMutator) (string, error)
	// Update is CreateOrUpdate restricted to live sessions; it never
	// allocates an id and returns ErrSessionNotFound instead.
	Update(ctx context.Context, sessionID string, mutate SessionMutator) error
	// Resolve returns the live session or ErrSessionNotFound.
	Resolve(ctx context.Context, sessionID string) (models.Session, error)
	// Destroy removes the session. Destroying an absent session succeeds.
	Destroy(ctx context.Context, sessionID string) error
	// Sweep removes every expired session and reports how many.
	Sweep(ctx context.Context) (int64, error)
	// MaxAge is the session lifetime after the last write.
	MaxAge() time.Duration
}

// AuthStrategy is one way of turning credentials into a session principal.
type AuthStrategy interface {
	Name() string
	// Login verifies creds and records the principal in the session,
	// returning the (possibly new) session id and the authenticated user.
	Login(ctx context.Context, sessionID string, creds models.Credentials) (string, models.User, error)
	// Principal returns the user recorded by this strategy or ErrNotAuthenticated.
	Principal(ctx context.Context, session models.Session) (models.User, error)
	// Logout ends the authenticated session. Failures wrap ErrLogoutFailed.
	Logout(ctx context.Context, sessionID string) error
}

// CapabilityService issues and checks the signed capability token.
type CapabilityService interface {
	Issue(ctx context.Context) (string, error)
	// Verify returns ErrCapabilityDenied for any token that does not carry
	// the expected value.
	Verify(ctx context.Context, token string) error
	MaxAge() time.Duration
}

// CartService keeps the per-session shopping cart.
type CartService interface {
	// Add appends item to the cart of the live session sessionID.
	Add(ctx context.Context, sessionID string, item json.RawMessage) (json.RawMessage, error)
	// Items returns the cart of session; never nil.
	Items(ctx context.Context, session models.Session) []json.RawMessage
}

// ProductService serves the product catalogue.
type ProductService interface {
	List(ctx context.Context) []models.Product
}

// UserService implements CRUD over the user directory.
type UserService interface {
	List(ctx context.Context, query models.UserQuery) ([]models.User, error)
	Get(ctx context.Context, id int64) (models.User, error)
	Create(ctx context.Context, user models.NewUser) (models.User, error)
	Replace(ctx context.Context, id int64, user models.NewUser) (models.User, error)
	Patch(ctx context.Context, id int64, patch models.UserPatch) (models.User, error)
	Delete(ctx context.Context, id int64) error
	// Seed inserts users whose usernames are not taken yet.
	Seed(ctx context.Context, users ...models.User) error
}

// IDGenerator issues session identifiers.
type IDGenerator interface {
	Generate() string
}
