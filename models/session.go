// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// PrincipalRef is the minimal reference the local strategy keeps in a session.
type PrincipalRef struct {
	UserID int64 `json:"user"`
}

// SessionState is the server-side data kept under a session identifier.
//
// Field defaults and merge rules:
//   - Passport: nil; replaced on local login, cleared on local logout.
//   - User: nil; replaced on session login.
//   - Cart: empty; items are only appended, in arrival order.
//   - Visited: false; only ever set to true.
type SessionState struct {
	Passport *PrincipalRef     `json:"passport,omitempty"`
	User     *User             `json:"user,omitempty"`
	Cart     []json.RawMessage `json:"cart,omitempty"`
	Visited  bool              `json:"visited,omitempty"`
}

// Clone returns a deep copy so stored state never aliases caller memory.
func (s SessionState) Clone() SessionState {
	clone := SessionState{Visited: s.Visited}

	if s.Passport != nil {
		ref := *s.Passport
		clone.Passport = &ref
	}

	if s.User != nil {
		user := *s.User
		clone.User = &user
	}

	if s.Cart != nil {
		clone.Cart = make([]json.RawMessage, len(s.Cart))
		for i, item := range s.Cart {
			clone.Cart[i] = append(json.RawMessage(nil), item...)
		}
	}

	return clone
}

// Session is a stored session record.
type Session struct {
	ID        string
	State     SessionState
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// TableName returns the name of the database table associated with Session.
func (s Session) TableName() string {
	return "sessions"
}
