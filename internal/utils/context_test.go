// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-session-auth/models"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
	assert.Equal(t, "session", SessionCtxKey.String())
	assert.Equal(t, "principal", PrincipalCtxKey.String())
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{name: "present", ctx: context.WithValue(context.Background(), UserIDCtxKey, int64(42)), wantID: 42, wantOK: true},
		{name: "zero", ctx: context.WithValue(context.Background(), UserIDCtxKey, int64(0)), wantID: 0, wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "wrong type", ctx: context.WithValue(context.Background(), UserIDCtxKey, "42")},
		{name: "different key", ctx: context.WithValue(context.Background(), contextKey("otherKey"), int64(99))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestSessionContext(t *testing.T) {
	_, ok := GetSessionFromContext(context.Background())
	assert.False(t, ok)

	session := models.Session{ID: "sid", State: models.SessionState{Visited: true}, ExpiresAt: time.Now()}
	got, ok := GetSessionFromContext(WithSession(context.Background(), session))
	assert.True(t, ok)
	assert.Equal(t, "sid", got.ID)
	assert.True(t, got.State.Visited)
}

func TestPrincipalContext(t *testing.T) {
	_, ok := GetPrincipalFromContext(context.Background())
	assert.False(t, ok)

	got, ok := GetPrincipalFromContext(WithPrincipal(context.Background(), models.User{ID: 3, Username: "adam"}))
	assert.True(t, ok)
	assert.Equal(t, "adam", got.Username)
}
