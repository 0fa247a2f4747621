// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/mock"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/models"
)

func TestCredentialVerifier_Verify(t *testing.T) {
	anson := models.User{ID: 1, Username: "anson", DisplayName: "Anson", Password: "hello123"}

	tests := []struct {
		name     string
		username string
		password string
		found    models.User
		findErr  error
		wantErr  error
	}{
		{name: "valid", username: "anson", password: "hello123", found: anson},
		{name: "wrong password", username: "anson", password: "nope", found: anson, wantErr: ErrBadCredentials},
		{name: "unknown user", username: "ghost", password: "hello123", findErr: store.ErrUserNotFound, wantErr: ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			users := mock.NewMockUserDirectory(ctrl)
			users.EXPECT().FindByUsername(gomock.Any(), tt.username).Return(tt.found, tt.findErr)

			v := NewCredentialVerifier(users, PlainScheme{}, logger.Nop())
			user, err := v.Verify(context.Background(), tt.username, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, models.User{}, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, anson, user)
		})
	}
}

func TestCredentialVerifier_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserDirectory(ctrl)
	boom := errors.New("connection refused")
	users.EXPECT().FindByUsername(gomock.Any(), "anson").Return(models.User{}, boom)

	_, err := NewCredentialVerifier(users, PlainScheme{}, logger.Nop()).Verify(context.Background(), "anson", "x")

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrUserNotFound)
	assert.NotErrorIs(t, err, ErrBadCredentials)
}

func TestCredentialVerifier_CaseSensitive(t *testing.T) {
	v := NewCredentialVerifier(store.NewMemoryUserDirectory(store.DefaultUsers()...), PlainScheme{}, logger.Nop())

	_, err := v.Verify(context.Background(), "ANSON", "hello123")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
