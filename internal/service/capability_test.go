// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/utils"
)

func TestCapabilityService(t *testing.T) {
	c := NewCapabilityService("cookie-secret", time.Minute, logger.Nop())
	ctx := context.Background()

	token, err := c.Issue(ctx)
	require.NoError(t, err)
	assert.NoError(t, c.Verify(ctx, token))
	assert.Equal(t, time.Minute, c.MaxAge())

	wrongValue, err := utils.GenerateJWTToken("Mars", time.Minute, "cookie-secret")
	require.NoError(t, err)
	otherKey, err := NewCapabilityService("other-secret", time.Minute, logger.Nop()).Issue(ctx)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "missing", token: ""},
		{name: "plain value", token: CapabilityValue},
		{name: "tampered", token: token + "x"},
		{name: "wrong value", token: wrongValue},
		{name: "other key", token: otherKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, c.Verify(ctx, tt.token), ErrCapabilityDenied)
		})
	}
}

func TestCapabilityService_Expired(t *testing.T) {
	c := NewCapabilityService("cookie-secret", time.Second, logger.Nop())
	ctx := context.Background()

	token, err := c.Issue(ctx)
	require.NoError(t, err)

	// jwt expiry has second resolution
	time.Sleep(2100 * time.Millisecond)
	assert.ErrorIs(t, c.Verify(ctx, token), ErrCapabilityDenied)
}

func TestCapabilityService_IssueWithoutSecret(t *testing.T) {
	_, err := NewCapabilityService("", time.Minute, logger.Nop()).Issue(context.Background())
	assert.Error(t, err)
}
