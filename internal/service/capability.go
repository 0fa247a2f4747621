// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/utils"
)

// CapabilityValue is the value the capability token must carry.
const CapabilityValue = "World"

// capabilityService issues HS256 JWTs carrying [CapabilityValue] as subject.
// Tokens are independent of sessions.
type capabilityService struct {
	secret string
	maxAge time.Duration
	logger *logger.Logger
}

func NewCapabilityService(secret string, maxAge time.Duration, logger *logger.Logger) CapabilityService {
	return &capabilityService{
		secret: secret,
		maxAge: maxAge,
		logger: logger,
	}
}

func (c *capabilityService) Issue(ctx context.Context) (string, error) {
	token, err := utils.GenerateJWTToken(CapabilityValue, c.maxAge, c.secret)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("failed to issue capability token")
		return "", fmt.Errorf("failed to issue capability token: %w", err)
	}

	return token, nil
}

// Verify rejects missing, tampered, expired and wrong-value tokens alike.
func (c *capabilityService) Verify(ctx context.Context, token string) error {
	if token == "" {
		return ErrCapabilityDenied
	}

	subject, err := utils.ValidateJWTToken(token, c.secret)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("capability token rejected")
		return fmt.Errorf("%w: %w", ErrCapabilityDenied, err)
	}

	if subject != CapabilityValue {
		return ErrCapabilityDenied
	}

	return nil
}

func (c *capabilityService) MaxAge() time.Duration {
	return c.maxAge
}
