// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/models"
)

type cartService struct {
	sessions SessionManager
	logger   *logger.Logger
}

func NewCartService(sessions SessionManager, logger *logger.Logger) CartService {
	return &cartService{
		sessions: sessions,
		logger:   logger,
	}
}

// Add appends item to the session cart in arrival order.
func (c *cartService) Add(ctx context.Context, sessionID string, item json.RawMessage) (json.RawMessage, error) {
	item = bytes.TrimSpace(item)
	if len(item) == 0 || !json.Valid(item) {
		return nil, ErrInvalidCartItem
	}

	stored := append(json.RawMessage(nil), item...)
	err := c.sessions.Update(ctx, sessionID, func(state *models.SessionState) error {
		state.Cart = append(state.Cart, stored)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug().Int("item_bytes", len(stored)).Msg("item added to cart")

	return stored, nil
}

func (c *cartService) Items(_ context.Context, session models.Session) []json.RawMessage {
	if session.State.Cart == nil {
		return []json.RawMessage{}
	}

	return session.State.Cart
}
