// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/internal/validators"
)

type Services struct {
	Sessions   SessionManager
	Verifier   CredentialVerifier
	LocalAuth  AuthStrategy
	EmbedAuth  AuthStrategy
	Capability CapabilityService
	Cart       CartService
	Products   ProductService
	Users      UserService
}

// Strategies returns every registered strategy.
func (s *Services) Strategies() []AuthStrategy {
	return []AuthStrategy{s.LocalAuth, s.EmbedAuth}
}

// NewServices wires the service layer. The password scheme follows the
// directory: plaintext for the in-memory one, bcrypt for a persisted one.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	var scheme PasswordScheme = PlainScheme{}
	if storages.Persistent {
		scheme = NewBcryptScheme(bcrypt.DefaultCost)
	}

	sessions := NewSessionManager(storages.Sessions, utils.NewUUIDGenerator(), cfg.SessionMaxAge, logger)
	verifier := NewCredentialVerifier(storages.Users, scheme, logger)

	return &Services{
		Sessions:   sessions,
		Verifier:   verifier,
		LocalAuth:  NewLocalStrategy(verifier, storages.Users, sessions, logger),
		EmbedAuth:  NewSessionStrategy(verifier, sessions, logger),
		Capability: NewCapabilityService(cfg.CookieSecret, cfg.CookieMaxAge, logger),
		Cart:       NewCartService(sessions, logger),
		Products:   NewProductService(),
		Users:      NewUserService(storages.Users, scheme, validators.NewRequestValidator(), logger),
	}
}
