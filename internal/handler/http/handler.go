// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// signer signs and verifies the session identifier cookie.
	signer         *utils.Signer
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewRequestValidator(),
		signer:         utils.NewSigner(cfg.App.SessionSecret),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
