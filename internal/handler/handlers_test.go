// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/service"
)

func TestNewHandlers_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		services *service.Services
		cfg      *config.StructuredConfig
		wantErr  error
	}{
		{
			name:     "port only",
			services: &service.Services{},
			cfg:      &config.StructuredConfig{Port: 3000},
		},
		{
			name:     "explicit address",
			services: &service.Services{},
			cfg:      &config.StructuredConfig{Server: config.Server{HTTPAddress: "localhost:8080"}},
		},
		{
			name:    "no services",
			cfg:     &config.StructuredConfig{Port: 3000},
			wantErr: errNoHandlersAreCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(tt.services, tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, h)
			assert.NotNil(t, h.HTTP)
		})
	}
}
