// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/service"
)

// sessionCleanupWorker periodically removes expired sessions. Expired
// sessions are already invisible to readers; this only reclaims storage.
type sessionCleanupWorker struct {
	sessions service.SessionManager
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionCleanupWorker(sessions service.SessionManager, interval time.Duration, logger *logger.Logger) Worker {
	return &sessionCleanupWorker{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

func (w *sessionCleanupWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Warn().Msg("session cleanup disabled: non-positive interval")
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("session cleanup worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("session cleanup worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *sessionCleanupWorker) sweep(ctx context.Context) {
	removed, err := w.sessions.Sweep(w.logger.WithContext(ctx))
	if err != nil {
		w.logger.Err(err).Msg("failed to sweep expired sessions")
		return
	}

	if removed > 0 {
		w.logger.Debug().Int64("removed", removed).Msg("expired sessions removed")
	}
}
