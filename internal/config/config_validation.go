// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] can be used to
// start the server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.CookieSecret == "" || cfg.App.SessionSecret == "" {
		return fmt.Errorf("%w: cookie and session secrets are required", ErrInvalidAppConfigs)
	}

	if cfg.App.SessionMaxAge <= 0 || cfg.App.CookieMaxAge <= 0 {
		return fmt.Errorf("%w: session and cookie max age must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" && (cfg.Port < 1 || cfg.Port > 65535) {
		return fmt.Errorf("%w: port %d is out of range", ErrInvalidServerConfigs, cfg.Port)
	}

	if cfg.Workers.SessionCleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
