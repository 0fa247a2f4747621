// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAppConfigs indicates missing secrets or non-positive lifetimes.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates that no listen address can be derived.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive cleanup interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
