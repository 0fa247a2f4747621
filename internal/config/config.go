// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container of the server.
// It is populated by merging values from environment variables, command-line
// flags, an optional JSON file and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds cookie/session secrets, lifetimes and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the persistence backend. An empty DSN
	// selects the in-memory user directory and session store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Port is the listen port used when Server.HTTPAddress is empty.
	// Env: PORT
	Port int `env:"PORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// CookieSecret signs the capability cookie issued by the root endpoint.
	// Env: APP_COOKIE_SECRET
	CookieSecret string `env:"COOKIE_SECRET"`

	// SessionSecret signs the session identifier cookie.
	// Env: APP_SESSION_SECRET
	SessionSecret string `env:"SESSION_SECRET"`

	// SessionMaxAge is the session lifetime counted from the last write.
	// Env: APP_SESSION_MAX_AGE
	SessionMaxAge time.Duration `env:"SESSION_MAX_AGE"`

	// CookieMaxAge is the lifetime of the signed capability cookie.
	// Env: APP_COOKIE_MAX_AGE
	CookieMaxAge time.Duration `env:"COOKIE_MAX_AGE"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is reported in the startup log.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects and configures the backend:
	//   - empty                         → in-memory directory and sessions;
	//   - postgres:// or postgresql://  → PostgreSQL through pgx;
	//   - anything else                 → SQLite file (e.g. "file:auth.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format. Overrides Port.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionCleanupInterval is the period of the expired-session sweep.
	// Env: WORKERS_SESSION_CLEANUP_INTERVAL
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL"`
}

// ListenAddress returns Server.HTTPAddress when set, ":<Port>" otherwise.
func (cfg *StructuredConfig) ListenAddress() string {
	if cfg.Server.HTTPAddress != "" {
		return cfg.Server.HTTPAddress
	}

	return ":" + strconv.Itoa(cfg.Port)
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from the environment, the process arguments, the optional JSON file and
// the defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
