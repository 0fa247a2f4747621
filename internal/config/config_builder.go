// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Development defaults. Secrets must be overridden outside local runs.
const (
	DefaultPort                   = 3000
	DefaultCookieSecret           = "dev-cookie-secret"
	DefaultSessionSecret          = "dev-session-secret"
	DefaultSessionMaxAge          = time.Hour
	DefaultCookieMaxAge           = time.Minute
	DefaultRequestTimeout         = 30 * time.Second
	DefaultSessionCleanupInterval = time.Minute
	DefaultLogLevel               = "debug"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs in insertion order: a field is taken
// from the first config where it is non-zero.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := parseEnv()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			CookieSecret:  DefaultCookieSecret,
			SessionSecret: DefaultSessionSecret,
			SessionMaxAge: DefaultSessionMaxAge,
			CookieMaxAge:  DefaultCookieMaxAge,
			LogLevel:      DefaultLogLevel,
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			SessionCleanupInterval: DefaultSessionCleanupInterval,
		},
		Port: DefaultPort,
	}
}

// UsesDefaultSecrets reports whether either signing secret still holds its
// development default.
func (cfg *StructuredConfig) UsesDefaultSecrets() bool {
	return cfg.App.CookieSecret == DefaultCookieSecret || cfg.App.SessionSecret == DefaultSessionSecret
}
