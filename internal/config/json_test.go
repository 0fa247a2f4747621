// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_Success(t *testing.T) {
	path := writeJSONFile(t, `{
		"app": {
			"cookie_secret": "c",
			"session_secret": "s",
			"session_max_age": "90m",
			"cookie_max_age": "45s",
			"log_level": "error",
			"version": "2.0.0"
		},
		"storage": {"db": {"dsn": "file:test.db"}},
		"server": {"http_address": ":8080", "request_timeout": "10s"},
		"workers": {"session_cleanup_interval": "30s"},
		"port": 5000
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "c", cfg.App.CookieSecret)
	assert.Equal(t, "s", cfg.App.SessionSecret)
	assert.Equal(t, 90*time.Minute, cfg.App.SessionMaxAge)
	assert.Equal(t, 45*time.Second, cfg.App.CookieMaxAge)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "file:test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Workers.SessionCleanupInterval)
	assert.Equal(t, 5000, cfg.Port)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeJSONFile(t, `{"app": {"session_max_age": 1000000000}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.App.SessionMaxAge)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeJSONFile(t, `{"app": `)

	_, err := parseJSON(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := writeJSONFile(t, `{"app": {"session_max_age": "soon"}}`)

	_, err := parseJSON(path)

	require.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	path := writeJSONFile(t, `{}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(time.Minute).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"1m0s"`, string(b))
}
