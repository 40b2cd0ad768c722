// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"SOULKEY_CONFIG": "/path/to/config.json",

		"SOULKEY_SERVICE_BASE_URL":        "http://values:9000",
		"SOULKEY_SERVICE_REQUEST_TIMEOUT": "5s",

		"SOULKEY_DEFAULTS_FILE":   "/etc/soulkey/defaults.yaml",
		"SOULKEY_DEFAULTS_SQLITE": "/var/lib/soulkey/defaults.db",

		"SOULKEY_LAYERS_FILES":      "app.yaml,base.json",
		"SOULKEY_LAYERS_ENV_PREFIX": "APP_",
		"SOULKEY_LAYERS_PROPERTIES": "a=1,b=soulkey.p.k",

		"SOULKEY_LOG_LEVEL":    "debug",
		"SOULKEY_METRICS_FILE": "/var/lib/node_exporter/soulkey.prom",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "http://values:9000", cfg.ValueService.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.ValueService.RequestTimeout)

	assert.Equal(t, "/etc/soulkey/defaults.yaml", cfg.Defaults.FilePath)
	assert.Equal(t, "/var/lib/soulkey/defaults.db", cfg.Defaults.SQLitePath)

	assert.Equal(t, []string{"app.yaml", "base.json"}, cfg.Layers.Files)
	assert.Equal(t, "APP_", cfg.Layers.EnvPrefix)
	assert.Equal(t, []string{"a=1", "b=soulkey.p.k"}, cfg.Layers.Properties)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/lib/node_exporter/soulkey.prom", cfg.Metrics.FilePath)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"SOULKEY_SERVICE_BASE_URL": "http://values:9000",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "http://values:9000", cfg.ValueService.BaseURL)
	assert.Zero(t, cfg.ValueService.RequestTimeout)
	assert.Equal(t, Defaults{}, cfg.Defaults)
	assert.Equal(t, Layers{}, cfg.Layers)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"SOULKEY_SERVICE_REQUEST_TIMEOUT": "invalid_duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"milliseconds", "250ms", 250 * time.Millisecond},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1m30s", 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{
				"SOULKEY_SERVICE_REQUEST_TIMEOUT": tt.envValue,
			})

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.ValueService.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"SOULKEY_CONFIG",

		"SOULKEY_SERVICE_BASE_URL",
		"SOULKEY_SERVICE_REQUEST_TIMEOUT",

		"SOULKEY_DEFAULTS_FILE",
		"SOULKEY_DEFAULTS_SQLITE",

		"SOULKEY_LAYERS_FILES",
		"SOULKEY_LAYERS_ENV_PREFIX",
		"SOULKEY_LAYERS_PROPERTIES",

		"SOULKEY_LOG_LEVEL",
		"SOULKEY_METRICS_FILE",
	}
	for _, k := range keys {
		if old, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
	}
}
