package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"value_service": {
			"base_url": "http://values:9000",
			"request_timeout": "2s"
		},
		"defaults": {
			"file": "defaults.yaml",
			"sqlite": "defaults.db"
		},
		"layers": {
			"files": ["application.yaml"],
			"env_prefix": "APP_",
			"properties": ["server.port=9090"]
		},
		"log": { "level": "debug" },
		"metrics": { "file": "soulkey.prom" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "http://values:9000", cfg.ValueService.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.ValueService.RequestTimeout)
	assert.Equal(t, "defaults.yaml", cfg.Defaults.FilePath)
	assert.Equal(t, "defaults.db", cfg.Defaults.SQLitePath)
	assert.Equal(t, []string{"application.yaml"}, cfg.Layers.Files)
	assert.Equal(t, "APP_", cfg.Layers.EnvPrefix)
	assert.Equal(t, []string{"server.port=9090"}, cfg.Layers.Properties)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "soulkey.prom", cfg.Metrics.FilePath)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "bad_duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"value_service": {"request_timeout": "not-a-duration"}}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, StructuredConfig{}, *cfg)
}
