// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// DefaultServiceURL is the value service address used when nothing else is
// configured.
const DefaultServiceURL = "http://localhost:8080"

// StructuredConfig is the top-level configuration container for the soulkey
// resolver. It is populated by merging built-in defaults, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// ValueService holds the address and timeout of the remote value
	// service.
	ValueService ValueService `envPrefix:"SOULKEY_SERVICE_"`

	// Defaults points at the local fallback values.
	Defaults Defaults `envPrefix:"SOULKEY_DEFAULTS_"`

	// Layers lists the host configuration sources the resolver reads.
	Layers Layers `envPrefix:"SOULKEY_LAYERS_"`

	// Log holds logging settings.
	Log Log `envPrefix:"SOULKEY_LOG_"`

	// Metrics holds metrics export settings.
	Metrics Metrics `envPrefix:"SOULKEY_METRICS_"`

	// JSONFilePath is the optional path to a JSON settings file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the SOULKEY_CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"SOULKEY_CONFIG"`
}

// ValueService holds connection settings for the remote value service.
type ValueService struct {
	// BaseURL is the scheme and host of the value service
	// (e.g. "http://localhost:8080"). A missing scheme defaults to http.
	// Env: SOULKEY_SERVICE_BASE_URL
	BaseURL string `env:"BASE_URL" validate:"required"`

	// RequestTimeout bounds a single lookup. Zero keeps the transport
	// default, which never times out.
	// Env: SOULKEY_SERVICE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`
}

// Defaults locates the local default store. Both sources may be set; file
// entries win over database rows with the same key.
type Defaults struct {
	// FilePath is a YAML or JSON defaults document.
	// Env: SOULKEY_DEFAULTS_FILE
	FilePath string `env:"FILE"`

	// SQLitePath is a SQLite database holding a soulkey_defaults table.
	// Env: SOULKEY_DEFAULTS_SQLITE
	SQLitePath string `env:"SQLITE"`
}

// Layers describes the host configuration the resolver runs against.
type Layers struct {
	// Files are configuration files loaded as layers, first file highest
	// precedence.
	// Env: SOULKEY_LAYERS_FILES (comma separated)
	Files []string `env:"FILES" envSeparator:","`

	// EnvPrefix enables an environment-variable layer holding every
	// variable with this prefix. Empty disables the layer.
	// Env: SOULKEY_LAYERS_ENV_PREFIX
	EnvPrefix string `env:"ENV_PREFIX"`

	// Properties are key=value pairs loaded as an in-memory layer above
	// every file.
	// Env: SOULKEY_LAYERS_PROPERTIES (comma separated)
	Properties []string `env:"PROPERTIES" envSeparator:","`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: SOULKEY_LOG_LEVEL
	Level string `env:"LEVEL" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

// Metrics holds metrics export settings.
type Metrics struct {
	// FilePath receives the Prometheus text exposition after the pass.
	// Empty disables the export.
	// Env: SOULKEY_METRICS_FILE
	FilePath string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (args, without the program name)
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		ValueService: ValueService{BaseURL: DefaultServiceURL},
		Log:          Log{Level: "info"},
	}
}
