package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration is incomplete or invalid.
var (
	// ErrInvalidServiceConfigs indicates invalid value service settings
	// (for example, an empty base URL or a negative request timeout).
	ErrInvalidServiceConfigs = errors.New("invalid value service configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
