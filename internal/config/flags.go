package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the command-line flags in args.
//
// Flags:
//
//	-service-url value service base URL
//	-request-timeout per-lookup timeout (e.g. "5s"), 0 keeps the transport default
//	-defaults defaults file (YAML or JSON)
//	-defaults-sqlite defaults SQLite database
//	-env-prefix environment layer prefix
//	-set key=value property, repeatable
//	-log-level zerolog level
//	-metrics-file Prometheus textfile destination
//	-c/-config json file path with settings
//
// Remaining positional arguments are configuration files loaded as layers.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("soulkey", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		serviceURL     string
		requestTimeout time.Duration
		defaultsFile   string
		defaultsSQLite string
		envPrefix      string
		logLevel       string
		metricsFile    string
		jsonConfigPath string
		properties     []string
	)

	fs.StringVar(&serviceURL, "service-url", "", "Value service base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Value service request timeout (e.g., 5s)")
	fs.StringVar(&defaultsFile, "defaults", "", "Defaults file (YAML or JSON)")
	fs.StringVar(&defaultsSQLite, "defaults-sqlite", "", "Defaults SQLite database")
	fs.StringVar(&envPrefix, "env-prefix", "", "Environment layer prefix")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&metricsFile, "metrics-file", "", "Prometheus textfile destination")
	fs.Func("set", "Property key=value (repeatable)", func(v string) error {
		properties = append(properties, v)
		return nil
	})
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		ValueService: ValueService{
			BaseURL:        serviceURL,
			RequestTimeout: requestTimeout,
		},
		Defaults: Defaults{
			FilePath:   defaultsFile,
			SQLitePath: defaultsSQLite,
		},
		Layers: Layers{
			Files:      fs.Args(),
			EnvPrefix:  envPrefix,
			Properties: properties,
		},
		Log:          Log{Level: logLevel},
		Metrics:      Metrics{FilePath: metricsFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}
