package app

import (
	"context"
	"fmt"
	"maps"

	"github.com/MKhiriev/go-soulkey/internal/adapter"
	"github.com/MKhiriev/go-soulkey/internal/config"
	"github.com/MKhiriev/go-soulkey/internal/environment"
	"github.com/MKhiriev/go-soulkey/internal/logger"
	"github.com/MKhiriev/go-soulkey/internal/metrics"
	"github.com/MKhiriev/go-soulkey/internal/service"
	"github.com/MKhiriev/go-soulkey/internal/store"
	"github.com/MKhiriev/go-soulkey/models"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	resolver service.ResolutionService

	logger *logger.Logger
}

// NewApp builds the resolver described by cfg. Metrics are registered with
// reg when it is not nil.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, reg prometheus.Registerer, log *logger.Logger) (*App, error) {
	fetcher, err := adapter.NewHTTPValueAdapter(cfg.ValueService, log)
	if err != nil {
		return nil, fmt.Errorf("create value service adapter: %w", err)
	}

	defaults, err := LoadDefaults(ctx, cfg.Defaults, log)
	if err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	var recorder service.Recorder
	if reg != nil {
		rec, err := metrics.NewRecorder(reg)
		if err != nil {
			return nil, fmt.Errorf("create metrics recorder: %w", err)
		}
		recorder = rec
	}

	resolver, err := service.NewResolver(fetcher, defaults, recorder, log)
	if err != nil {
		return nil, fmt.Errorf("create resolver: %w", err)
	}

	return &App{resolver: resolver, logger: log}, nil
}

// LoadDefaults builds the local default store from the SQLite database and
// the defaults file of cfg. File entries win over database rows with the
// same key. With neither configured the store is empty.
func LoadDefaults(ctx context.Context, cfg config.Defaults, log *logger.Logger) (*store.DefaultStore, error) {
	values := make(map[string]models.TypedValue)

	if cfg.SQLitePath != "" {
		fromDB, err := store.OpenSQLiteDefaults(ctx, cfg.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		maps.Copy(values, fromDB)
	}

	if cfg.FilePath != "" {
		fromFile, err := store.LoadDefaultsFile(cfg.FilePath)
		if err != nil {
			return nil, err
		}
		maps.Copy(values, fromFile)
	}

	defaults := store.NewDefaultStore(values)
	log.Debug().Int("count", defaults.Len()).Msg("local defaults loaded")

	return defaults, nil
}

// LoadSources builds the host configuration from cfg, highest precedence
// first: properties, then files in the given order, then the environment
// layer.
func LoadSources(cfg config.Layers) (*environment.Sources, error) {
	sources := environment.NewSources()

	if len(cfg.Properties) > 0 {
		layer, err := environment.NewPropertiesLayer(cfg.Properties)
		if err != nil {
			return nil, err
		}
		sources.AddLast(layer)
	}

	for _, path := range cfg.Files {
		layer, err := environment.NewFileLayer(path)
		if err != nil {
			return nil, err
		}
		sources.AddLast(layer)
	}

	if cfg.EnvPrefix != "" {
		layer, err := environment.NewEnvLayer(cfg.EnvPrefix)
		if err != nil {
			return nil, err
		}
		sources.AddLast(layer)
	}

	return sources, nil
}

// Run resolves every reference token visible in sources and installs the
// result as their highest-precedence layer. It returns the installed
// overrides, which may be empty.
func (a *App) Run(ctx context.Context, sources *environment.Sources) (models.OverrideSet, error) {
	if sources == nil {
		return nil, ErrNoSources
	}

	overrides, summary := a.resolver.Resolve(ctx, sources.Entries())
	if environment.InstallOverrides(sources, overrides) {
		a.logger.Debug().
			Str("pass_id", summary.PassID).
			Int("overrides", overrides.Len()).
			Strs("layers", sources.Names()).
			Msg("resolved layer installed")
	}

	return overrides, nil
}
