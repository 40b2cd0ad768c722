package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-soulkey/internal/app"
	"github.com/MKhiriev/go-soulkey/internal/config"
	"github.com/MKhiriev/go-soulkey/internal/logger"
	"github.com/MKhiriev/go-soulkey/internal/metrics"
	"github.com/MKhiriev/go-soulkey/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("soulkey")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := logger.New(os.Stderr, "soulkey", cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating logger")
	}
	log = leveled
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	application, err := app.NewApp(ctx, cfg, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	sources, err := app.LoadSources(cfg.Layers)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading configuration layers")
	}

	if _, err = application.Run(ctx, sources); err != nil {
		log.Fatal().Err(err).Msg("resolution run error")
	}

	decimal.MarshalJSONWithoutQuotes = true
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(sources.Effective()); err != nil {
		log.Fatal().Err(err).Msg("error writing effective configuration")
	}

	if cfg.Metrics.FilePath != "" {
		if err = metrics.WriteTextfile(cfg.Metrics.FilePath, registry); err != nil {
			log.Error().Err(err).Msg("error writing metrics")
		}
	}
}

func printBuildInfo() {
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
