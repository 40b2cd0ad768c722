package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-soulkey/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ResolutionService turns raw configuration entries holding reference tokens
// into typed overrides.
type ResolutionService interface {
	// Resolve runs one full pass over entries and returns the overrides of
	// every resolved entry with the pass counters. It never fails: entries
	// that cannot be resolved are simply absent from the set.
	Resolve(ctx context.Context, entries []models.RawEntry) (models.OverrideSet, models.PassSummary)

	// ResolveEntry drives a single entry through parse, remote lookup and
	// fallback.
	ResolveEntry(ctx context.Context, entry models.RawEntry) models.Resolution
}

// Recorder receives resolution metrics.
type Recorder interface {
	// ObserveFetch records one value service call. result is one of
	// FetchOK, FetchUnavailable or FetchBadResponse.
	ObserveFetch(result string, elapsed time.Duration)

	// CountResolution records the terminal outcome of a token entry, or
	// OutcomeMalformed for a token that failed to parse.
	CountResolution(outcome string)
}
