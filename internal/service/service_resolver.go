// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-soulkey/internal/adapter"
	"github.com/MKhiriev/go-soulkey/internal/convert"
	"github.com/MKhiriev/go-soulkey/internal/logger"
	"github.com/MKhiriev/go-soulkey/internal/store"
	"github.com/MKhiriev/go-soulkey/internal/token"
	"github.com/MKhiriev/go-soulkey/models"
	"github.com/google/uuid"
)

// Fetch results reported to [Recorder.ObserveFetch].
const (
	FetchOK          = "ok"
	FetchUnavailable = "unavailable"
	FetchBadResponse = "bad_response"
)

// OutcomeMalformed is reported to [Recorder.CountResolution] for a value
// that carries the token prefix but does not split into project and key.
const OutcomeMalformed = "malformed"

type resolver struct {
	fetcher  adapter.ValueFetcher
	defaults store.DefaultLookup
	recorder Recorder

	logger *logger.Logger
}

// NewResolver builds the resolution service. defaults, recorder and log may
// be nil, meaning an empty default store, no metrics and no logging.
func NewResolver(fetcher adapter.ValueFetcher, defaults store.DefaultLookup, recorder Recorder, log *logger.Logger) (ResolutionService, error) {
	if fetcher == nil {
		return nil, ErrNoValueFetcher
	}
	if defaults == nil {
		defaults = store.NewDefaultStore(nil)
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &resolver{
		fetcher:  fetcher,
		defaults: defaults,
		recorder: recorder,
		logger:   log,
	}, nil
}

// Resolve implements [ResolutionService]. Entries are processed in order,
// one remote call per token, and a later entry with the same name replaces
// an earlier one.
func (r *resolver) Resolve(ctx context.Context, entries []models.RawEntry) (models.OverrideSet, models.PassSummary) {
	summary := models.PassSummary{PassID: uuid.NewString()}
	log := r.logger.GetChildLogger()
	log.Logger = log.With().Str("pass_id", summary.PassID).Logger()
	ctx = log.WithContext(ctx)

	overrides := make(models.OverrideSet)
	for _, entry := range entries {
		res := r.resolveEntry(ctx, entry)
		summary.Add(res)
		if res.Resolved() {
			overrides[entry.Name] = res.Value
		}
	}

	log.Info().
		Int("scanned", summary.Scanned).
		Int("tokens", summary.Tokens).
		Int("remote", summary.Remote).
		Int("fallback", summary.Fallback).
		Int("unresolved", summary.Unresolved).
		Int("malformed", summary.Malformed).
		Int("degraded", summary.Degraded).
		Msg("resolution pass finished")

	return overrides, summary
}

// ResolveEntry implements [ResolutionService].
func (r *resolver) ResolveEntry(ctx context.Context, entry models.RawEntry) models.Resolution {
	return r.resolveEntry(r.logger.WithContext(ctx), entry)
}

// resolveEntry logs through the logger attached to ctx.
func (r *resolver) resolveEntry(ctx context.Context, entry models.RawEntry) models.Resolution {
	log := logger.FromContext(ctx)

	ref, err := token.Parse(entry.Value)
	if err != nil {
		res := models.Resolution{Entry: entry, Outcome: models.OutcomeSkipped}
		if errors.Is(err, token.ErrMalformedToken) {
			res.Cause = err
			r.recorder.CountResolution(OutcomeMalformed)
			log.Debug().Str("name", entry.Name).Err(err).Msg("malformed reference token left untouched")
		}
		return res
	}

	res := r.resolveToken(ctx, log, ref)
	res.Entry = entry
	r.recorder.CountResolution(string(res.Outcome))

	return res
}

func (r *resolver) resolveToken(ctx context.Context, log *logger.Logger, ref models.ReferenceToken) models.Resolution {
	start := time.Now()
	remote, err := r.fetcher.Fetch(ctx, ref)
	r.recorder.ObserveFetch(fetchResult(err), time.Since(start))

	if err == nil {
		value := convert.ConvertJSON(remote.Tag, remote.Raw)
		degraded := convert.Degraded(remote.Tag, value)
		log.Debug().
			Str("token", ref.String()).
			Str("type", remote.Tag).
			Str("kind", value.Kind().String()).
			Bool("degraded", degraded).
			Msg("resolved from value service")

		return models.Resolution{Token: ref, Outcome: models.OutcomeRemote, Value: value, Degraded: degraded}
	}

	if value, ok := r.defaults.Lookup(ref); ok {
		log.Warn().Err(err).Str("token", ref.String()).Msg("value service failed, using local default")
		return models.Resolution{Token: ref, Outcome: models.OutcomeFallback, Value: value, Cause: err}
	}

	log.Warn().Err(err).Str("token", ref.String()).Msg("value service failed and no local default, leaving token unresolved")

	return models.Resolution{Token: ref, Outcome: models.OutcomeUnresolved, Cause: err}
}

func fetchResult(err error) string {
	switch {
	case err == nil:
		return FetchOK
	case errors.Is(err, adapter.ErrRemoteUnavailable):
		return FetchUnavailable
	default:
		return FetchBadResponse
	}
}

type nopRecorder struct{}

func (nopRecorder) ObserveFetch(string, time.Duration) {}

func (nopRecorder) CountResolution(string) {}
