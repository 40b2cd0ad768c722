// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to query the remote
// value service.
//
// The primary abstraction is [ValueFetcher], which decouples the resolution
// service from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPValueAdapter]).
//
// Error values defined in errors.go are mapped from transport failures and
// HTTP status codes so that callers can use [errors.Is] to tell an
// unreachable service ([ErrRemoteUnavailable]) from one that answered badly
// ([ErrRemoteBadResponse]).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-soulkey/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/value_fetcher_mock.go -package=mock

// ValueFetcher looks up a single reference token in the value service.
type ValueFetcher interface {
	// Fetch issues one lookup for token. A nil error means the service
	// returned a value with a type tag; any failure is reported as an error
	// wrapping [ErrRemoteUnavailable] or [ErrRemoteBadResponse].
	Fetch(ctx context.Context, token models.ReferenceToken) (models.RemoteValue, error)
}
