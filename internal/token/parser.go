// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package token recognizes reference tokens of the form
// soulkey.{projectId}.{envKey} in configuration values.
package token

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-soulkey/models"
)

var (
	// ErrNotAToken is returned for values that do not start with
	// [models.TokenPrefix].
	ErrNotAToken = errors.New("not a reference token")

	// ErrMalformedToken is returned for values that carry the prefix but
	// cannot be split into a non-empty project id and env key. It matches
	// ErrNotAToken under errors.Is.
	ErrMalformedToken = fmt.Errorf("%w: malformed", ErrNotAToken)
)

// IsCandidate reports whether raw carries the reference prefix.
func IsCandidate(raw string) bool {
	return strings.HasPrefix(raw, models.TokenPrefix)
}

// Parse decomposes raw into a [models.ReferenceToken].
//
// The remainder after the prefix is split on its first '.'; everything after
// it is the env key, which may itself contain dots.
func Parse(raw string) (models.ReferenceToken, error) {
	if !IsCandidate(raw) {
		return models.ReferenceToken{}, ErrNotAToken
	}

	remainder := raw[len(models.TokenPrefix):]
	dot := strings.IndexByte(remainder, '.')
	if dot <= 0 || dot == len(remainder)-1 {
		return models.ReferenceToken{}, fmt.Errorf("%w: %q", ErrMalformedToken, raw)
	}

	return models.ReferenceToken{
		ProjectID: remainder[:dot],
		EnvKey:    remainder[dot+1:],
	}, nil
}
