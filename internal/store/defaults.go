// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the local default store used as the fallback source of
// the resolver, together with loaders that build it from a YAML/JSON file or
// a SQLite table.
package store

import (
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/go-soulkey/internal/token"
	"github.com/MKhiriev/go-soulkey/models"
)

// DefaultStore is an immutable map of "{projectId}.{envKey}" composite keys
// to typed default values. It is safe for concurrent lookups.
type DefaultStore struct {
	values map[string]models.TypedValue
}

// NewDefaultStore builds a store from values. The map is copied, so later
// changes by the caller are not observed. A nil or empty map yields a store
// where every lookup is absent.
func NewDefaultStore(values map[string]models.TypedValue) *DefaultStore {
	return &DefaultStore{values: maps.Clone(values)}
}

// Lookup implements [DefaultLookup].
func (s *DefaultStore) Lookup(token models.ReferenceToken) (models.TypedValue, bool) {
	v, ok := s.values[token.CompositeKey()]
	return v, ok
}

// Len returns the number of defaults held.
func (s *DefaultStore) Len() int {
	return len(s.values)
}

// Keys returns the composite keys in sorted order.
func (s *DefaultStore) Keys() []string {
	return slices.Sorted(maps.Keys(s.values))
}

// checkAddressable fails for a default no reference token can select: the
// token text must parse back to ref, so the project id cannot contain a dot.
func checkAddressable(ref models.ReferenceToken) error {
	parsed, err := token.Parse(ref.String())
	if err != nil || parsed != ref {
		return fmt.Errorf("%w: %q is not reachable from token %s", ErrInvalidDefault, ref.CompositeKey(), ref)
	}

	return nil
}
