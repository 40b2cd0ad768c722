// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// TokenPrefix is the literal prefix that marks a configuration value as a
// reference to the value service.
const TokenPrefix = "soulkey."

// RawEntry is a configuration entry as seen by the host configuration
// framework before resolution.
type RawEntry struct {
	// Name is the configuration key used by the rest of the application.
	Name string

	// Value is the literal string, which may or may not be a reference token.
	Value string
}

// ReferenceToken is the decomposition of a value of the form
// soulkey.{projectId}.{envKey}. Both fields are non-empty.
type ReferenceToken struct {
	ProjectID string
	EnvKey    string
}

// CompositeKey returns "{projectId}.{envKey}", the key used by the local
// default store.
func (t ReferenceToken) CompositeKey() string {
	return t.ProjectID + "." + t.EnvKey
}

// String renders the token in its configuration-file form.
func (t ReferenceToken) String() string {
	return TokenPrefix + t.CompositeKey()
}

// RemoteValue is a successful answer of the value service: the lowercased
// type tag and the raw JSON of the "value" field.
type RemoteValue struct {
	Tag string
	Raw json.RawMessage
}
