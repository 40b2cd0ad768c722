// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sort"

// OverrideSet maps configuration keys to their resolved values. It is built
// during one resolution pass and consumed once by the override installer.
type OverrideSet map[string]TypedValue

// Len returns the number of overrides.
func (o OverrideSet) Len() int {
	return len(o)
}

// Get returns the override for name.
func (o OverrideSet) Get(name string) (TypedValue, bool) {
	v, ok := o[name]
	return v, ok
}

// Names returns the keys in sorted order.
func (o OverrideSet) Names() []string {
	names := make([]string, 0, len(o))
	for name := range o {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Native converts every value with [TypedValue.Native] so the set can be
// handed to a generic configuration layer.
func (o OverrideSet) Native() map[string]any {
	m := make(map[string]any, len(o))
	for name, v := range o {
		m[name] = v.Native()
	}

	return m
}

// Equal reports whether both sets hold the same keys with equal values.
func (o OverrideSet) Equal(other OverrideSet) bool {
	if len(o) != len(other) {
		return false
	}
	for name, v := range o {
		w, ok := other[name]
		if !ok || !v.Equal(w) {
			return false
		}
	}

	return true
}
