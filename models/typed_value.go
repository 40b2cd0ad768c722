// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// ValueKind identifies which variant of [TypedValue] is populated.
type ValueKind int

const (
	// KindText is a verbatim string value.
	KindText ValueKind = iota + 1

	// KindInteger is a 64-bit signed integer value.
	KindInteger

	// KindDecimal is an arbitrary-precision decimal value.
	KindDecimal

	// KindBoolean is a boolean flag.
	KindBoolean
)

// String returns the type tag used by the value service for the kind.
func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "string"
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// TypedValue is the canonical representation a resolved configuration value
// is converted into before it is published to the override layer.
//
// Exactly one of the four variants is populated, selected by Kind. The zero
// value has no kind and is not a valid resolved value; use the constructors
// [Text], [Integer], [Decimal] and [Boolean].
type TypedValue struct {
	kind    ValueKind
	text    string
	integer int64
	decimal decimal.Decimal
	boolean bool
}

// Text returns a TypedValue holding s.
func Text(s string) TypedValue {
	return TypedValue{kind: KindText, text: s}
}

// Integer returns a TypedValue holding i.
func Integer(i int64) TypedValue {
	return TypedValue{kind: KindInteger, integer: i}
}

// Decimal returns a TypedValue holding d.
func Decimal(d decimal.Decimal) TypedValue {
	return TypedValue{kind: KindDecimal, decimal: d}
}

// Boolean returns a TypedValue holding b.
func Boolean(b bool) TypedValue {
	return TypedValue{kind: KindBoolean, boolean: b}
}

// Kind reports the populated variant.
func (v TypedValue) Kind() ValueKind {
	return v.kind
}

// IsZero reports whether v carries no variant at all.
func (v TypedValue) IsZero() bool {
	return v.kind == 0
}

// AsText returns the text variant and whether v is a text value.
func (v TypedValue) AsText() (string, bool) {
	return v.text, v.kind == KindText
}

// AsInteger returns the integer variant and whether v is an integer value.
func (v TypedValue) AsInteger() (int64, bool) {
	return v.integer, v.kind == KindInteger
}

// AsDecimal returns the decimal variant and whether v is a decimal value.
func (v TypedValue) AsDecimal() (decimal.Decimal, bool) {
	return v.decimal, v.kind == KindDecimal
}

// AsBoolean returns the boolean variant and whether v is a boolean value.
func (v TypedValue) AsBoolean() (bool, bool) {
	return v.boolean, v.kind == KindBoolean
}

// Native returns the populated variant as a plain Go value: string, int64,
// decimal.Decimal or bool. It returns nil for the zero TypedValue.
func (v TypedValue) Native() any {
	switch v.kind {
	case KindText:
		return v.text
	case KindInteger:
		return v.integer
	case KindDecimal:
		return v.decimal
	case KindBoolean:
		return v.boolean
	default:
		return nil
	}
}

// Equal reports whether v and other hold the same variant with the same
// value. Decimals compare numerically, so 1.50 equals 1.5.
func (v TypedValue) Equal(other TypedValue) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindText:
		return v.text == other.text
	case KindInteger:
		return v.integer == other.integer
	case KindDecimal:
		return v.decimal.Equal(other.decimal)
	case KindBoolean:
		return v.boolean == other.boolean
	default:
		return true
	}
}

// String renders the value the way it would appear in a properties file.
func (v TypedValue) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindInteger:
		return strconv.FormatInt(v.integer, 10)
	case KindDecimal:
		return v.decimal.String()
	case KindBoolean:
		return strconv.FormatBool(v.boolean)
	default:
		return ""
	}
}

// MarshalJSON encodes the populated variant. Decimals are written as JSON
// numbers with their exact digits.
func (v TypedValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindDecimal:
		return []byte(v.decimal.String()), nil
	case KindInteger:
		return []byte(strconv.FormatInt(v.integer, 10)), nil
	case KindBoolean:
		return []byte(strconv.FormatBool(v.boolean)), nil
	case KindText:
		return json.Marshal(v.text)
	default:
		return []byte("null"), nil
	}
}
