// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package convert maps a (type tag, JSON value) pair returned by the value
// service, or read from a defaults source, onto a [models.TypedValue].
//
// Conversion never fails: when a value does not fit its declared type it is
// kept as text. [Degraded] tells the caller when that happened.
package convert

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-soulkey/models"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// Type tags understood by the value service. Any other tag is treated as
// TagString.
const (
	TagString  = "string"
	TagInteger = "integer"
	TagDecimal = "decimal"
	TagBoolean = "boolean"
)

// Convert converts raw according to tag. The tag is matched
// case-insensitively.
func Convert(tag string, raw gjson.Result) models.TypedValue {
	switch strings.ToLower(tag) {
	case TagInteger:
		return toInteger(raw)
	case TagDecimal:
		return toDecimal(raw)
	case TagBoolean:
		return toBoolean(raw)
	default:
		return models.Text(textOf(raw))
	}
}

// ConvertJSON parses raw as a JSON document and converts it. Bytes that are
// not valid JSON are treated as a plain string.
func ConvertJSON(tag string, raw []byte) models.TypedValue {
	if !gjson.ValidBytes(raw) {
		return Convert(tag, gjson.Result{Type: gjson.String, Str: string(raw), Raw: strconv.Quote(string(raw))})
	}

	return Convert(tag, gjson.ParseBytes(raw))
}

// Degraded reports whether v is the textual fallback of a numeric tag.
func Degraded(tag string, v models.TypedValue) bool {
	switch strings.ToLower(tag) {
	case TagInteger, TagDecimal:
		return v.Kind() == models.KindText
	default:
		return false
	}
}

func toInteger(raw gjson.Result) models.TypedValue {
	if raw.Type == gjson.Number {
		if i, err := strconv.ParseInt(raw.Raw, 10, 64); err == nil {
			return models.Integer(i)
		}
	}

	text := textOf(raw)
	d, err := decimal.NewFromString(text)
	if err != nil {
		return models.Text(text)
	}

	whole := d.Truncate(0).BigInt()
	if !whole.IsInt64() {
		return models.Text(text)
	}

	return models.Integer(whole.Int64())
}

func toDecimal(raw gjson.Result) models.TypedValue {
	text := textOf(raw)
	d, err := decimal.NewFromString(text)
	if err != nil {
		return models.Text(text)
	}

	return models.Decimal(d)
}

func toBoolean(raw gjson.Result) models.TypedValue {
	switch raw.Type {
	case gjson.True:
		return models.Boolean(true)
	case gjson.False:
		return models.Boolean(false)
	default:
		return models.Boolean(strings.EqualFold(textOf(raw), "true"))
	}
}

// textOf returns the unquoted content of a JSON string and the raw JSON of
// anything else.
func textOf(raw gjson.Result) string {
	if raw.Type == gjson.String {
		return raw.Str
	}

	return raw.Raw
}
