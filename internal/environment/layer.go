// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package environment is the host configuration framework the resolver runs
// against: an ordered list of named layers where the first layer holding a
// key decides its value.
//
// Layers are backed by koanf. Keys are flattened with "." as delimiter, so a
// YAML document
//
//	db:
//	  url: soulkey.proj1.DB_URL
//
// exposes the key "db.url".
package environment

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const delim = "."

// ErrUnsupportedFormat is returned by NewFileLayer for a file extension it
// has no parser for.
var ErrUnsupportedFormat = errors.New("unsupported configuration file format")

// Layer is one named configuration source.
type Layer interface {
	// Name identifies the layer inside a [Sources] list.
	Name() string

	// Keys returns the flattened keys holding a value, sorted.
	Keys() []string

	// Get returns the value stored under key.
	Get(key string) (any, bool)
}

type koanfLayer struct {
	name string
	k    *koanf.Koanf
}

func (l *koanfLayer) Name() string {
	return l.name
}

func (l *koanfLayer) Keys() []string {
	return l.k.Keys()
}

func (l *koanfLayer) Get(key string) (any, bool) {
	if !l.k.Exists(key) {
		return nil, false
	}

	return l.k.Get(key), true
}

// NewFileLayer loads a YAML (.yaml, .yml) or JSON (.json) file. The layer is
// named "file:" followed by path.
func NewFileLayer(path string) (Layer, error) {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	k := koanf.New(delim)
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("error loading configuration file %s: %w", path, err)
	}

	return &koanfLayer{name: "file:" + path, k: k}, nil
}

// NewEnvLayer loads every process environment variable starting with prefix.
// The prefix is stripped, the rest is lowercased and "__" becomes the key
// delimiter, so APP_DB__URL is exposed as "db.url".
func NewEnvLayer(prefix string) (Layer, error) {
	return newEnvLayer(prefix, nil)
}

func newEnvLayer(prefix string, environ func() []string) (Layer, error) {
	if prefix == "" {
		return nil, errors.New("empty environment prefix")
	}

	k := koanf.New(delim)
	err := k.Load(env.Provider(delim, env.Opt{
		Prefix:      prefix,
		EnvironFunc: environ,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, prefix))
			return strings.ReplaceAll(key, "__", delim), value
		},
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("error loading environment with prefix %s: %w", prefix, err)
	}

	return &koanfLayer{name: "env:" + prefix, k: k}, nil
}

// NewMapLayer builds an in-memory layer named name. Keys of values may be
// dotted paths.
func NewMapLayer(name string, values map[string]any) (Layer, error) {
	k := koanf.New(delim)
	if err := k.Load(confmap.Provider(values, delim), nil); err != nil {
		return nil, fmt.Errorf("error loading layer %s: %w", name, err)
	}

	return &koanfLayer{name: name, k: k}, nil
}

// PropertiesLayerName names the layer built from key=value properties.
const PropertiesLayerName = "properties"

// NewPropertiesLayer builds an in-memory layer from "key=value" pairs. A
// later pair overrides an earlier one with the same key.
func NewPropertiesLayer(props []string) (Layer, error) {
	values := make(map[string]any, len(props))
	for _, p := range props {
		key, value, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid property %q: want key=value", p)
		}
		values[key] = value
	}

	return NewMapLayer(PropertiesLayerName, values)
}
