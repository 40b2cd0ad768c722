package environment

import (
	"maps"

	"github.com/MKhiriev/go-soulkey/models"
)

// ResolvedLayerName names the layer holding resolved reference tokens.
const ResolvedLayerName = "soulkey-resolved"

// overrideLayer exposes an override set as a layer. Values are the typed
// natives of [models.TypedValue.Native], keyed by the exact entry name.
type overrideLayer struct {
	values models.OverrideSet
}

func (l *overrideLayer) Name() string {
	return ResolvedLayerName
}

func (l *overrideLayer) Keys() []string {
	return l.values.Names()
}

func (l *overrideLayer) Get(key string) (any, bool) {
	v, ok := l.values.Get(key)
	if !ok {
		return nil, false
	}

	return v.Native(), true
}

// InstallOverrides publishes overrides as the highest-precedence layer of
// src. An empty set installs nothing and reports false. Installing again
// replaces the previous resolved layer.
func InstallOverrides(src *Sources, overrides models.OverrideSet) bool {
	if src == nil || overrides.Len() == 0 {
		return false
	}

	src.AddFirst(&overrideLayer{values: maps.Clone(overrides)})

	return true
}
