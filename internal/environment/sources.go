package environment

import (
	"maps"
	"slices"

	"github.com/MKhiriev/go-soulkey/models"
)

// Sources is an ordered list of layers. Index 0 has the highest precedence.
// It is not safe for concurrent mutation.
type Sources struct {
	layers []Layer
}

// NewSources returns a list holding layers in the given order, highest
// precedence first.
func NewSources(layers ...Layer) *Sources {
	s := &Sources{}
	for _, l := range layers {
		s.AddLast(l)
	}

	return s
}

// AddFirst inserts l with the highest precedence. A layer with the same name
// is replaced.
func (s *Sources) AddFirst(l Layer) {
	s.Remove(l.Name())
	s.layers = slices.Insert(s.layers, 0, l)
}

// AddLast appends l with the lowest precedence. A layer with the same name
// is replaced.
func (s *Sources) AddLast(l Layer) {
	s.Remove(l.Name())
	s.layers = append(s.layers, l)
}

// Remove drops the layer called name and reports whether it existed.
func (s *Sources) Remove(name string) bool {
	i := s.index(name)
	if i < 0 {
		return false
	}
	s.layers = slices.Delete(s.layers, i, i+1)

	return true
}

// Layer returns the layer called name.
func (s *Sources) Layer(name string) (Layer, bool) {
	i := s.index(name)
	if i < 0 {
		return nil, false
	}

	return s.layers[i], true
}

// Names returns the layer names in precedence order.
func (s *Sources) Names() []string {
	names := make([]string, len(s.layers))
	for i, l := range s.layers {
		names[i] = l.Name()
	}

	return names
}

// Len returns the number of layers.
func (s *Sources) Len() int {
	return len(s.layers)
}

// Get returns the value of key from the first layer holding it.
func (s *Sources) Get(key string) (any, bool) {
	return s.get(key, "")
}

// Effective flattens all layers into the values the application observes.
func (s *Sources) Effective() map[string]any {
	out := make(map[string]any)
	for _, key := range s.keys("") {
		if v, ok := s.get(key, ""); ok {
			out[key] = v
		}
	}

	return out
}

// Entries returns the string-valued entries as the host configuration holds
// them before resolution, sorted by name. The resolved layer is ignored, so
// a later pass sees the original tokens again. Only string values can carry
// a reference token.
func (s *Sources) Entries() []models.RawEntry {
	var entries []models.RawEntry
	for _, key := range s.keys(ResolvedLayerName) {
		v, ok := s.get(key, ResolvedLayerName)
		if !ok {
			continue
		}
		if str, isString := v.(string); isString {
			entries = append(entries, models.RawEntry{Name: key, Value: str})
		}
	}

	return entries
}

// get looks key up in every layer except the one called skip.
func (s *Sources) get(key, skip string) (any, bool) {
	for _, l := range s.layers {
		if skip != "" && l.Name() == skip {
			continue
		}
		if v, ok := l.Get(key); ok {
			return v, true
		}
	}

	return nil, false
}

func (s *Sources) keys(skip string) []string {
	set := make(map[string]struct{})
	for _, l := range s.layers {
		if skip != "" && l.Name() == skip {
			continue
		}
		for _, key := range l.Keys() {
			set[key] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(set))
}

func (s *Sources) index(name string) int {
	return slices.IndexFunc(s.layers, func(l Layer) bool { return l.Name() == name })
}
