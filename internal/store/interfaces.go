package store

import (
	"github.com/MKhiriev/go-soulkey/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/default_lookup_mock.go -package=mock

// DefaultLookup is the read side of the local default store consulted when
// the value service cannot answer.
type DefaultLookup interface {
	// Lookup returns the default registered for token's composite key and
	// whether one exists.
	Lookup(token models.ReferenceToken) (models.TypedValue, bool)
}
