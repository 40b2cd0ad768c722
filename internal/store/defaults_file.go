package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-soulkey/internal/convert"
	"github.com/MKhiriev/go-soulkey/models"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// defaultsDocument is the layout of a defaults file:
//
//	defaults:
//	  - project: proj1
//	    key: THRESHOLD2
//	    type: decimal
//	    value: 12.345
type defaultsDocument struct {
	Defaults []defaultEntry `yaml:"defaults"`
}

type defaultEntry struct {
	Project string    `yaml:"project"`
	Key     string    `yaml:"key"`
	Type    string    `yaml:"type"`
	Value   yaml.Node `yaml:"value"`
}

// LoadDefaultsFile reads a YAML or JSON defaults document from path and
// converts every entry with the same type rules applied to remote values.
func LoadDefaultsFile(path string) (map[string]models.TypedValue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingDefaults, err)
	}

	return ParseDefaults(data)
}

// ParseDefaults decodes a defaults document held in memory.
func ParseDefaults(data []byte) (map[string]models.TypedValue, error) {
	var doc defaultsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingDefaults, err)
	}

	values := make(map[string]models.TypedValue, len(doc.Defaults))
	for i, e := range doc.Defaults {
		if e.Project == "" || e.Key == "" || e.Type == "" {
			return nil, fmt.Errorf("%w: entry %d needs project, key and type", ErrInvalidDefault, i)
		}

		raw, err := nodeJSON(&e.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d (%s.%s): %w", ErrInvalidDefault, i, e.Project, e.Key, err)
		}

		token := models.ReferenceToken{ProjectID: e.Project, EnvKey: e.Key}
		if err = checkAddressable(token); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if _, dup := values[token.CompositeKey()]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDefault, token.CompositeKey())
		}
		values[token.CompositeKey()] = convert.ConvertJSON(e.Type, raw)
	}

	return values, nil
}

// nodeJSON renders a YAML value as JSON. Numeric scalars keep their literal
// digits so decimals are not rounded through float64.
func nodeJSON(n *yaml.Node) ([]byte, error) {
	if n.Kind == 0 || n.Tag == "!!null" {
		return nil, fmt.Errorf("value is missing")
	}

	if n.Kind == yaml.ScalarNode && (n.Tag == "!!int" || n.Tag == "!!float") {
		literal := strings.TrimPrefix(n.Value, "+")
		if gjson.Valid(literal) {
			return []byte(literal), nil
		}
	}

	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}

	return json.Marshal(v)
}
