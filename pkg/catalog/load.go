package catalog

import (
	"encoding/json"
	"sort"

	"github.com/rendis/uiwire/pkg/protocol"
)

// File is the on-disk catalog definition document a relay ships for
// custom component sets:
//
//	{
//	  "catalogId": "acme-dashboard",
//	  "components": {
//	    "StatCard":  {"required": ["title", "value"]},
//	    "Sparkline": {"required": ["points"]}
//	  }
//	}
type File struct {
	CatalogID  string                   `json:"catalogId"`
	Components map[string]FileComponent `json:"components"`
}

// FileComponent is one kind entry inside a catalog File.
type FileComponent struct {
	Required []string `json:"required"`
	Legacy   []string `json:"legacy,omitempty"`
}

// LoadDefinitions parses a catalog definition document and registers
// every kind it declares. Registration stops at the first conflict;
// the count of kinds registered before the failure is returned.
func (c *Catalog) LoadDefinitions(data []byte) (int, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return 0, protocol.NewError(protocol.ErrCodeValidation, "catalog document is not valid JSON").WithCause(err)
	}
	if f.CatalogID == "" {
		return 0, protocol.NewError(protocol.ErrCodeValidation, "catalog document has no catalogId")
	}

	// Sorted for a deterministic registration order, so a conflict
	// always fails on the same kind.
	registered := 0
	for _, kind := range sortedKeys(f.Components) {
		entry := f.Components[kind]
		err := c.Register(Definition{Kind: kind, Required: entry.Required, Legacy: entry.Legacy})
		if err != nil {
			return registered, err
		}
		registered++
	}
	return registered, nil
}

// Load builds a standard catalog extended with the kinds declared in a
// catalog definition document.
func Load(data []byte) (*Catalog, error) {
	c := NewStandard()
	if _, err := c.LoadDefinitions(data); err != nil {
		return nil, err
	}
	return c, nil
}

func sortedKeys(m map[string]FileComponent) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
