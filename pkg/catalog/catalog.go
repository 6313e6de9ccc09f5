package catalog

import (
	"sort"
	"sync"

	"github.com/rendis/uiwire/pkg/protocol"
)

// Definition describes one component kind: the fields a well-formed
// instance must carry. Legacy holds the 0.1 required set for the kinds
// whose fields were renamed between revisions; empty means both
// revisions share Required.
type Definition struct {
	Kind     string   `json:"kind"`
	Required []string `json:"required"`
	Legacy   []string `json:"legacy,omitempty"`
}

// RequiredFor resolves the required-field list for a protocol revision.
func (d Definition) RequiredFor(v protocol.Version) []string {
	if v.Normalize() == protocol.Version01 && len(d.Legacy) > 0 {
		return d.Legacy
	}
	return d.Required
}

// Catalog is a thread-safe registry of component kind definitions.
type Catalog struct {
	mu    sync.RWMutex
	kinds map[string]Definition
}

// New creates an empty Catalog.
func New() *Catalog {
	return &Catalog{
		kinds: make(map[string]Definition),
	}
}

// NewStandard creates a Catalog pre-seeded with the standard component
// kinds. The returned catalog is caller-owned; custom kinds may be
// registered on top.
func NewStandard() *Catalog {
	c := New()
	for _, def := range standardDefinitions {
		c.kinds[def.Kind] = def
	}
	return c
}

var (
	standardOnce sync.Once
	standard     *Catalog
)

// Standard returns the shared standard catalog used when a caller
// supplies none. It is safe for concurrent use; callers that want to
// register custom kinds should derive their own via NewStandard.
func Standard() *Catalog {
	standardOnce.Do(func() {
		standard = NewStandard()
	})
	return standard
}

// Register adds a component kind definition. Returns an error on a
// duplicate or empty kind.
func (c *Catalog) Register(def Definition) error {
	if def.Kind == "" {
		return protocol.NewError(protocol.ErrCodeValidation, "component kind is empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.kinds[def.Kind]; exists {
		return protocol.NewErrorf(protocol.ErrCodeConflict, "component kind %q already registered", def.Kind)
	}

	c.kinds[def.Kind] = def
	return nil
}

// RequiredFields returns the required-field list for a kind under the
// given protocol revision. ok is false for unknown kinds.
func (c *Catalog) RequiredFields(kind string, v protocol.Version) (fields []string, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	def, ok := c.kinds[kind]
	if !ok {
		return nil, false
	}
	return def.RequiredFor(v), true
}

// Has checks if a kind is registered.
func (c *Catalog) Has(kind string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.kinds[kind]
	return ok
}

// Kinds returns all registered kind names, sorted.
func (c *Catalog) Kinds() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.kinds))
	for name := range c.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definition returns the stored definition for a kind.
func (c *Catalog) Definition(kind string) (Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.kinds[kind]
	return def, ok
}

// Count returns the number of registered kinds.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.kinds)
}
