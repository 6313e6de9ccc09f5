package build

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator mints component ids for builder calls that leave the id
// empty.
type IDGenerator interface {
	NextID(kind string) string
}

// Sequence mints deterministic kind-scoped ids: text-1, text-2,
// button-1. Each Sequence is caller-owned; there is no process-wide
// counter, so parallel builders and tests never observe each other.
// Safe for concurrent use.
type Sequence struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewSequence creates a Sequence starting at 1 for every kind.
func NewSequence() *Sequence {
	return &Sequence{counts: make(map[string]int)}
}

// NextID returns the next id for kind.
func (s *Sequence) NextID(kind string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(kind)
	if key == "" {
		key = "component"
	}
	s.counts[key]++
	return fmt.Sprintf("%s-%d", key, s.counts[key])
}

// Reset rewinds every kind counter to zero.
func (s *Sequence) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts = make(map[string]int)
}

// UUID mints collision-free random ids, kind-prefixed for readability.
// Stateless and safe for concurrent use.
type UUID struct{}

// NextID returns a fresh id for kind.
func (UUID) NextID(kind string) string {
	if kind == "" {
		return uuid.NewString()
	}
	return strings.ToLower(kind) + "-" + uuid.NewString()
}
