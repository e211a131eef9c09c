package repository

import (
	"fmt"
	"sync"
)

// Sequence hands out ticket identifiers per prefix. Numbers are strictly
// increasing and gap-free within a prefix, never reused, and safe for
// concurrent callers.
type Sequence struct {
	mu   sync.Mutex
	base uint64
	last map[string]uint64
}

// NewSequence creates a generator whose first id per prefix is base+1.
func NewSequence(base uint64) *Sequence {
	return &Sequence{
		base: base,
		last: make(map[string]uint64),
	}
}

// Next returns the next identifier for the prefix, formatted "PREFIX-N".
func (s *Sequence) Next(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.last[prefix]
	if !ok {
		n = s.base
	}
	n++
	s.last[prefix] = n
	return fmt.Sprintf("%s-%d", prefix, n)
}
