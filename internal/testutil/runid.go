// Package testutil holds deterministic stand-ins for tests.
package testutil

import "sync"

// FixedRunIDGenerator returns predetermined render run IDs.
//
// This enables deterministic test execution and golden output comparison:
// the same document rendered with the same generator records identical runs.
//
// Thread-safety: FixedRunIDGenerator is safe for concurrent use via internal mutex.
type FixedRunIDGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedRunIDGenerator creates a generator that returns ids in order.
//
//	gen := NewFixedRunIDGenerator("run-1", "run-2")
//	gen.Generate() // "run-1"
//	gen.Generate() // "run-2"
//	gen.Generate() // panic: all run IDs exhausted
func NewFixedRunIDGenerator(ids ...string) *FixedRunIDGenerator {
	return &FixedRunIDGenerator{ids: ids}
}

// Generate returns the next predetermined ID.
//
// Panics if all IDs have been consumed, which means a test rendered more
// runs than it set up.
func (g *FixedRunIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("FixedRunIDGenerator: all run IDs exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
