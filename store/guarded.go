package store

import "sync"

// Guarded wraps a Store with one read-write mutex held for the duration of
// every operation, the locking discipline required when a single store is
// shared across goroutines. The core Store itself holds no locks.
type Guarded struct {
	mu sync.RWMutex
	s  *Store
}

// NewGuarded wraps s. The caller must not use s directly afterwards.
func NewGuarded(s *Store) *Guarded {
	return &Guarded{s: s}
}

// Set stores a deep copy of v at key, replacing any prior entry.
func (g *Guarded) Set(key int64, v any) {
	g.mu.Lock()
	g.s.Set(key, v)
	g.mu.Unlock()
}

// Get materializes a fresh value from the entry at key.
// Returns (nil, false) on miss.
func (g *Guarded) Get(key int64) (any, bool) {
	g.mu.RLock()
	v, ok := g.s.Get(key)
	g.mu.RUnlock()
	return v, ok
}

// Del removes the entry at key. Idempotent - no error on miss.
func (g *Guarded) Del(key int64) {
	g.mu.Lock()
	g.s.Del(key)
	g.mu.Unlock()
}

// List returns every present key in ascending order.
func (g *Guarded) List() []int64 {
	g.mu.RLock()
	keys := g.s.List()
	g.mu.RUnlock()
	return keys
}

// Len returns the number of present keys.
func (g *Guarded) Len() int {
	g.mu.RLock()
	n := g.s.Len()
	g.mu.RUnlock()
	return n
}

// Clear removes every entry.
func (g *Guarded) Clear() {
	g.mu.Lock()
	g.s.Clear()
	g.mu.Unlock()
}

// Stats returns the current occupancy.
func (g *Guarded) Stats() Stats {
	g.mu.RLock()
	st := g.s.Stats()
	g.mu.RUnlock()
	return st
}

// Ensure Guarded implements Cache
var _ Cache = (*Guarded)(nil)
