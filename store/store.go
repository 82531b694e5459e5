package store

import (
	"slices"

	"github.com/jonwraymond/bypass/value"
)

// Cache is the operation surface shared by Store and Guarded.
//
// Contract:
// - Errors: Get never errors; it returns (nil, false) on miss.
// - Ownership: Set deep-copies its value, Get returns a fresh value;
//   callers never share memory with stored trees.
type Cache interface {
	// Set stores a deep copy of v at key, replacing any prior entry.
	Set(key int64, v any)

	// Get materializes a fresh value from the entry at key.
	// Returns (nil, false) on miss.
	Get(key int64) (any, bool)

	// Del removes the entry at key. Idempotent - no error on miss.
	Del(key int64)

	// List returns every present key in ascending order, each exactly once.
	List() []int64
}

// Store is a keyed table owning one value tree per int64 key. Each key is
// either absent or present with exactly one tree; Set is an upsert.
//
// A Store is not safe for concurrent use. Embedders sharing one instance
// across goroutines must hold an exclusive lock for the duration of every
// operation; Guarded provides exactly that.
type Store struct {
	entries map[int64]entry
	nodes   int
}

type entry struct {
	root  value.Node
	nodes int
}

// Stats describes the current occupancy of a store.
type Stats struct {
	// Entries is the number of present keys.
	Entries int
	// Nodes is the total node count across all owned trees.
	Nodes int
}

// New creates an empty store.
func New() *Store {
	return &Store{entries: make(map[int64]entry)}
}

// Set deep-copies v into an owned tree and installs it at key. Any tree
// previously present at key is released. Mutating v afterwards has no
// effect on the stored tree.
func (s *Store) Set(key int64, v any) {
	root := value.Import(v)
	n := value.Count(root)
	if prev, ok := s.entries[key]; ok {
		s.nodes -= prev.nodes
	}
	s.entries[key] = entry{root: root, nodes: n}
	s.nodes += n
}

// Get materializes a brand-new value from the tree at key. The stored tree
// is never exposed or mutated. Returns (nil, false) on miss; note that a
// stored Undefined yields (nil, true).
func (s *Store) Get(key int64) (any, bool) {
	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return value.Export(e.root), true
}

// Del removes the entry at key, releasing its tree. Idempotent - a miss is
// not an error.
func (s *Store) Del(key int64) {
	if prev, ok := s.entries[key]; ok {
		s.nodes -= prev.nodes
		delete(s.entries, key)
	}
}

// List returns every present key in ascending order, each exactly once.
func (s *Store) List() []int64 {
	keys := make([]int64, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of present keys.
func (s *Store) Len() int {
	return len(s.entries)
}

// Clear removes every entry, releasing all owned trees.
func (s *Store) Clear() {
	s.entries = make(map[int64]entry)
	s.nodes = 0
}

// Stats returns the current occupancy. O(1): node counts are maintained
// incrementally on Set and Del.
func (s *Store) Stats() Stats {
	return Stats{Entries: len(s.entries), Nodes: s.nodes}
}

// Ensure Store implements Cache
var _ Cache = (*Store)(nil)
