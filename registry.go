package randx

import "sync"

// A Registry hands out one Rand per key, so concurrent execution contexts
// (goroutines, sessions, simulation entities) each own a private stream and
// no draw ever takes a lock. Streams are created lazily on first Get,
// seeded from the registry's Seeder, and live until dropped.
//
// Registry methods are safe for concurrent use. The Rand values they return
// are not: each must stay confined to the context that owns its key.
type Registry[K comparable] struct {
	mu      sync.Mutex
	seeder  *Seeder
	streams map[K]*Rand
}

// NewRegistry returns an empty registry seeding new streams from s. A nil
// seeder selects the package default.
func NewRegistry[K comparable](s *Seeder) *Registry[K] {
	if s == nil {
		s = defaultSeeder
	}
	return &Registry[K]{seeder: s, streams: make(map[K]*Rand)}
}

// Get returns the stream owned by key, creating it on first use.
func (g *Registry[K]) Get(key K) *Rand {
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.streams[key]
	if !ok {
		r = NewWith(g.seeder)
		g.streams[key] = r
	}
	return r
}

// Drop discards the stream owned by key, if any. A later Get for the same
// key starts a fresh stream.
func (g *Registry[K]) Drop(key K) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.streams, key)
}

// Size reports the number of live streams.
func (g *Registry[K]) Size() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.streams)
}
