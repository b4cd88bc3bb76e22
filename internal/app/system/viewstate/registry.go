package viewstate

import (
	"sync"
	"time"
)

// Registry keeps per-visitor values and forgets visitors idle longer than a
// TTL when Prune runs.
type Registry[T any] struct {
	mu      sync.Mutex
	entries map[string]*registryEntry[T]
	newFn   func() T
	now     func() time.Time
}

type registryEntry[T any] struct {
	value    T
	lastSeen time.Time
}

// NewRegistry returns a Registry that creates values with newFn.
func NewRegistry[T any](newFn func() T) *Registry[T] {
	return &Registry[T]{
		entries: make(map[string]*registryEntry[T]),
		newFn:   newFn,
		now:     time.Now,
	}
}

// SetClock replaces the time source. Intended for tests.
func (r *Registry[T]) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

// Get returns the value for id, creating it if needed, and marks id as
// seen.
func (r *Registry[T]) Get(id string) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		e = &registryEntry[T]{value: r.newFn()}
		r.entries[id] = e
	}
	e.lastSeen = r.now()
	return e.value
}

// Prune drops entries not seen within ttl and returns how many were
// dropped.
func (r *Registry[T]) Prune(ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-ttl)
	n := 0
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			delete(r.entries, id)
			n++
		}
	}
	return n
}

// Len returns the number of tracked visitors.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
