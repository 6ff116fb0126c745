// Package syncx provides extended synchronization primitives
package syncx

import "sync"

// Guard wraps a value with an RWMutex and scoped lock helpers. The engine
// mutates its statistics from the scheduler goroutine only; Guard exists so
// other goroutines can snapshot them safely.
type Guard[T any] struct {
	mu    sync.RWMutex
	value T
}

// NewGuard creates a guarded value.
func NewGuard[T any](initial T) *Guard[T] {
	return &Guard[T]{value: initial}
}

// Write executes fn while holding the write lock; fn receives a pointer for
// mutation.
func (g *Guard[T]) Write(fn func(*T)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(&g.value)
}

// Get returns a copy of the value (T should be a value type).
func (g *Guard[T]) Get() T {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.value
}

// Set atomically replaces the value.
func (g *Guard[T]) Set(v T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.value = v
}
