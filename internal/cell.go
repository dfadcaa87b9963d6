package internal

import "sync"

// Cell is a mutex-guarded value shared across goroutines.
type Cell[T any] struct {
	mu sync.RWMutex
	v  T
}

func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{v: v}
}

// Mutate runs f with exclusive access to the value.
func (c *Cell[T]) Mutate(f func(v *T)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	f(&c.v)
}

// Snapshot returns a copy of the current value.
func (c *Cell[T]) Snapshot() T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.v
}
