package internal

import "sync"

// Latch is a one-shot resolution cell shared between a producer goroutine
// and a polling consumer. The producer calls Resolve at most once; the
// consumer calls TryGet on every poll, leaving a wake callback behind when
// the value is not there yet.
type Latch[T any] struct {
	mu   sync.Mutex
	v    T
	done bool
	wake func()
}

func NewLatch[T any]() *Latch[T] {
	return &Latch[T]{}
}

// Resolve stores v and fires the pending wake callback, if any.
// Calls after the first are ignored.
func (l *Latch[T]) Resolve(v T) {
	l.mu.Lock()
	if l.done {
		l.mu.Unlock()
		return
	}
	l.v = v
	l.done = true
	wake := l.wake
	l.wake = nil
	// Fire outside the lock: the callback may re-enter TryGet.
	l.mu.Unlock()

	if wake != nil {
		wake()
	}
}

// TryGet returns the resolved value if Resolve has been called. Otherwise
// it records wake (replacing any previous callback) to be fired once on
// resolution, and reports false.
func (l *Latch[T]) TryGet(wake func()) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done {
		return l.v, true
	}

	l.wake = wake
	var zero T
	return zero, false
}
