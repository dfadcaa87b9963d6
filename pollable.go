package shutdown

import "github.com/lif0/go-shutdown/internal"

// Waker requests another evaluation step from whatever loop is driving a
// Pollable. Wake must be safe to call from any goroutine and must never
// block; a wake that arrives while one is already pending may be coalesced.
type Waker interface {
	Wake()
}

// WakeFunc adapts a plain function to the Waker interface.
type WakeFunc func()

// Wake implements Waker.
func (f WakeFunc) Wake() { f() }

// Pollable is a suspended computation producing a value of type T.
//
// Poll performs one evaluation step: it either resolves with the final
// value (ok == true) or reports "not yet done" (ok == false). Before
// returning ok == false, the computation must arrange for w.Wake to be
// called once further progress becomes possible, otherwise it may never
// be polled again. Behavior of Poll after it has returned ok == true is
// undefined; drivers must stop at the first resolution.
type Pollable[T any] interface {
	Poll(w Waker) (v T, ok bool)
}

// PollFunc adapts a plain function to the Pollable interface.
type PollFunc[T any] func(w Waker) (T, bool)

// Poll implements Pollable.
func (f PollFunc[T]) Poll(w Waker) (T, bool) { return f(w) }

// Resolved returns a Pollable that is already complete with v.
func Resolved[T any](v T) Pollable[T] {
	return PollFunc[T](func(Waker) (T, bool) { return v, true })
}

// Never returns a Pollable that never resolves and never wakes.
// Useful as a placeholder task or as a trigger that is permanently idle.
func Never[T any]() Pollable[T] {
	return PollFunc[T](func(Waker) (T, bool) {
		var zero T
		return zero, false
	})
}

// latchPollable exposes a producer-side internal.Latch as a Pollable.
// The goroutine-backed adapters (SignalTrigger, RecvTrigger, GoTask) all
// resolve through one of these.
type latchPollable[T any] struct {
	l *internal.Latch[T]
}

// Poll implements Pollable.
func (p latchPollable[T]) Poll(w Waker) (T, bool) {
	return p.l.TryGet(w.Wake)
}
