package shutdown

import "context"

// Await drives p to completion with a minimal single-threaded loop: poll,
// park until a wake arrives, poll again. Wakes are coalesced through a
// one-slot channel, so redundant Wake calls cost nothing.
//
// Await returns p's resolved value, or the context error if ctx is
// canceled while p is still pending. It must not be called with a Pollable
// that is being driven elsewhere.
func Await[T any](ctx context.Context, p Pollable[T]) (T, error) {
	wakes := make(chan struct{}, 1)
	w := WakeFunc(func() {
		select {
		case wakes <- struct{}{}:
		default:
		}
	})

	for {
		if v, ok := p.Poll(w); ok {
			return v, nil
		}

		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-wakes:
		}
	}
}
