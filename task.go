package shutdown

import (
	"context"
	"fmt"

	"github.com/lif0/pkg/utils/errx"

	"github.com/lif0/go-shutdown/internal"
)

// GoTask runs f in its own goroutine and returns a Pollable that resolves
// with f's error once it returns. A panic inside f is recovered and
// surfaced as an error wrapping ErrTaskPanic.
//
// The context is passed through to f; it is f's responsibility to observe
// it. GoTask itself never cancels anything.
func GoTask(ctx context.Context, f func(ctx context.Context) error) Pollable[error] {
	l := internal.NewLatch[error]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				l.Resolve(fmt.Errorf("%w: %v", ErrTaskPanic, r))
			}
		}()
		l.Resolve(f(ctx))
	}()

	return latchPollable[error]{l: l}
}

// GoCleanup runs f in its own goroutine and resolves with no value once it
// returns. Intended for the cleanup slot of a Combinator.
func GoCleanup(f func()) Pollable[struct{}] {
	l := internal.NewLatch[struct{}]()

	go func() {
		f()
		l.Resolve(struct{}{})
	}()

	return latchPollable[struct{}]{l: l}
}

// Collector aggregates non-nil errors from the tasks it spawns.
// The combinator itself discards task values; a Collector is how a caller
// gets them back after the shutdown flow completes. Safe for use from the
// task goroutines it creates.
type Collector struct {
	errs *internal.Cell[errx.MultiError]
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{
		errs: internal.NewCell(errx.MultiError{}),
	}
}

// Task runs f via GoTask and records its non-nil error.
func (c *Collector) Task(ctx context.Context, f func(ctx context.Context) error) Pollable[error] {
	return GoTask(ctx, func(ctx context.Context) error {
		err := f(ctx)
		if err != nil {
			c.errs.Mutate(func(v *errx.MultiError) {
				v.Append(err)
			})
		}
		return err
	})
}

// Err returns a snapshot of the errors recorded so far.
func (c *Collector) Err() errx.MultiError {
	return c.errs.Snapshot()
}
