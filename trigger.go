package shutdown

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/lif0/pkg/concurrency/chanx"

	"github.com/lif0/go-shutdown/internal"
)

// SignalTrigger builds a shutdown trigger backed by OS signals, user
// channels, or a deadline, suitable as a trigger entry of a Combinator.
//
// The returned Pollable resolves once, with the received signal (nil when
// activated by a user channel or the deadline). The context is for
// cancellation; if the context is canceled before anything fires, the
// trigger never resolves and its goroutine simply returns.
func SignalTrigger(ctx context.Context, opts ...TriggerOption) Pollable[os.Signal] {
	c := newDefaultTriggerConfig()
	for _, opt := range opts {
		opt(c)
	}

	l := internal.NewLatch[os.Signal]()

	go func() {
		singleUserChan := chanx.FanIn(ctx, c.usrch...)

		var deadline <-chan time.Time
		if c.deadline > 0 {
			t := time.NewTimer(c.deadline)
			defer t.Stop()
			deadline = t.C
		}

		select {
		case <-ctx.Done():
			return
		case sig := <-c.sysch:
			log.Printf("goshutdown: Received system signal - %s\n", sig.String())
			l.Resolve(sig)
		case <-singleUserChan:
			log.Printf("goshutdown: Received user trigger\n")
			l.Resolve(nil)
		case <-deadline:
			log.Printf("goshutdown: Trigger deadline elapsed\n")
			l.Resolve(nil)
		}
	}()

	return latchPollable[os.Signal]{l: l}
}

// RecvTrigger builds a trigger that resolves on the first value received
// from ch (the zero value if ch is closed). If the context is canceled
// first, the trigger never resolves.
func RecvTrigger[T any](ctx context.Context, ch <-chan T) Pollable[T] {
	l := internal.NewLatch[T]()

	go func() {
		select {
		case <-ctx.Done():
		case v := <-ch:
			l.Resolve(v)
		}
	}()

	return latchPollable[T]{l: l}
}
