package shutdown_test

import (
	"context"
	"testing"
	"time"

	"github.com/lif0/go-shutdown"
	"github.com/stretchr/testify/assert"
)

func Test_Await(t *testing.T) {
	t.Parallel()

	t.Run("ok/already_resolved", func(t *testing.T) {
		t.Parallel()
		// arrange

		// act
		v, err := shutdown.Await(context.Background(), shutdown.Resolved("done"))
		// assert
		assert.NoError(t, err)
		assert.Equal(t, "done", v)
	})

	t.Run("ok/parks_until_woken", func(t *testing.T) {
		t.Parallel()
		// arrange: resolves on its 2nd poll, wakes the driver from a goroutine
		polls := 0
		p := shutdown.PollFunc[int](func(w shutdown.Waker) (int, bool) {
			polls++
			if polls >= 2 {
				return polls, true
			}
			go func() {
				time.Sleep(10 * time.Millisecond)
				w.Wake()
			}()
			return 0, false
		})
		// act
		v, err := shutdown.Await[int](context.Background(), p)
		// assert
		assert.NoError(t, err)
		assert.Equal(t, 2, v)
	})

	t.Run("ok/redundant_wakes_coalesced", func(t *testing.T) {
		t.Parallel()
		// arrange
		polls := 0
		p := shutdown.PollFunc[int](func(w shutdown.Waker) (int, bool) {
			polls++
			if polls >= 3 {
				return polls, true
			}
			w.Wake()
			w.Wake()
			w.Wake()
			return 0, false
		})
		// act
		v, err := shutdown.Await[int](context.Background(), p)
		// assert
		assert.NoError(t, err)
		assert.Equal(t, 3, v)
	})

	t.Run("err/context_canceled_while_pending", func(t *testing.T) {
		t.Parallel()
		// arrange
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		// act
		v, err := shutdown.Await(ctx, shutdown.Never[int]())
		// assert
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, v)
	})

	t.Run("err/deadline_exceeded_while_pending", func(t *testing.T) {
		t.Parallel()
		// arrange
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		// act
		_, err := shutdown.Await(ctx, shutdown.Never[int]())
		// assert
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
