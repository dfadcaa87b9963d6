package internal_test

import (
	"sync"
	"testing"

	"github.com/lif0/go-shutdown/internal"
	"github.com/stretchr/testify/assert"
)

func Test_Latch(t *testing.T) {
	t.Parallel()

	t.Run("ok/pending_until_resolved", func(t *testing.T) {
		t.Parallel()
		// arrange
		l := internal.NewLatch[int]()
		// act
		_, ok := l.TryGet(func() {})
		// assert
		assert.False(t, ok)
	})

	t.Run("ok/resolve_then_get", func(t *testing.T) {
		t.Parallel()
		// arrange
		l := internal.NewLatch[int]()
		// act
		l.Resolve(5)
		v, ok := l.TryGet(nil)
		// assert
		assert.True(t, ok)
		assert.Equal(t, 5, v)
	})

	t.Run("ok/pending_wake_fired_on_resolve", func(t *testing.T) {
		t.Parallel()
		// arrange
		l := internal.NewLatch[string]()
		woken := 0
		_, ok := l.TryGet(func() { woken++ })
		assert.False(t, ok)
		// act
		l.Resolve("v")
		// assert
		assert.Equal(t, 1, woken)
	})

	t.Run("ok/latest_wake_wins", func(t *testing.T) {
		t.Parallel()
		// arrange
		l := internal.NewLatch[string]()
		first := 0
		second := 0
		l.TryGet(func() { first++ })
		l.TryGet(func() { second++ })
		// act
		l.Resolve("v")
		// assert
		assert.Equal(t, 0, first)
		assert.Equal(t, 1, second)
	})

	t.Run("edge/second_resolve_ignored", func(t *testing.T) {
		t.Parallel()
		// arrange
		l := internal.NewLatch[int]()
		l.Resolve(1)
		// act
		l.Resolve(2)
		v, ok := l.TryGet(nil)
		// assert
		assert.True(t, ok)
		assert.Equal(t, 1, v)
	})

	t.Run("edge/no_wake_when_already_resolved", func(t *testing.T) {
		t.Parallel()
		// arrange
		l := internal.NewLatch[int]()
		l.Resolve(1)
		woken := 0
		// act
		v, ok := l.TryGet(func() { woken++ })
		// assert
		assert.True(t, ok)
		assert.Equal(t, 1, v)
		assert.Equal(t, 0, woken)
	})

	t.Run("race/concurrent_resolve_and_get", func(t *testing.T) {
		t.Parallel()
		// arrange
		l := internal.NewLatch[int]()
		done := make(chan struct{})

		var wg sync.WaitGroup
		wg.Add(2)
		// act
		go func() {
			defer wg.Done()
			l.Resolve(9)
		}()
		go func() {
			defer wg.Done()
			for {
				if v, ok := l.TryGet(func() {}); ok {
					assert.Equal(t, 9, v)
					close(done)
					return
				}
			}
		}()
		wg.Wait()
		// assert
		<-done
	})
}
