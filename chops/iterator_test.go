package chops

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/avl/testutils"
	"go.uber.org/goleak"
)

var _ Iterator[int] = (*sliter)(nil)

type sliter struct {
	s []int
	i int
}

func newSliter(s ...int) *sliter {
	return &sliter{s: s, i: -1}
}

func (sl *sliter) Next() bool {
	if sl == nil {
		return false
	}
	sl.i++
	return sl.i < len(sl.s)
}

func (sl *sliter) Item() int {
	return sl.s[sl.i]
}

func TestCoIterate_Nil(t *testing.T) {
	// This tests that untyped nil pointer can be handled
	co := CoIterate[int](context.Background(), nil)
	_, ok := <-co.Items()
	assert.False(t, ok)
	co.Stop()
}

func TestCoIterate(t *testing.T) {
	tests := []struct {
		name string
		sl   *sliter
		do   func(t *testing.T, co CoIterator[int])
	}{
		{
			name: "empty",
			sl:   newSliter(),
			do: func(t *testing.T, co CoIterator[int]) {
				testutils.Drain(t, nil, co.Items(), time.Second)
			},
		},
		{
			name: "one",
			sl:   newSliter(1),
			do: func(t *testing.T, co CoIterator[int]) {
				testutils.Drain(t, []int{1}, co.Items(), time.Second)
			},
		},
		{
			name: "many",
			sl:   newSliter(1, 2, 3, 4),
			do: func(t *testing.T, co CoIterator[int]) {
				testutils.Drain(t, []int{1, 2, 3, 4}, co.Items(), time.Second)
			},
		},
		{
			name: "stopping",
			sl:   newSliter(1, 2, 3),
			do: func(t *testing.T, co CoIterator[int]) {
				assert.Equal(t, 1, <-co.Items())
				co.Stop()
				co.Stop()
				// items already in flight may still arrive
				deadline := time.After(time.Second)
				for {
					select {
					case _, ok := <-co.Items():
						if !ok {
							return
						}
					case <-deadline:
						t.Fatal("channel was not closed after Stop")
					}
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.do(t, CoIterate[int](context.Background(), tt.sl))
			goleak.VerifyNone(t)
		})
	}
}

func TestCoIterate_Context(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	co := CoIterate[int](ctx, newSliter(1, 2, 3))

	assert.Equal(t, 1, <-co.Items())
	cancel()

	for range co.Items() {
	}

	goleak.VerifyNone(t)
}

func TestCoIterate_Concurrent(t *testing.T) {
	sl := newSliter()
	for i := 0; i < 100; i++ {
		sl.s = append(sl.s, i+1)
	}
	co := CoIterate[int](context.Background(), sl)

	barrier := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(10)
	for i := 0; i < 10; i++ {
		go func() {
			defer wg.Done()
			<-barrier
			for j := range co.Items() {
				if j > 50 {
					co.Stop()
				}
			}
		}()
	}

	close(barrier)
	wg.Wait()

	goleak.VerifyNone(t)
}

func TestCollect(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Collect[int](newSliter(1, 2, 3)))
	assert.Empty(t, Collect[int](nil))
}
