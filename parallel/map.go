// Package parallel runs independent jobs over a slice with a bound on
// how many run at once.
package parallel

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// MapBounded maps a list of ~[]T to []R using a provided map function f.
// It does this in parallel with a maximum of inflight workers.
//
// The first error returned by f cancels the context handed to the other
// calls, stops new calls from starting, and is returned once every
// running call has exited. If ctx is canceled first, its error is
// returned instead. Results of calls that failed or never ran are the
// zero R.
func MapBounded[S ~[]T, T, R any](
	ctx context.Context, list S, f func(context.Context, int, T) (R, error), inflight int,
) ([]R, error) {
	if inflight < 1 {
		inflight = 1
	}
	result := make([]R, len(list))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	sema := semaphore.NewWeighted(int64(inflight))

	for i, v := range list {
		// Acquire may succeed on a dead context while capacity is free
		if err := ctx.Err(); err != nil {
			fail(err)
			break
		}
		if err := sema.Acquire(ctx, 1); err != nil {
			fail(err)
			break
		}

		go func(i int, v T) {
			defer sema.Release(1)
			r, err := f(ctx, i, v)
			if err != nil {
				fail(err)
				return
			}
			result[i] = r
		}(i, v)
	}

	// ctx may be dead by now; wait for the workers regardless
	_ = sema.Acquire(context.Background(), int64(inflight))

	return result, firstErr
}
