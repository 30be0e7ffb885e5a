package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMapBounded(t *testing.T) {
	type args struct {
		list     []int
		f        func(context.Context, int, int) (int, error)
		inflight int
	}
	tests := []struct {
		name       string
		args       args
		wantResult []int
		wantErr    bool
	}{
		{
			name: "empty",
			args: args{
				list:     nil,
				f:        func(_ context.Context, _, v int) (int, error) { return v, nil },
				inflight: 0,
			},
			wantResult: []int{},
		},
		{
			name: "one",
			args: args{
				list:     []int{1},
				f:        func(_ context.Context, _, v int) (int, error) { return v * 2, nil },
				inflight: 1,
			},
			wantResult: []int{2},
		},
		{
			name: "two",
			args: args{
				list: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
				f: func(_ context.Context, _, v int) (int, error) {
					time.Sleep(time.Millisecond)
					return v * 2, nil
				},
				inflight: 2,
			},
			wantResult: []int{2, 4, 6, 8, 10, 12, 14, 16, 18, 20},
		},
		{
			name: "error",
			args: args{
				list: []int{1, 2, 3},
				f: func(_ context.Context, _, v int) (int, error) {
					if v == 2 {
						return 0, errors.New("two")
					}
					return v, nil
				},
				inflight: 1,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotResult, err := MapBounded(context.Background(), tt.args.list, tt.args.f, tt.args.inflight)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult, gotResult)
			}

			goleak.VerifyNone(t)
		})
	}
}

func TestMapBounded_Bound(t *testing.T) {
	var running, peak int32
	list := make([]int, 20)

	_, err := MapBounded(context.Background(), list, func(_ context.Context, _, _ int) (struct{}, error) {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		atomic.AddInt32(&running, -1)
		return struct{}{}, nil
	}, 3)

	assert.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
	goleak.VerifyNone(t)
}

func TestMapBounded_ErrorCancelsOthers(t *testing.T) {
	boom := errors.New("boom")

	_, err := MapBounded(context.Background(), []int{0, 1}, func(ctx context.Context, i, _ int) (int, error) {
		if i == 0 {
			return 0, boom
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(10 * time.Second):
			return 1, nil
		}
	}, 2)

	assert.ErrorIs(t, err, boom)
	goleak.VerifyNone(t)
}

func TestMapBounded_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := MapBounded(ctx, []int{1, 2, 3}, func(_ context.Context, _, v int) (int, error) {
		return v, nil
	}, 1)

	assert.ErrorIs(t, err, context.Canceled)
	goleak.VerifyNone(t)
}
