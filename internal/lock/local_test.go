package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker_MutualExclusion(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(ctx, ProductKey("p1"))
			if !assert.NoError(t, err) {
				return
			}

			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)

			assert.NoError(t, release(ctx))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Equal(t, 0, l.(*localLocker).size())
}

func TestLocalLocker_IndependentKeys(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	releaseA, err := l.Acquire(ctx, ProductKey("a"))
	require.NoError(t, err)

	ctxB, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	releaseB, err := l.Acquire(ctxB, ProductKey("b"))
	require.NoError(t, err)

	require.NoError(t, releaseA(ctx))
	require.NoError(t, releaseB(ctx))
}

func TestLocalLocker_ContextCancelled(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	release, err := l.Acquire(ctx, "k")
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(waitCtx, "k")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, release(ctx))
	assert.Equal(t, 0, l.(*localLocker).size())
}

func TestLocalLocker_ReleaseIsIdempotent(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	release, err := l.Acquire(ctx, "k")
	require.NoError(t, err)
	require.NoError(t, release(ctx))
	require.NoError(t, release(ctx))

	again, err := l.Acquire(ctx, "k")
	require.NoError(t, err)
	require.NoError(t, again(ctx))
}
