package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	t.Run("runs every job", func(t *testing.T) {
		var executed int32
		pool := NewPool(TestWorkerCount, TestQueueSize)
		pool.Start(context.Background())

		for i := 0; i < TestJobCount; i++ {
			pool.Enqueue(&testJob{executed: &executed})
		}

		require.NoError(t, pool.Wait())
		assert.Equal(t, int32(TestJobCount), atomic.LoadInt32(&executed))
	})

	t.Run("joins job errors", func(t *testing.T) {
		boom := errors.New("boom")
		pool := NewPool(TestWorkerCount, TestQueueSize)
		pool.Start(context.Background())

		for i := 0; i < TestJobCount; i++ {
			i := i
			pool.Enqueue(JobFunc(func(ctx context.Context) error {
				if i == TestFailingIndex {
					return boom
				}
				return nil
			}))
		}

		err := pool.Wait()
		assert.ErrorIs(t, err, boom)
	})

	t.Run("cancelled context skips jobs", func(t *testing.T) {
		var executed int32
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		pool := NewPool(0, TestQueueSize)
		pool.Start(ctx)
		pool.Enqueue(&testJob{executed: &executed})

		err := pool.Wait()
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int32(0), atomic.LoadInt32(&executed))
	})
}
