package batch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcJob struct {
	name string
	fn   func(ctx context.Context) error
}

func (j funcJob) Execute(ctx context.Context) error { return j.fn(ctx) }
func (j funcJob) Description() string               { return j.name }

func TestWorkerPoolRunsAllJobs(t *testing.T) {
	var done atomic.Int64
	jobs := make([]Job, 20)
	for i := range jobs {
		jobs[i] = funcJob{name: "count", fn: func(context.Context) error {
			done.Add(1)
			return nil
		}}
	}

	wp := NewWorkerPool(context.Background(), 4, 0, len(jobs))
	wp.Start()
	require.Equal(t, 20, wp.SubmitBatch(jobs))

	assert.Equal(t, 0, wp.Shutdown())
	assert.Equal(t, int64(20), done.Load())
}

func TestWorkerPoolCountsFailures(t *testing.T) {
	wp := NewWorkerPool(context.Background(), 2, 0, 3)
	wp.Start()
	wp.SubmitBatch([]Job{
		funcJob{name: "ok", fn: func(context.Context) error { return nil }},
		funcJob{name: "bad", fn: func(context.Context) error { return errors.New("boom") }},
		funcJob{name: "bad", fn: func(context.Context) error { return errors.New("boom") }},
	})

	assert.Equal(t, 2, wp.Shutdown())
}

func TestWorkerPoolDropsWhenFull(t *testing.T) {
	// Not started, so nothing drains the queue.
	wp := NewWorkerPool(context.Background(), 1, 0, 1)
	job := funcJob{name: "noop", fn: func(context.Context) error { return nil }}

	require.NoError(t, wp.Submit(job))
	assert.Error(t, wp.Submit(job))
}

func TestWorkerPoolCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	wp := NewWorkerPool(ctx, 1, 0, 0)
	cancel()

	err := wp.Submit(funcJob{name: "noop", fn: func(context.Context) error { return nil }})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShutdownWithTimeout(t *testing.T) {
	release := make(chan struct{})
	wp := NewWorkerPool(context.Background(), 1, 0, 1)
	wp.Start()
	require.NoError(t, wp.Submit(funcJob{name: "slow", fn: func(ctx context.Context) error {
		select {
		case <-release:
		case <-ctx.Done():
		}
		return nil
	}}))

	assert.False(t, wp.ShutdownWithTimeout(20*time.Millisecond))
	close(release)
}
