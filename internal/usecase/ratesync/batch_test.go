package ratesync

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunBatchCountsAndIsolation(t *testing.T) {
	tasks := []task{
		func(context.Context) error { return nil },
		func(context.Context) error { return errors.New("boom") },
		func(context.Context) error { return nil },
	}

	result := runBatch(context.Background(), 2, "test", slog.Default(), tasks)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
}

func TestRunBatchEmpty(t *testing.T) {
	result := runBatch(context.Background(), 4, "test", slog.Default(), nil)
	assert.Equal(t, batchResult{}, result)
}

func TestRunBatchBoundedParallelism(t *testing.T) {
	const workers = 3
	var inFlight, peak int64
	var mu sync.Mutex

	tasks := make([]task, 50)
	for i := range tasks {
		tasks[i] = func(context.Context) error {
			n := atomic.AddInt64(&inFlight, 1)
			mu.Lock()
			if n > peak {
				peak = n
			}
			mu.Unlock()
			atomic.AddInt64(&inFlight, -1)
			return nil
		}
	}

	result := runBatch(context.Background(), workers, "test", slog.Default(), tasks)
	assert.Equal(t, 50, result.Succeeded)
	assert.LessOrEqual(t, peak, int64(workers))
}

func TestRunBatchStopsDispatchOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ran int64
	tasks := make([]task, 100)
	for i := range tasks {
		tasks[i] = func(context.Context) error {
			atomic.AddInt64(&ran, 1)
			cancel()
			return nil
		}
	}

	result := runBatch(ctx, 1, "test", slog.Default(), tasks)
	assert.Less(t, result.Succeeded, 100, "cancellation must stop dispatching remaining tasks")
	assert.Equal(t, int(ran), result.Succeeded)
}
