package ratesync

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

type task func(ctx context.Context) error

type batchResult struct {
	Succeeded int
	Failed    int
}

// runBatch executes tasks over a bounded worker pool. A single task's failure
// is logged and counted, never aborting its siblings. When the context is
// cancelled, undispatched tasks are left unrun and uncounted; a later run
// re-derives its working set from stored state, so nothing is lost.
func runBatch(ctx context.Context, workers int, phase string, logger *slog.Logger, tasks []task) batchResult {
	if workers < 1 {
		workers = 1
	}
	if len(tasks) == 0 {
		return batchResult{}
	}

	jobs := make(chan task)
	var succeeded, failed int64
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobs {
				if err := t(ctx); err != nil {
					logger.Error("row update failed", "phase", phase, "error", err)
					atomic.AddInt64(&failed, 1)
					continue
				}
				atomic.AddInt64(&succeeded, 1)
			}
		}()
	}

dispatch:
	for _, t := range tasks {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- t:
		}
	}
	close(jobs)
	wg.Wait()

	return batchResult{Succeeded: int(succeeded), Failed: int(failed)}
}
