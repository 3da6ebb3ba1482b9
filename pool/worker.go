package pool

import (
	"context"
	"fmt"
	"runtime"

	"github.com/utkarsh5026/threadbench/internal/osthread"
)

// worker drains the task queue until it is closed. Every dequeued task's
// future is completed, even when the pool context is already cancelled.
func (p *Pool) worker(ctx context.Context, workerID int, tasks <-chan *submittedTask) error {
	if p.config.lockThreads {
		unlock := osthread.Lock(workerID, p.config.pinThreads)
		defer unlock()
	}

	for t := range tasks {
		if err := ctx.Err(); err != nil {
			t.future.complete(err)
			continue
		}

		if p.config.rateLimiter != nil {
			if err := p.config.rateLimiter.Wait(ctx); err != nil {
				t.future.complete(err)
				continue
			}
		}

		t.future.complete(runWithRecovery(ctx, t.fn))
	}
	return nil
}

// runWithRecovery executes a task with panic recovery.
// If a panic occurs, it's converted to an error to prevent crashing the worker.
func runWithRecovery(ctx context.Context, fn Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("%w: %v\nstack trace:\n%s", ErrTaskPanic, r, buf[:n])
		}
	}()

	return fn(ctx)
}
