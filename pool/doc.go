// Package pool provides a small, long-running worker pool that accepts
// asynchronous task submissions and hands back a Future for each one.
//
// A Pool is created unstarted, started once with a context that bounds the
// lifetime of its workers, fed through Submit, and drained with Shutdown.
//
// # Basic Usage
//
//	p := pool.New(pool.WithWorkerCount(8))
//	if err := p.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Shutdown(5 * time.Second)
//
//	future, err := p.Submit(func(ctx context.Context) error {
//	    time.Sleep(200 * time.Millisecond)
//	    return nil
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = future.Wait()
//
// # Configuration Options
//
//   - WithWorkerCount(n): Set number of concurrent workers (default: GOMAXPROCS)
//   - WithTaskBuffer(n): Set task queue buffer size (default: worker count)
//   - WithRateLimit(tasksPerSecond, burst): Throttle how fast workers pick up tasks
//   - WithLockedThreads(pin): Give every worker its own OS thread, optionally pinned to a core
//
// # Error Handling
//
// A task's error is delivered only through its Future; one failing task never
// stops the pool. Panics are recovered and surfaced as errors wrapping
// ErrTaskPanic, with the stack trace attached. Tasks still queued when the
// pool's context is cancelled complete with the context's error without
// running, so no Future is left pending.
package pool
