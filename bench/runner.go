package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/eapache/queue"
)

// Runner spawns a fixed number of sleeping tasks through a Spawner, waits for
// all of them and measures the elapsed time. It holds configuration only and
// can be reused across runs and strategies.
type Runner struct {
	config *runnerConfig
}

// NewRunner creates a Runner.
//
// Default configuration:
//   - taskCount: DefaultTaskCount (10,000)
//   - sleep: DefaultSleep (200ms)
//   - no task hook, no thread tracking
func NewRunner(opts ...Option) *Runner {
	cfg := &runnerConfig{
		taskCount: DefaultTaskCount,
		sleep:     DefaultSleep,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return &Runner{config: cfg}
}

// TaskCount returns the number of tasks each run spawns.
func (r *Runner) TaskCount() int {
	return r.config.taskCount
}

// Sleep returns the simulated IO duration of each task.
func (r *Runner) Sleep() time.Duration {
	return r.config.sleep
}

// Run performs one measured run with the given spawner:
//
//  1. sample the start time
//  2. create and start every task through the spawner
//  3. join every handle, in creation order
//  4. sample the end time
//
// Cancelling ctx interrupts sleeping tasks but never the barrier; Run returns
// only after every task has finished.
//
// Returns:
//   - Result: The run's measurement
//   - error: ErrInvalidTaskCount or ErrInvalidSleep for a bad configuration
func (r *Runner) Run(ctx context.Context, spawner Spawner) (Result, error) {
	cfg := r.config
	if cfg.taskCount < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidTaskCount, cfg.taskCount)
	}
	if cfg.sleep < 0 {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidSleep, cfg.sleep)
	}

	if rs, ok := spawner.(Reserver); ok {
		rs.Reserve(cfg.taskCount)
	}

	state := &taskState{
		ctx:   ctx,
		sleep: cfg.sleep,
		hook:  cfg.taskHook,
	}
	if cfg.trackThreads {
		state.tracker = newThreadTracker(cfg.taskCount)
	}

	debugLog("%s: spawning %d tasks (sleep %v)", spawner.Name(), cfg.taskCount, cfg.sleep)

	start := time.Now()

	handles := queue.New()
	for i := range cfg.taskCount {
		h := spawner.Create(state.body(i))
		h.Start()
		handles.Add(h)
	}

	for handles.Length() > 0 {
		handles.Remove().(Handle).Join()
	}

	elapsed := time.Since(start)

	res := Result{
		Strategy:    spawner.Name(),
		Tasks:       cfg.taskCount,
		Sleep:       cfg.sleep,
		Elapsed:     elapsed,
		Interrupted: int(state.interrupted.Load()),
	}
	if state.tracker != nil {
		res.Threads = state.tracker.count()
	}

	debugLog("%s: done in %v (%d interrupted)", res.Strategy, res.Elapsed, res.Interrupted)
	return res, nil
}
