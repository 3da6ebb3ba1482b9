package bench

import "time"

const (
	DefaultTaskCount = 10_000
	DefaultSleep     = 200 * time.Millisecond
)

// Option is a functional option for configuring a Runner.
type Option func(*runnerConfig)

type runnerConfig struct {
	taskCount    int
	sleep        time.Duration
	taskHook     func(index int)
	trackThreads bool
}

// WithTaskCount sets how many tasks each run spawns.
// Defaults to DefaultTaskCount. Negative counts are rejected by Run.
func WithTaskCount(n int) Option {
	return func(cfg *runnerConfig) {
		cfg.taskCount = n
	}
}

// WithSleep sets how long every task blocks to simulate IO.
// Defaults to DefaultSleep. Negative durations are rejected by Run.
func WithSleep(d time.Duration) Option {
	return func(cfg *runnerConfig) {
		cfg.sleep = d
	}
}

// WithTaskHook registers fn to be called by every task after it wakes up,
// with the task's index. fn runs concurrently and must be goroutine-safe.
func WithTaskHook(fn func(index int)) Option {
	return func(cfg *runnerConfig) {
		cfg.taskHook = fn
	}
}

// WithThreadTracking makes every task record the OS thread it runs on, so the
// Result reports how many distinct threads a strategy used.
func WithThreadTracking() Option {
	return func(cfg *runnerConfig) {
		cfg.trackThreads = true
	}
}
