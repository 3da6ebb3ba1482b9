package pool

import (
	"runtime"

	"golang.org/x/time/rate"
)

// Option is a functional option for configuring the worker pool.
type Option func(*poolConfig)

type poolConfig struct {
	workerCount int
	taskBuffer  int
	rateLimiter *rate.Limiter
	lockThreads bool
	pinThreads  bool
}

func createConfig(opts ...Option) *poolConfig {
	cfg := &poolConfig{
		workerCount: runtime.GOMAXPROCS(0),
		taskBuffer:  -1, // Will be set to workerCount if not specified
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.taskBuffer < 0 {
		cfg.taskBuffer = cfg.workerCount
	}
	return cfg
}

// WithWorkerCount sets the number of concurrent workers.
// If not specified, defaults to runtime.GOMAXPROCS(0).
func WithWorkerCount(count int) Option {
	return func(cfg *poolConfig) {
		if count > 0 {
			cfg.workerCount = count
		}
	}
}

// WithTaskBuffer sets the buffer size for the task queue.
// If not specified, defaults to the number of workers.
func WithTaskBuffer(size int) Option {
	return func(cfg *poolConfig) {
		if size >= 0 {
			cfg.taskBuffer = size
		}
	}
}

// WithRateLimit sets a rate limiter shared by all workers.
// tasksPerSecond specifies the maximum number of tasks started per second,
// burst the number that may start back to back.
//
// Example:
//
//	WithRateLimit(1000, 50) // 1000 tasks/sec with burst of 50
func WithRateLimit(tasksPerSecond float64, burst int) Option {
	return func(cfg *poolConfig) {
		if tasksPerSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(tasksPerSecond), burst)
		}
	}
}

// WithLockedThreads locks every worker goroutine to its own OS thread for the
// lifetime of the pool. With pin set, worker i is also pinned to core i % NumCPU.
func WithLockedThreads(pin bool) Option {
	return func(cfg *poolConfig) {
		cfg.lockThreads = true
		cfg.pinThreads = pin
	}
}
