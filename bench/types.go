package bench

import (
	"errors"
	"time"
)

var (
	// ErrInterrupted is returned by a task's simulated IO when its context is
	// cancelled mid-sleep. It never leaves the task body.
	ErrInterrupted = errors.New("task sleep interrupted")

	ErrInvalidTaskCount = errors.New("task count must not be negative")
	ErrInvalidSleep     = errors.New("sleep duration must not be negative")
)

// Handle is a unit of concurrency created by a Spawner.
//
// Start begins execution; calling it again is a no-op. Join blocks until the
// unit has finished, starting it first if it was never started.
type Handle interface {
	Start()
	Join()
}

// Spawner is a concurrency strategy: it turns task bodies into Handles.
// Create must not start the body.
type Spawner interface {
	// Name is the label the strategy is reported under.
	Name() string
	Create(body func()) Handle
	// Close releases resources held by the strategy. Safe to call more than once.
	Close() error
}

// Reserver is implemented by spawners that need to prepare for n concurrent
// units before a run, outside of the timed region.
type Reserver interface {
	Reserve(n int)
}

// Result is the outcome of one benchmark run.
//
// Fields:
//   - Strategy: Name of the spawner used
//   - Tasks: Number of tasks spawned and joined
//   - Sleep: Simulated IO duration of each task
//   - Elapsed: Time from the first spawn until every task was joined
//   - Interrupted: Tasks whose sleep was cut short by cancellation
//   - Threads: Distinct OS threads that ran task bodies (0 when not tracked)
type Result struct {
	Strategy    string
	Tasks       int
	Sleep       time.Duration
	Elapsed     time.Duration
	Interrupted int
	Threads     int
}

// Millis returns the elapsed time in whole milliseconds.
func (r Result) Millis() int64 {
	return r.Elapsed.Milliseconds()
}

// Completed returns the number of tasks that slept for their full duration.
func (r Result) Completed() int {
	return r.Tasks - r.Interrupted
}

// TasksPerSecond returns the run's throughput, 0 for an empty run.
func (r Result) TasksPerSecond() float64 {
	if r.Tasks == 0 || r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Tasks) / r.Elapsed.Seconds()
}
