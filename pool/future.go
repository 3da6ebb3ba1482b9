package pool

import (
	"sync"
	"time"
)

// Future is the pending outcome of a submitted task.
// It completes exactly once, when the task returns, panics, or is dropped
// because the pool's context was cancelled.
type Future struct {
	id   int64
	done chan struct{}
	err  error
	once sync.Once
}

func newFuture(id int64) *Future {
	return &Future{
		id:   id,
		done: make(chan struct{}),
	}
}

func (f *Future) complete(err error) {
	f.once.Do(func() {
		f.err = err
		close(f.done)
	})
}

// ID returns the submission sequence number of the task, starting at 1.
func (f *Future) ID() int64 {
	return f.id
}

// Wait blocks until the task has finished and returns its error.
func (f *Future) Wait() error {
	<-f.done
	return f.err
}

// WaitTimeout is like Wait but gives up after timeout with ErrFutureTimeout.
// The task keeps running; a later Wait still observes its result.
func (f *Future) WaitTimeout(timeout time.Duration) error {
	select {
	case <-f.done:
		return f.err
	case <-time.After(timeout):
		return ErrFutureTimeout
	}
}

// Done returns a channel that is closed once the task has finished.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// IsReady reports whether the task has finished, without blocking.
func (f *Future) IsReady() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
