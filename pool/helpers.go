package pool

import (
	"errors"
	"time"
)

var (
	ErrNotStarted      = errors.New("pool not started")
	ErrAlreadyStarted  = errors.New("pool already started")
	ErrPoolShutdown    = errors.New("pool shut down")
	ErrShutdownTimeout = errors.New("error in shutting down: timeout reached")
	ErrFutureTimeout   = errors.New("timeout waiting for task result")
	ErrTaskPanic       = errors.New("worker panic")
)

// waitUntil blocks until d is closed or timeout elapses (0 = wait forever).
func waitUntil(d <-chan struct{}, timeout time.Duration) error {
	if timeout <= 0 {
		<-d
		return nil
	}

	select {
	case <-d:
		return nil
	case <-time.After(timeout):
		return ErrShutdownTimeout
	}
}
