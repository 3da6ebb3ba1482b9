package bench

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/utkarsh5026/threadbench/internal/osthread"
)

// simulateIO blocks for d, standing in for a blocking IO call.
// It returns an error wrapping ErrInterrupted if ctx is done first.
func simulateIO(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrInterrupted, context.Cause(ctx))
	}
}

// taskState is shared by all task bodies of a single run.
type taskState struct {
	ctx         context.Context
	sleep       time.Duration
	hook        func(index int)
	tracker     *threadTracker
	interrupted atomic.Int64
}

// body builds the body of task index. An interruption is swallowed here and
// only counted; the task still completes.
func (s *taskState) body(index int) func() {
	return func() {
		if s.tracker != nil {
			s.tracker.record(osthread.ID())
		}

		if err := simulateIO(s.ctx, s.sleep); err != nil {
			if !errors.Is(err, ErrInterrupted) {
				panic(err)
			}
			s.interrupted.Add(1)
			debugLog("task %d: %v", index, err)
		}

		if s.hook != nil {
			s.hook(index)
		}
	}
}

// threadTracker collects the distinct OS thread ids observed by task bodies.
type threadTracker struct {
	mu  sync.Mutex
	ids map[int]struct{}
}

func newThreadTracker(sizeHint int) *threadTracker {
	return &threadTracker{ids: make(map[int]struct{}, sizeHint)}
}

func (t *threadTracker) record(id int) {
	if id == 0 {
		return
	}
	t.mu.Lock()
	t.ids[id] = struct{}{}
	t.mu.Unlock()
}

func (t *threadTracker) count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.ids)
}
