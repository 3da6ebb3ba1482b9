package pool

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// Task is a unit of work accepted by the pool. The context is the pool's
// context; it is cancelled when the pool is torn down.
type Task func(ctx context.Context) error

// Pool represents a long-running, reusable worker pool that can be started and then
// accept asynchronous task submissions. It maintains worker goroutines and tracks state
// for lifecycle management and safe concurrent usage.
type Pool struct {
	config *poolConfig
	mu     sync.RWMutex
	state  *poolState
}

// poolState holds the runtime state for a started pool.
type poolState struct {
	ctx           context.Context
	cancel        context.CancelFunc
	started       atomic.Bool
	shutdown      atomic.Bool
	taskIDCounter atomic.Int64
	tasks         chan *submittedTask
	done          chan struct{} // Closed when all workers have finished
}

type submittedTask struct {
	fn     Task
	future *Future
}

// New creates a new Pool with the specified configuration options.
// This does NOT start any workers immediately; use Start to begin processing tasks.
//
// Default configuration:
//   - workerCount: runtime.GOMAXPROCS(0)
//   - taskBuffer: equal to workerCount
//   - no rate limiting, workers not locked to threads
//
// Example:
//
//	p := New(WithWorkerCount(8), WithTaskBuffer(32))
//	_ = p.Start(ctx)
//	future, _ := p.Submit(task)
func New(opts ...Option) *Pool {
	return &Pool{
		config: createConfig(opts...),
	}
}

// WorkerCount returns the number of workers the pool runs once started.
func (p *Pool) WorkerCount() int {
	return p.config.workerCount
}

// Start launches the persistent workers. ctx bounds the lifetime of every task
// the pool runs.
//
// Returns:
//   - error: ErrAlreadyStarted if the pool was started before
func (p *Pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != nil && p.state.started.Load() {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	state := &poolState{
		ctx:    ctx,
		cancel: cancel,
		tasks:  make(chan *submittedTask, p.config.taskBuffer),
		done:   make(chan struct{}),
	}

	p.state = state
	state.started.Store(true)

	var g errgroup.Group
	for i := range p.config.workerCount {
		g.Go(func() error {
			return p.worker(ctx, i, state.tasks)
		})
	}

	go func() {
		if err := g.Wait(); err != nil {
			debugLog("workers exited with error: %v", err)
		}
		close(state.done)
	}()

	debugLog("started %d workers (buffer %d)", p.config.workerCount, p.config.taskBuffer)
	return nil
}

// Submit submits a single task to the pool for asynchronous processing.
// It blocks while the task queue is full.
//
// Returns:
//   - future: A Future for waiting on the task
//   - error: Non-nil if pool is not started, shut down, or its context is cancelled
//
// Example:
//
//	future, err := p.Submit(work)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = future.Wait()
func (p *Pool) Submit(fn Task) (*Future, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	state := p.state
	if state == nil || !state.started.Load() {
		return nil, ErrNotStarted
	}

	if state.shutdown.Load() {
		return nil, ErrPoolShutdown
	}

	st := &submittedTask{
		fn:     fn,
		future: newFuture(state.taskIDCounter.Add(1)),
	}

	select {
	case state.tasks <- st:
		return st.future, nil
	case <-state.ctx.Done():
		return nil, fmt.Errorf("submit task %d: %w", st.future.id, state.ctx.Err())
	}
}

// Shutdown gracefully shuts down the pool.
// It stops accepting tasks and waits for queued and in-flight tasks to complete.
//
// Parameters:
//   - timeout: Maximum duration to wait for graceful shutdown (0 = wait forever)
//
// Returns:
//   - error: Non-nil if pool not started, already shut down, or timeout exceeded.
//     On timeout the pool's context is cancelled so remaining tasks are dropped.
//
// Example:
//
//	p.Start(ctx)
//	defer p.Shutdown(10 * time.Second)
func (p *Pool) Shutdown(timeout time.Duration) error {
	p.mu.Lock()
	state := p.state
	if state == nil || !state.started.Load() {
		p.mu.Unlock()
		return ErrNotStarted
	}

	if !state.shutdown.CompareAndSwap(false, true) {
		p.mu.Unlock()
		return ErrPoolShutdown
	}

	// Submit holds the read lock while sending, so no send can race this close.
	close(state.tasks)
	p.mu.Unlock()

	err := waitUntil(state.done, timeout)
	state.cancel()
	return err
}
