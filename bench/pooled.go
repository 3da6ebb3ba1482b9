package bench

import (
	"context"
	"sync"

	"github.com/utkarsh5026/threadbench/pool"
)

// Pooled runs tasks on a fixed set of workers from the pool package. With
// fewer workers than tasks, sleeping tasks queue up behind each other, which
// is the point of comparing it against the one-unit-per-task strategies.
type Pooled struct {
	opts []pool.Option

	mu      sync.Mutex
	pool    *pool.Pool
	started bool
	closed  bool
}

// NewPooled returns the pooled strategy. The pool is started lazily by the
// first Create.
func NewPooled(opts ...pool.Option) *Pooled {
	return &Pooled{opts: opts}
}

func (s *Pooled) Name() string {
	return "pooled workers"
}

// Workers returns the number of workers backing the strategy.
func (s *Pooled) Workers() int {
	return s.ensurePool().WorkerCount()
}

func (s *Pooled) ensurePool() *pool.Pool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pool == nil {
		s.pool = pool.New(s.opts...)
	}
	if !s.started && !s.closed {
		if err := s.pool.Start(context.Background()); err != nil {
			debugLog("pooled: start: %v", err)
		}
		s.started = true
	}
	return s.pool
}

func (s *Pooled) Create(body func()) Handle {
	return &pooledHandle{pool: s.ensurePool(), body: body}
}

// Close drains the pool, waiting for every submitted task.
func (s *Pooled) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if !s.started {
		return nil
	}
	return s.pool.Shutdown(0)
}

type pooledHandle struct {
	pool *pool.Pool
	body func()

	once     sync.Once
	future   *pool.Future
	fallback chan struct{}
}

func (h *pooledHandle) Start() {
	h.once.Do(func() {
		f, err := h.pool.Submit(func(context.Context) error {
			h.body()
			return nil
		})
		if err == nil {
			h.future = f
			return
		}

		// The pool refused the task; run it anyway so the barrier still
		// observes its completion.
		debugLog("pooled: submit: %v", err)
		h.fallback = make(chan struct{})
		go func() {
			defer close(h.fallback)
			h.body()
		}()
	})
}

func (h *pooledHandle) Join() {
	h.Start()

	if h.future != nil {
		if err := h.future.Wait(); err != nil {
			debugLog("pooled: task %d: %v", h.future.ID(), err)
		}
		return
	}
	<-h.fallback
}
