package bench

import (
	"errors"
	"sync"

	"github.com/alitto/pond/v2"
)

// Pond runs tasks on an alitto/pond pool capped at a maximum concurrency.
type Pond struct {
	maxConcurrency int
	pool           pond.Pool

	closeOnce sync.Once
}

// NewPond returns a strategy backed by a pond pool that runs at most
// maxConcurrency tasks at once (0 = unbounded).
func NewPond(maxConcurrency int) *Pond {
	return &Pond{
		maxConcurrency: maxConcurrency,
		pool:           pond.NewPool(maxConcurrency),
	}
}

func (s *Pond) Name() string {
	return "pond pool"
}

// MaxConcurrency returns the pool's concurrency cap.
func (s *Pond) MaxConcurrency() int {
	return s.maxConcurrency
}

func (s *Pond) Create(body func()) Handle {
	return &pondHandle{pool: s.pool, body: body}
}

// Close stops the pool and waits for every submitted task.
func (s *Pond) Close() error {
	s.closeOnce.Do(func() {
		s.pool.StopAndWait()
	})
	return nil
}

type pondHandle struct {
	pool pond.Pool
	body func()

	once sync.Once
	task pond.Task

	fallbackOnce sync.Once
	fallback     chan struct{}
}

func (h *pondHandle) Start() {
	h.once.Do(func() {
		if h.pool.Stopped() {
			debugLog("pond: pool stopped, running task on its own goroutine")
			h.runFallback()
			return
		}
		h.task = h.pool.Submit(h.body)
	})
}

func (h *pondHandle) Join() {
	h.Start()

	if h.task != nil {
		err := h.task.Wait()
		if !errors.Is(err, pond.ErrPoolStopped) {
			if err != nil {
				debugLog("pond: %v", err)
			}
			return
		}
		// The pool stopped between the check and the submit and refused the
		// task; run it anyway so the barrier still observes its completion.
		debugLog("pond: %v", err)
	}
	<-h.runFallback()
}

// runFallback runs the body on a plain goroutine, at most once.
func (h *pondHandle) runFallback() <-chan struct{} {
	h.fallbackOnce.Do(func() {
		h.fallback = make(chan struct{})
		go func() {
			defer close(h.fallback)
			h.body()
		}()
	})
	return h.fallback
}
