package bench

import (
	"math"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/utkarsh5026/threadbench/internal/osthread"
)

// threadHeadroom is kept on top of the task count when raising the runtime's
// thread limit, for the scheduler's own threads and any other goroutine that
// blocks in a syscall during the run.
const threadHeadroom = 512

// OSThreads is the heavyweight strategy: every task runs on a goroutine that is
// locked to a dedicated OS thread for its whole life. The goroutine never
// unlocks, so the runtime creates a thread for it and destroys that thread
// when the task returns. A sleeping task keeps its thread occupied.
type OSThreads struct {
	pin  bool
	next atomic.Int64

	mu    sync.Mutex
	limit int
}

// ThreadOption configures the heavyweight strategy.
type ThreadOption func(*OSThreads)

// WithCPUAffinity pins the thread of the i-th started task to core i % NumCPU.
// Pinning is a no-op on platforms without a thread affinity API.
func WithCPUAffinity() ThreadOption {
	return func(s *OSThreads) {
		s.pin = true
	}
}

// NewOSThreads returns the heavyweight strategy.
func NewOSThreads(opts ...ThreadOption) *OSThreads {
	s := &OSThreads{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *OSThreads) Name() string {
	return "traditional threads"
}

func (s *OSThreads) Create(body func()) Handle {
	return newLaunchHandle(body, func(run func()) {
		workerID := int(s.next.Add(1) - 1)
		go func() {
			osthread.Dedicate(workerID, s.pin)
			run()
		}()
	})
}

// Reserve raises the runtime's maximum thread count so that n tasks can hold
// a thread each at the same time. The Go default (10,000) would otherwise
// abort the process at this benchmark's default scale.
//
// The limit is process-wide and is only ever raised. It is not restored on
// Close: dedicated threads are torn down after their task reports completion,
// and lowering the limit while they are still exiting aborts the process.
func (s *OSThreads) Reserve(n int) {
	want := n + threadHeadroom

	s.mu.Lock()
	defer s.mu.Unlock()

	if want <= s.limit {
		return
	}

	// Raising is always safe; read the current limit that way, then settle.
	prev := debug.SetMaxThreads(math.MaxInt32)
	s.limit = max(prev, want)
	debug.SetMaxThreads(s.limit)

	debugLog("thread limit set to %d (was %d)", s.limit, prev)
}

func (s *OSThreads) Close() error {
	return nil
}
