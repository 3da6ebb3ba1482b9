package bench

// Goroutines is the lightweight strategy: every task runs on its own
// goroutine, multiplexed by the Go scheduler over GOMAXPROCS OS threads.
// A sleeping task parks its goroutine and frees the thread for others.
type Goroutines struct{}

// NewGoroutines returns the lightweight strategy.
func NewGoroutines() *Goroutines {
	return &Goroutines{}
}

func (g *Goroutines) Name() string {
	return "virtual threads"
}

func (g *Goroutines) Create(body func()) Handle {
	return newLaunchHandle(body, func(run func()) {
		go run()
	})
}

func (g *Goroutines) Close() error {
	return nil
}
