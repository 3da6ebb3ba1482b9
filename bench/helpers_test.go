package bench

import (
	"testing"

	"github.com/utkarsh5026/threadbench/pool"
)

// strategyConfig defines a test configuration for a concurrency strategy
type strategyConfig struct {
	name string
	new  func() Spawner
}

// getAllStrategies returns every strategy, with pools sized so that workers
// outnumber the tasks used in tests.
func getAllStrategies(workers int) []strategyConfig {
	return []strategyConfig{
		{
			name: "OSThreads",
			new:  func() Spawner { return NewOSThreads() },
		},
		{
			name: "Goroutines",
			new:  func() Spawner { return NewGoroutines() },
		},
		{
			name: "Pooled",
			new: func() Spawner {
				return NewPooled(pool.WithWorkerCount(workers))
			},
		},
		{
			name: "Pond",
			new:  func() Spawner { return NewPond(workers) },
		},
	}
}

func runStrategyTest(t *testing.T, testFunc func(t *testing.T, s Spawner), workers int) {
	for _, strategy := range getAllStrategies(workers) {
		t.Run(strategy.name, func(t *testing.T) {
			s := strategy.new()
			defer func() {
				if err := s.Close(); err != nil {
					t.Errorf("close %s: %v", s.Name(), err)
				}
			}()
			testFunc(t, s)
		})
	}
}
