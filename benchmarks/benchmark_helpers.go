package benchmarks

import (
	"runtime"

	"github.com/utkarsh5026/threadbench/bench"
	"github.com/utkarsh5026/threadbench/pool"
)

// strategyConfig defines a benchmark configuration for a concurrency strategy
type strategyConfig struct {
	name string
	new  func() bench.Spawner
}

// getAllStrategies returns every strategy, pools sized to workerCount
func getAllStrategies(workerCount int) []strategyConfig {
	return []strategyConfig{
		{
			name: "OSThreads",
			new:  func() bench.Spawner { return bench.NewOSThreads() },
		},
		{
			name: "OSThreads_Pinned",
			new:  func() bench.Spawner { return bench.NewOSThreads(bench.WithCPUAffinity()) },
		},
		{
			name: "Goroutines",
			new:  func() bench.Spawner { return bench.NewGoroutines() },
		},
		{
			name: "Pooled",
			new: func() bench.Spawner {
				return bench.NewPooled(pool.WithWorkerCount(workerCount), pool.WithTaskBuffer(workerCount))
			},
		},
		{
			name: "Pooled_LockedThreads",
			new: func() bench.Spawner {
				return bench.NewPooled(pool.WithWorkerCount(workerCount), pool.WithLockedThreads(false))
			},
		},
		{
			name: "Pond",
			new:  func() bench.Spawner { return bench.NewPond(workerCount) },
		},
	}
}

// getBasicStrategies returns the two strategies the demo compares
func getBasicStrategies() []strategyConfig {
	return []strategyConfig{
		{
			name: "OSThreads",
			new:  func() bench.Spawner { return bench.NewOSThreads() },
		},
		{
			name: "Goroutines",
			new:  func() bench.Spawner { return bench.NewGoroutines() },
		},
	}
}

// getCPUBoundPoolStrategies returns pooled strategies sized to the CPU count,
// where queuing dominates and workers are few
func getCPUBoundPoolStrategies() []strategyConfig {
	n := runtime.NumCPU()
	return []strategyConfig{
		{
			name: "Pooled_NumCPU",
			new:  func() bench.Spawner { return bench.NewPooled(pool.WithWorkerCount(n)) },
		},
		{
			name: "Pond_NumCPU",
			new:  func() bench.Spawner { return bench.NewPond(n) },
		},
	}
}
