// Command threadbench compares the time it takes to launch, run and join
// 10,000 tasks that each block for 200ms, first with one OS thread per task
// and then with one goroutine per task.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/utkarsh5026/threadbench/bench"
	"github.com/utkarsh5026/threadbench/internal/report"
)

const (
	numTasks  = 10_000                 // Number of IO-bound tasks
	sleepTime = 200 * time.Millisecond // Simulated IO per task
)

func main() {
	if err := run(context.Background(), os.Stdout, numTasks, sleepTime); err != nil {
		log.Fatalf("threadbench: %v", err)
	}
}

// run measures the heavyweight strategy, then the lightweight one, writing one
// line per strategy to w as soon as its measurement is known.
func run(ctx context.Context, w io.Writer, tasks int, sleep time.Duration) error {
	runner := bench.NewRunner(bench.WithTaskCount(tasks), bench.WithSleep(sleep))

	for _, spawner := range []bench.Spawner{bench.NewOSThreads(), bench.NewGoroutines()} {
		res, err := runner.Run(ctx, spawner)
		if err != nil {
			return fmt.Errorf("%s: %w", spawner.Name(), err)
		}
		if err := spawner.Close(); err != nil {
			return fmt.Errorf("%s: close: %w", spawner.Name(), err)
		}
		if err := report.WriteLine(w, res); err != nil {
			return err
		}
	}
	return nil
}
