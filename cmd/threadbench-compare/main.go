// Command threadbench-compare runs the same sleep-task benchmark under every
// concurrency strategy and ranks them.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/utkarsh5026/threadbench/bench"
	"github.com/utkarsh5026/threadbench/internal/report"
	"github.com/utkarsh5026/threadbench/pool"
)

var allStrategies = []string{"threads", "goroutines", "pooled", "pond"}

type options struct {
	tasks        int
	sleep        time.Duration
	strategies   []string
	workers      int
	rate         float64
	pin          bool
	trackThreads bool
	timeout      time.Duration
}

func main() {
	// Enable ANSI escape sequences on Windows for progress bar support
	enableWindowsANSI()

	tasksFlag := flag.Int("tasks", bench.DefaultTaskCount, "Number of tasks spawned per strategy")
	sleepFlag := flag.Duration("sleep", bench.DefaultSleep, "Simulated IO duration of each task")
	strategyFlag := flag.String("strategies", strings.Join(allStrategies, ","), "Comma separated strategies to run: "+strings.Join(allStrategies, ", "))
	workersFlag := flag.Int("workers", 1000, "Concurrency of the pooled and pond strategies")
	rateFlag := flag.Float64("rate", 0, "Max tasks started per second by the pooled strategy (0 = unlimited)")
	pinFlag := flag.Bool("pin", false, "Pin each OS thread of the threads strategy to a CPU core")
	trackFlag := flag.Bool("track-threads", false, "Count distinct OS threads used by each strategy")
	timeoutFlag := flag.Duration("timeout", 0, "Interrupt a strategy's sleeping tasks after this long (0 = never)")
	flag.Parse()

	strategies, err := parseStrategies(*strategyFlag)
	if err != nil {
		report.Errorf("Error: %v", err)
		fmt.Fprintln(os.Stderr, "Available strategies:", allStrategies)
		os.Exit(1)
	}

	opts := options{
		tasks:        *tasksFlag,
		sleep:        *sleepFlag,
		strategies:   strategies,
		workers:      *workersFlag,
		rate:         *rateFlag,
		pin:          *pinFlag,
		trackThreads: *trackFlag,
		timeout:      *timeoutFlag,
	}

	report.PrintConfig(os.Stdout, report.Config{
		Tasks:      opts.tasks,
		Sleep:      opts.sleep,
		Strategies: opts.strategies,
		Workers:    opts.workers,
		Timeout:    opts.timeout,
	})

	_, _ = report.Bold.Println("Running Benchmarks...")
	fmt.Println()

	bar := report.NewProgress(len(strategies))
	results, err := compare(context.Background(), opts, bar)
	if err != nil {
		report.Errorf("Error: %v", err)
		os.Exit(1)
	}

	report.SectionHeader(os.Stdout, "📊 SLEEP TASK RESULTS - Strategy Comparison",
		fmt.Sprintf("%s tasks per strategy, each blocking for %v", report.FormatNumber(opts.tasks), opts.sleep))
	if err := printResults(os.Stdout, results); err != nil {
		report.Errorf("Error rendering results: %v", err)
		os.Exit(1)
	}
	_, _ = report.Green.Printf("✅ Successfully tested %d/%d strategies\n", len(results), len(strategies))
}

// parseStrategies validates a comma separated strategy list, keeping its order.
func parseStrategies(list string) ([]string, error) {
	var out []string
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if !slices.Contains(allStrategies, name) {
			return nil, fmt.Errorf("unknown strategy '%s'", name)
		}
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no strategies selected")
	}
	return out, nil
}

func newSpawner(name string, opts options) (bench.Spawner, error) {
	switch name {
	case "threads":
		var threadOpts []bench.ThreadOption
		if opts.pin {
			threadOpts = append(threadOpts, bench.WithCPUAffinity())
		}
		return bench.NewOSThreads(threadOpts...), nil
	case "goroutines":
		return bench.NewGoroutines(), nil
	case "pooled":
		poolOpts := []pool.Option{
			pool.WithWorkerCount(opts.workers),
			pool.WithTaskBuffer(opts.workers),
		}
		if opts.rate > 0 {
			poolOpts = append(poolOpts, pool.WithRateLimit(opts.rate, max(1, runtime.GOMAXPROCS(0))))
		}
		return bench.NewPooled(poolOpts...), nil
	case "pond":
		return bench.NewPond(opts.workers), nil
	default:
		return nil, fmt.Errorf("unknown strategy '%s'", name)
	}
}

// compare runs every selected strategy in order, each in its own measurement
// scope, and returns their results in the same order.
func compare(ctx context.Context, opts options, bar *progressbar.ProgressBar) ([]bench.Result, error) {
	runnerOpts := []bench.Option{
		bench.WithTaskCount(opts.tasks),
		bench.WithSleep(opts.sleep),
	}
	if opts.trackThreads {
		runnerOpts = append(runnerOpts, bench.WithThreadTracking())
	}
	runner := bench.NewRunner(runnerOpts...)

	results := make([]bench.Result, 0, len(opts.strategies))
	for _, name := range opts.strategies {
		spawner, err := newSpawner(name, opts)
		if err != nil {
			return results, err
		}

		if bar != nil {
			bar.Describe(fmt.Sprintf("Testing: %s", spawner.Name()))
		}

		res, err := runOne(ctx, runner, spawner, opts.timeout)
		if err != nil {
			return results, fmt.Errorf("%s: %w", spawner.Name(), err)
		}
		results = append(results, res)

		if bar != nil {
			_ = bar.Add(1)
		}
		runtime.GC()
	}
	return results, nil
}

func runOne(ctx context.Context, runner *bench.Runner, spawner bench.Spawner, timeout time.Duration) (bench.Result, error) {
	defer spawner.Close()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return runner.Run(ctx, spawner)
}

func printResults(w io.Writer, results []bench.Result) error {
	for _, res := range results {
		if err := report.WriteLine(w, res); err != nil {
			return err
		}
		if res.Interrupted > 0 {
			_, _ = report.Red.Fprintf(w, "  ⚠️  %s of %s tasks interrupted before waking\n",
				report.FormatNumber(res.Interrupted), report.FormatNumber(res.Tasks))
		}
	}
	_, _ = fmt.Fprintln(w)
	return report.Table(w, results)
}
