// Package bench measures how long it takes to launch, run and join a large
// number of independent, IO-bound tasks under different concurrency
// strategies.
//
// A Runner spawns its tasks through a Spawner, the {create, start, join}
// capability every strategy implements, waits for all of them at a barrier
// and returns an immutable Result. Each task simulates blocking IO by sleeping
// for a fixed duration.
//
// # Basic Usage
//
//	runner := bench.NewRunner(
//	    bench.WithTaskCount(10_000),
//	    bench.WithSleep(200*time.Millisecond),
//	)
//
//	threads := bench.NewOSThreads()
//	defer threads.Close()
//
//	res, err := runner.Run(ctx, threads)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Strategy, res.Millis())
//
// # Strategies
//
//   - NewOSThreads: heavyweight, one dedicated OS thread per task
//   - NewGoroutines: lightweight, one goroutine per task multiplexed by the Go scheduler
//   - NewPooled: tasks queued onto a fixed set of workers from the pool package
//   - NewPond: tasks queued onto an alitto/pond pool
//
// # Interruption
//
// Cancelling the context passed to Run interrupts sleeping tasks. The task
// swallows the interruption (ErrInterrupted) and finishes normally; the barrier
// still waits for every task and the Result reports how many were interrupted.
package bench
