package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/utkarsh5026/threadbench/bench"
)

// Ranked is a result with its position among the compared strategies.
type Ranked struct {
	bench.Result
	Rank int
}

// Rank orders results from fastest to slowest. The input is left untouched.
func Rank(results []bench.Result) []Ranked {
	ranked := make([]Ranked, len(results))
	for i, r := range results {
		ranked[i] = Ranked{Result: r}
	}

	slices.SortStableFunc(ranked, func(a, b Ranked) int {
		return cmp.Compare(a.Elapsed, b.Elapsed)
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// Table renders the strategy comparison table to w.
func Table(w io.Writer, results []bench.Result) error {
	if len(results) == 0 {
		return nil
	}

	ranked := Rank(results)
	fastestTime := ranked[0].Elapsed

	table := tablewriter.NewWriter(w)
	table.Header("Rank", "Strategy", "Time", "Tasks/sec", "OS Threads", "Interrupted", "vs Fastest")

	for _, r := range ranked {
		_ = table.Append(
			getRankIcon(r.Rank),
			r.Strategy,
			r.Elapsed.Round(time.Millisecond).String(),
			FormatNumber(int(r.TasksPerSecond())),
			formatThreads(r.Threads),
			FormatNumber(r.Interrupted),
			getVsFastestStr(r.Elapsed, fastestTime, r.Rank),
		)
	}

	return table.Render()
}

func getRankIcon(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d", rank)
	}
}

// getVsFastestStr calculates and formats the "vs Fastest" comparison string
func getVsFastestStr(totalTime, fastestTime time.Duration, rank int) string {
	if rank == 1 || fastestTime <= 0 {
		return "baseline"
	}
	vsFastest := float64(totalTime) / float64(fastestTime)
	return fmt.Sprintf("%.2fx", vsFastest)
}

func formatThreads(n int) string {
	if n == 0 {
		return "-"
	}
	return FormatNumber(n)
}
