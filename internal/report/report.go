// Package report renders benchmark results for humans: the one-line summary
// printed by the demo, and the colored comparison output of the compare tool.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/utkarsh5026/threadbench/bench"
)

// Line formats one measurement the way the demo prints it.
func Line(label string, millis int64) string {
	return fmt.Sprintf("Time taken using %s: %d milliseconds", label, millis)
}

// WriteLine writes the summary line of r, followed by a newline.
func WriteLine(w io.Writer, r bench.Result) error {
	_, err := fmt.Fprintln(w, Line(r.Strategy, r.Millis()))
	return err
}

// FormatNumber formats an integer with comma separators
func FormatNumber(n int) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := fmt.Sprintf("%d", n)
	var result strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			_, _ = result.WriteString(",")
		}
		_, _ = result.WriteRune(c)
	}
	return result.String()
}
