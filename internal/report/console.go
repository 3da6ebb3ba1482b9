package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

var (
	Bold  = color.New(color.Bold)
	Red   = color.New(color.FgRed)
	Green = color.New(color.FgGreen)
)

// SectionHeader prints a bold, ruled title followed by optional description lines.
func SectionHeader(w io.Writer, title string, descriptions ...string) {
	_, _ = fmt.Fprintln(w)
	_, _ = Bold.Fprintln(w, "═══════════════════════════════════════════════════════════")
	_, _ = Bold.Fprintln(w, title)
	_, _ = Bold.Fprintln(w, "═══════════════════════════════════════════════════════════")
	for _, desc := range descriptions {
		_, _ = fmt.Fprintln(w, desc)
	}
	_, _ = fmt.Fprintln(w)
}

// Errorf prints a red error line to stderr.
func Errorf(format string, a ...any) {
	_, _ = Red.Fprintf(os.Stderr, format+"\n", a...)
}

// Config describes a comparison run for the configuration header.
type Config struct {
	Tasks      int
	Sleep      time.Duration
	Strategies []string
	Workers    int
	Timeout    time.Duration
}

// PrintConfig prints the configuration header of a comparison run.
func PrintConfig(w io.Writer, cfg Config) {
	_, _ = Bold.Fprintln(w, "⚙️  Configuration:")
	_, _ = fmt.Fprintf(w, "  Tasks:            %s per strategy\n", FormatNumber(cfg.Tasks))
	_, _ = fmt.Fprintf(w, "  Simulated IO:     %v per task\n", cfg.Sleep)
	_, _ = fmt.Fprintf(w, "  Strategies:       %d (%v)\n", len(cfg.Strategies), cfg.Strategies)
	_, _ = fmt.Fprintf(w, "  Pool workers:     %s\n", FormatNumber(cfg.Workers))
	if cfg.Timeout > 0 {
		_, _ = fmt.Fprintf(w, "  Timeout:          %v per strategy\n", cfg.Timeout)
	}
	_, _ = fmt.Fprintln(w)
}

// NewProgress returns a progress bar over total strategies, drawn on stderr
// so stdout keeps only results.
func NewProgress(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Testing strategies"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
