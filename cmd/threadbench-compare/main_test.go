package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/utkarsh5026/threadbench/bench"
)

func TestParseStrategies(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []string
		wantErr bool
	}{
		{"all", "threads,goroutines,pooled,pond", allStrategies, false},
		{"keeps order", "goroutines,threads", []string{"goroutines", "threads"}, false},
		{"trims and lowercases", " Threads , POND ", []string{"threads", "pond"}, false},
		{"drops duplicates", "pond,pond", []string{"pond"}, false},
		{"unknown", "threads,fibers", nil, true},
		{"empty", " , ", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseStrategies(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error = %v, got %v", tt.wantErr, err)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNewSpawner(t *testing.T) {
	opts := options{workers: 4, rate: 100, pin: true}

	want := map[string]string{
		"threads":    "traditional threads",
		"goroutines": "virtual threads",
		"pooled":     "pooled workers",
		"pond":       "pond pool",
	}

	for _, name := range allStrategies {
		t.Run(name, func(t *testing.T) {
			s, err := newSpawner(name, opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer s.Close()

			if s.Name() != want[name] {
				t.Errorf("expected %q, got %q", want[name], s.Name())
			}
		})
	}

	if _, err := newSpawner("fibers", opts); err == nil {
		t.Error("expected error for unknown strategy")
	}
}

func TestCompare(t *testing.T) {
	opts := options{
		tasks:        20,
		sleep:        20 * time.Millisecond,
		strategies:   allStrategies,
		workers:      20,
		trackThreads: true,
	}

	results, err := compare(context.Background(), opts, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != len(allStrategies) {
		t.Fatalf("expected %d results, got %d", len(allStrategies), len(results))
	}
	if results[0].Strategy != "traditional threads" || results[1].Strategy != "virtual threads" {
		t.Errorf("results out of order: %q, %q", results[0].Strategy, results[1].Strategy)
	}
	for _, res := range results {
		if res.Tasks != 20 || res.Millis() < 20 || res.Interrupted != 0 {
			t.Errorf("%s: unexpected result %+v", res.Strategy, res)
		}
	}
}

func TestCompare_Timeout(t *testing.T) {
	opts := options{
		tasks:      10,
		sleep:      5 * time.Second,
		strategies: []string{"goroutines", "pooled"},
		workers:    10,
		timeout:    20 * time.Millisecond,
	}

	start := time.Now()
	results, err := compare(context.Background(), opts, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Since(start) > 3*time.Second {
		t.Error("timeout did not interrupt sleeping tasks")
	}

	for _, res := range results {
		if res.Interrupted != 10 {
			t.Errorf("%s: expected 10 interrupted tasks, got %d", res.Strategy, res.Interrupted)
		}
	}
}

func TestPrintResults(t *testing.T) {
	results := []bench.Result{
		{Strategy: "traditional threads", Tasks: 100, Elapsed: 300 * time.Millisecond},
		{Strategy: "virtual threads", Tasks: 100, Elapsed: 201 * time.Millisecond, Interrupted: 3},
	}

	var buf bytes.Buffer
	if err := printResults(&buf, results); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Time taken using traditional threads: 300 milliseconds",
		"Time taken using virtual threads: 201 milliseconds",
		"3 of 100 tasks interrupted",
		"baseline",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
