package osthread

import (
	"errors"
	"math/bits"
	"runtime"
	"sync"
	"testing"
)

func TestNormalizeCPU(t *testing.T) {
	n := runtime.NumCPU()

	tests := []struct {
		name string
		in   int
		want int
	}{
		{"zero", 0, 0},
		{"in range", n - 1, n - 1},
		{"wraps", n, 0},
		{"negative", -1, n - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeCPU(tt.in); got != tt.want {
				t.Errorf("normalizeCPU(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestMaskBit(t *testing.T) {
	tests := []struct {
		name    string
		cpu     int
		want    uintptr
		wantErr bool
	}{
		{"first core", 0, 1, false},
		{"fourth core", 3, 8, false},
		{"last bit", bits.UintSize - 1, uintptr(1) << (bits.UintSize - 1), false},
		{"past word size", bits.UintSize, 0, true},
		{"large machine", 100, 0, true},
		{"negative", -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := maskBit(tt.cpu)
			if tt.wantErr {
				if !errors.Is(err, ErrCPUOutOfRange) {
					t.Fatalf("expected ErrCPUOutOfRange, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("maskBit(%d) = %#x, want %#x", tt.cpu, got, tt.want)
			}
		})
	}
}

func TestAffinityMask_NonZero(t *testing.T) {
	if runtime.NumCPU() > bits.UintSize {
		t.Skip("more cores than mask bits")
	}

	for _, id := range []int{0, 1, runtime.NumCPU(), -1} {
		mask, err := affinityMask(id)
		if err != nil {
			t.Fatalf("affinityMask(%d): unexpected error: %v", id, err)
		}
		if mask == 0 {
			t.Errorf("affinityMask(%d) selected no core", id)
		}
	}
}

func TestLock_StableID(t *testing.T) {
	if !Supported() {
		t.Skip("thread ids not supported on this platform")
	}

	done := make(chan [2]int)
	go func() {
		unlock := Lock(0, false)
		defer unlock()

		first := ID()
		runtime.Gosched()
		done <- [2]int{first, ID()}
	}()

	ids := <-done
	if ids[0] != ids[1] {
		t.Errorf("locked goroutine moved threads: %d -> %d", ids[0], ids[1])
	}
	if ids[0] <= 0 {
		t.Errorf("expected positive thread id, got %d", ids[0])
	}
}

func TestDedicate_DistinctThreads(t *testing.T) {
	if !Supported() {
		t.Skip("thread ids not supported on this platform")
	}

	const n = 4
	ids := make([]int, n)

	var ready, wg sync.WaitGroup
	ready.Add(n)
	release := make(chan struct{})

	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Dedicate(i, false)
			ids[i] = ID()
			ready.Done()
			<-release
		}()
	}

	ready.Wait()
	close(release)
	wg.Wait()

	seen := make(map[int]bool, n)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("two dedicated goroutines shared thread %d", id)
		}
		seen[id] = true
	}
}
