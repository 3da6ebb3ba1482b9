// Package osthread wraps the small amount of platform specific code needed to
// reason about the OS threads backing goroutines: thread identity, locking a
// goroutine to its thread and pinning that thread to a CPU core.
package osthread

import (
	"errors"
	"fmt"
	"math/bits"
	"runtime"
)

// ErrCPUOutOfRange is returned when a core cannot be expressed in a
// single-word affinity mask.
var ErrCPUOutOfRange = errors.New("cpu index does not fit in affinity mask")

// Lock wires the calling goroutine to its current OS thread and, when pin is
// set, pins that thread to core workerID % NumCPU.
// Returns a cleanup function that should be deferred.
func Lock(workerID int, pin bool) func() {
	runtime.LockOSThread()
	if pin {
		_ = Pin(workerID)
	}

	return func() {
		runtime.UnlockOSThread()
	}
}

// Dedicate wires the calling goroutine to its OS thread for the rest of its
// life. The goroutine never unlocks, so the runtime terminates the thread when
// the goroutine exits instead of returning it to the scheduler.
func Dedicate(workerID int, pin bool) {
	runtime.LockOSThread()
	if pin {
		_ = Pin(workerID)
	}
}

// normalizeCPU maps any id onto [0, runtime.NumCPU()-1].
func normalizeCPU(cpuID int) int {
	numCPU := runtime.NumCPU()
	return ((cpuID % numCPU) + numCPU) % numCPU
}

// affinityMask returns the single-word mask selecting the core cpuID maps to.
func affinityMask(cpuID int) (uintptr, error) {
	return maskBit(normalizeCPU(cpuID))
}

// maskBit sets bit cpu. Cores past the word size (64 on 64-bit Windows,
// without processor groups) cannot be selected this way.
func maskBit(cpu int) (uintptr, error) {
	if cpu < 0 || cpu >= bits.UintSize {
		return 0, fmt.Errorf("%w: cpu %d", ErrCPUOutOfRange, cpu)
	}
	return uintptr(1) << uint(cpu), nil
}
