//go:build linux

package osthread

import (
	"golang.org/x/sys/unix"
)

// ID returns the kernel thread id of the calling thread.
// Only stable while the goroutine is locked to its thread.
func ID() int {
	return unix.Gettid()
}

// Supported reports whether ID returns real thread ids on this platform.
func Supported() bool {
	return true
}

// Pin pins the current OS thread to a specific CPU core.
// Must be called after runtime.LockOSThread().
func Pin(cpuID int) error {
	var mask unix.CPUSet
	mask.Zero()
	mask.Set(normalizeCPU(cpuID))

	return unix.SchedSetaffinity(0, &mask) // 0 = current thread
}
