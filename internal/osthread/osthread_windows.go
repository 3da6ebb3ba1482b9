//go:build windows

package osthread

import (
	"golang.org/x/sys/windows"
)

var (
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	setThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
)

// ID returns the Win32 id of the calling thread.
// Only stable while the goroutine is locked to its thread.
func ID() int {
	return int(windows.GetCurrentThreadId())
}

// Supported reports whether ID returns real thread ids on this platform.
func Supported() bool {
	return true
}

// Pin pins the current OS thread to a specific CPU core.
// Must be called after runtime.LockOSThread().
func Pin(cpuID int) error {
	// Bit N = CPU N
	mask, err := affinityMask(cpuID)
	if err != nil {
		return err
	}

	prevMask, _, callErr := setThreadAffinityMask.Call(uintptr(windows.CurrentThread()), mask)
	if prevMask == 0 {
		return callErr
	}
	return nil
}
