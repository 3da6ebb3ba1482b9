//go:build !linux && !windows

package osthread

// ID always returns 0; thread ids are not exposed on this platform.
func ID() int {
	return 0
}

// Supported reports whether ID returns real thread ids on this platform.
func Supported() bool {
	return false
}

// Pin is a no-op. CPU pinning is not available on this platform (macOS has
// no thread affinity API).
func Pin(cpuID int) error {
	return nil
}
