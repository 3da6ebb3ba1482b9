//go:build windows

package main

import (
	"os"

	"golang.org/x/sys/windows"
)

// enableWindowsANSI enables ANSI escape sequence support on Windows 10+
func enableWindowsANSI() {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		handle := windows.Handle(f.Fd())

		var mode uint32
		if err := windows.GetConsoleMode(handle, &mode); err != nil {
			continue
		}
		_ = windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
	}
}
