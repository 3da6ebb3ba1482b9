//go:build !debug

package bench

func debugLog(string, ...any) {}
