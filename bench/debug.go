//go:build debug

package bench

import (
	"fmt"
	"log"
	"os"
)

var debugLogger = log.New(os.Stderr, "[THREADBENCH DEBUG] ", log.Ltime|log.Lmicroseconds|log.Lshortfile)

// debugLog logs debug messages when built with -tags debug
func debugLog(format string, args ...any) {
	_ = debugLogger.Output(2, fmt.Sprintf(format, args...))
}
