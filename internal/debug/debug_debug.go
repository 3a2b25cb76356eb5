//go:build debug

package debug

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "parsec: ", log.Lmicroseconds)

// Printf logs a diagnostic message.  It is only compiled in with the debug
// build tag.
func Printf(msg string, args ...any) {
	logger.Printf(msg, args...)
}

const On = true
