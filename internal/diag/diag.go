// Package diag provides the ambient debug-logging toggle shared across
// the dart and cmap packages, in the same spirit as the CLI's
// SENTRA_DEV_PATH-style environment switches.
package diag

import (
	"log"
	"os"
	"sync"
)

var (
	once    sync.Once
	enabled bool
	logger  = log.New(os.Stderr, "ngonmap: ", log.LstdFlags)
)

func initEnabled() {
	enabled = os.Getenv("CMAP_DEBUG") != ""
}

// Enabled reports whether CMAP_DEBUG is set in the environment.
func Enabled() bool {
	once.Do(initEnabled)
	return enabled
}

// Debugf logs a formatted debug message when CMAP_DEBUG is set. It is a
// no-op otherwise, so callers can leave diagnostics in hot paths.
func Debugf(format string, args ...interface{}) {
	if Enabled() {
		logger.Printf(format, args...)
	}
}

// Warnf always logs; used for conditions callers should notice even
// outside debug mode (e.g. a rolled-back load).
func Warnf(format string, args ...interface{}) {
	logger.Printf("warning: "+format, args...)
}

// Assert panics with the formatted message when CMAP_DEBUG is set and
// cond is false. It is a no-op in non-debug builds, matching the
// teacher's pattern of compiling precondition checks out of release
// paths rather than paying for them unconditionally.
func Assert(cond bool, format string, args ...interface{}) {
	if !Enabled() || cond {
		return
	}
	logger.Panicf("assertion failed: "+format, args...)
}
