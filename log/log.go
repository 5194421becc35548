// Package log holds the zap logger used by every package of the library.
//
// The library never logs above debug level; it reports decisions it takes on
// the caller's behalf (cache misses, uncached failures, recovered errors) so
// they can be traced when a logger is installed. The default logger is a no-op.
package log

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// L returns the library logger.
func L() *zap.Logger {
	return current.Load()
}

// SetLogger installs logger as the library logger and returns a function
// restoring the previous one. A nil logger installs a no-op logger.
func SetLogger(logger *zap.Logger) func() {
	if logger == nil {
		logger = zap.NewNop()
	}
	prev := current.Swap(logger)
	return func() {
		current.Store(prev)
	}
}

// Or returns logger, or the library logger when logger is nil.
func Or(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return L()
	}
	return logger
}

// NewTestLogger builds a development console logger writing to stdout at debug level.
func NewTestLogger() *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return zap.New(consoleCore)
}
