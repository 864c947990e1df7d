// Package debug exposes a process wide debug logger. Output is disabled until
// Toggle(true) is called.
package debug

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	enabled int32 = 0

	mutex  sync.Mutex
	logger = zap.NewNop()
)

// Toggle turns on/off debug mode. Turning it on installs a development logger
// writing to stderr unless one was configured with SetLogger.
func Toggle(on bool) {
	val := int32(0)
	if on {
		val = 1
		mutex.Lock()
		if !logger.Core().Enabled(zap.DebugLevel) {
			if l, err := zap.NewDevelopment(); err == nil {
				logger = l
			}
		}
		mutex.Unlock()
	}
	atomic.StoreInt32(&enabled, val)
}

// Enabled reports whether debug mode is on.
func Enabled() bool {
	return atomic.LoadInt32(&enabled) == 1
}

// SetLogger replaces the logger used when debug mode is on.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mutex.Lock()
	logger = l
	mutex.Unlock()
}

// Logger returns the logger used when debug mode is on.
func Logger() *zap.Logger {
	mutex.Lock()
	defer mutex.Unlock()
	return logger
}

// Do executes a function if debug is enabled, usually for side effects.
func Do(f func()) {
	if !Enabled() {
		return
	}
	f()
}

// Format a log line and writes it to the logger if debug is enabled
func Format(format string, args ...interface{}) {
	if !Enabled() {
		return
	}
	Logger().Sugar().Debugf(format, args...)
}
