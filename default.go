package guilog

import (
	"sync"

	"github.com/mfbean/guilog/core"
)

var (
	defaultMu     sync.Mutex
	defaultLogger *Logger
)

// Default returns the process-wide logger, creating it on first use. The
// first access acquires the console session: an inherited console is reused,
// otherwise one is allocated and standard output is redirected into it.
//
// Hosts that prefer explicit wiring can build their own Logger with New and
// install it with SetDefault before anything logs.
func Default() *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		if releaseMode {
			defaultLogger = New()
		} else {
			defaultLogger = New(WithConsole())
		}
	}
	return defaultLogger
}

// SetDefault replaces the process-wide logger. It does not close the logger
// it replaces.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// Trace writes a trace-level event to the default logger.
func Trace(template string, args ...any) {
	Default().Trace(template, args...)
}

// Info writes an info-level event to the default logger.
func Info(template string, args ...any) {
	Default().Info(template, args...)
}

// Warn writes a warn-level event to the default logger.
func Warn(template string, args ...any) {
	Default().Warn(template, args...)
}

// Fail writes a fail-level event to the default logger.
func Fail(template string, args ...any) {
	Default().Fail(template, args...)
}

// SetMinimumLevel sets the default logger's minimum severity.
func SetMinimumLevel(level core.Level) {
	Default().SetMinimumLevel(level)
}

// CaptureError records err's platform error code on the default logger.
func CaptureError(err error) {
	Default().CaptureError(err)
}

// Close tears down the default logger's sinks, releasing any console the
// process acquired. Call it on the host's exit path.
func Close() error {
	defaultMu.Lock()
	l := defaultLogger
	defaultMu.Unlock()
	if l == nil {
		return nil
	}
	return l.Close()
}
