package guilog

import (
	"sync"
	"time"

	"github.com/mfbean/guilog/core"
	"github.com/mfbean/guilog/selflog"
	"github.com/mfbean/guilog/syserr"
)

// Logger is a leveled, message-template logger. All of its methods are safe
// for concurrent use; each Write runs as one atomic unit, so output lines
// from concurrent calls never interleave and a level check never races a
// threshold change.
type Logger struct {
	mu          sync.Mutex
	levelSwitch *LevelSwitch
	sinks       []core.Sink
	errSource   syserr.Source
	lastShown   uint32
}

// New creates a logger from the given options. Without options the logger
// has no sinks, shows every level, and reads system error codes from the
// platform source.
func New(opts ...Option) *Logger {
	cfg := config{
		minimumLevel: core.TraceLevel,
		errSource:    syserr.System(),
	}
	if !releaseMode {
		for _, opt := range opts {
			opt(&cfg)
		}
	}

	ls := cfg.levelSwitch
	if ls == nil {
		ls = NewLevelSwitch(cfg.minimumLevel)
	}

	return &Logger{
		levelSwitch: ls,
		sinks:       cfg.sinks,
		errSource:   cfg.errSource,
	}
}

// Trace writes a trace-level log event.
func (l *Logger) Trace(template string, args ...any) {
	l.Write(core.TraceLevel, template, args...)
}

// Info writes an info-level log event.
func (l *Logger) Info(template string, args ...any) {
	l.Write(core.InfoLevel, template, args...)
}

// Warn writes a warn-level log event.
func (l *Logger) Warn(template string, args ...any) {
	l.Write(core.WarnLevel, template, args...)
}

// Fail writes a fail-level log event.
func (l *Logger) Fail(template string, args ...any) {
	l.Write(core.FailLevel, template, args...)
}

// Write writes a log event at the specified level.
//
// The pending system error code is consumed on every call, filtered or not,
// so a stale code is never reported against a later, unrelated message. A
// consumed code is attached to the event (and the event's sink renders it as
// a [SYS] line) only when it is non-zero and differs from the code most
// recently shown.
func (l *Logger) Write(level core.Level, template string, args ...any) {
	if releaseMode {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	code := l.errSource.Capture()

	if !l.levelSwitch.IsEnabled(level) {
		return
	}

	event := &core.LogEvent{
		Timestamp:       time.Now(),
		Level:           level,
		MessageTemplate: template,
		Args:            args,
	}

	if code != 0 && code != l.lastShown {
		event.SystemError = &core.SystemError{
			Code:    code,
			Message: syserr.Translate(code),
		}
		l.lastShown = code
	}

	for _, sink := range l.sinks {
		sink.Emit(event)
	}
}

// IsEnabled reports whether events at the given level currently pass the
// threshold.
func (l *Logger) IsEnabled(level core.Level) bool {
	if releaseMode {
		return false
	}
	return l.levelSwitch.IsEnabled(level)
}

// SetMinimumLevel sets the minimum severity that will be emitted from this
// point forward.
func (l *Logger) SetMinimumLevel(level core.Level) {
	l.levelSwitch.SetLevel(level)
}

// MinimumLevel returns the current minimum severity.
func (l *Logger) MinimumLevel() core.Level {
	return l.levelSwitch.Level()
}

// CaptureError records err's platform error code as pending, to be
// translated and shown alongside the next emitted event. Errors without a
// numeric code are ignored.
func (l *Logger) CaptureError(err error) {
	if releaseMode {
		return
	}
	if code := syserr.FromError(err); code != 0 {
		l.errSource.Set(code)
	}
}

// SetLastError records an error code as pending, mirroring the platform's
// own last-error slot on targets that lack one.
func (l *Logger) SetLastError(code uint32) {
	if releaseMode {
		return
	}
	l.errSource.Set(code)
}

// Close releases the logger's sinks, tearing down a console session the
// logger caused to be acquired. Call it on the host's exit path.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var firstErr error
	for _, sink := range l.sinks {
		if err := sink.Close(); err != nil {
			if selflog.IsEnabled() {
				selflog.Printf("[logger] sink close failed: %v", err)
			}
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
