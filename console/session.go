// Package console manages the process's console session.
//
// Graphical applications usually start without an attached console. On first
// acquisition this package detects an existing console, or allocates one,
// redirects the process's standard output into it, and enables virtual
// terminal processing so ANSI colors render. The session records which of
// these resources it created, and teardown releases only those.
package console

import (
	"io"
	"os"
	"sync"
)

const enableVirtualTerminalProcessing = 0x0004

// Notifier surfaces console setup and teardown failures to the user.
type Notifier interface {
	// NotifyError reports a failure that leaves the session degraded.
	NotifyError(title, message string)

	// NotifyWarning reports a non-fatal problem, such as color output
	// being unavailable.
	NotifyWarning(title, message string)
}

// api abstracts the platform console calls so the session state machine can
// be exercised with a fake.
type api interface {
	// consoleAttached reports whether the process already has a valid
	// console output handle.
	consoleAttached() bool

	// allocConsole creates a new console for the process.
	allocConsole() error

	// freeConsole releases the process's console.
	freeConsole() error

	// redirectStdout reopens the process's standard output onto the
	// console's output channel.
	redirectStdout() (*os.File, error)

	// outputHandle returns the raw console output handle.
	outputHandle() (uintptr, error)

	// getMode reads the console display mode.
	getMode(h uintptr) (uint32, error)

	// setMode writes the console display mode.
	setMode(h uintptr, mode uint32) error
}

// Session is the process's console session. Exactly one session exists per
// process; obtain it through Acquire.
type Session struct {
	api      api
	notifier Notifier

	out    io.Writer
	conout *os.File

	handle      uintptr
	origMode    uint32
	modeChanged bool

	allocated bool
	reopened  bool
	colorOK   bool
	degraded  bool

	closeOnce sync.Once
	closeErr  error
}

var (
	acquireOnce sync.Once
	shared      *Session
)

// Option configures session acquisition.
type Option func(*acquireConfig)

type acquireConfig struct {
	notifier Notifier
}

// WithNotifier replaces the platform's default failure notifier.
func WithNotifier(n Notifier) Option {
	return func(c *acquireConfig) {
		c.notifier = n
	}
}

// Acquire returns the process's console session, establishing it on first
// call. Acquisition never fails: when no console can be attached the session
// is degraded and its writer discards output, after surfacing exactly one
// user-visible notification. Options are honored only by the first caller.
func Acquire(opts ...Option) *Session {
	acquireOnce.Do(func() {
		cfg := acquireConfig{notifier: platformNotifier()}
		for _, opt := range opts {
			opt(&cfg)
		}
		shared = acquire(platformAPI(), cfg.notifier)
	})
	return shared
}

// acquire runs the acquisition sequence against the given platform calls.
func acquire(a api, n Notifier) *Session {
	s := &Session{api: a, notifier: n, out: os.Stdout}

	if !a.consoleAttached() {
		if err := a.allocConsole(); err != nil {
			n.NotifyError("guilog", "Failed to allocate a console.")
			s.out = io.Discard
			s.degraded = true
			return s
		}
		s.allocated = true

		f, err := a.redirectStdout()
		if err != nil {
			n.NotifyError("guilog", "Failed to reopen standard output.")
			s.out = io.Discard
			s.degraded = true
			return s
		}
		s.reopened = true
		s.conout = f
		s.out = f
	}

	h, err := a.outputHandle()
	if err != nil {
		n.NotifyWarning("guilog", "Failed to get the console output handle. Output won't be colored.")
		return s
	}
	s.handle = h

	mode, err := a.getMode(h)
	if err != nil {
		n.NotifyWarning("guilog", "Failed to read the console mode. Output won't be colored.")
		return s
	}

	if mode&enableVirtualTerminalProcessing == 0 {
		if err := a.setMode(h, mode|enableVirtualTerminalProcessing); err != nil {
			n.NotifyWarning("guilog", "Failed to enable virtual terminal processing. Output won't be colored.")
			return s
		}
		s.origMode = mode
		s.modeChanged = true
	}
	s.colorOK = true

	return s
}

// Writer returns the session's output destination. Degraded sessions return
// a writer that discards everything.
func (s *Session) Writer() io.Writer {
	return s.out
}

// ColorCapable reports whether the session's console renders ANSI colors.
func (s *Session) ColorCapable() bool {
	return s.colorOK
}

// Degraded reports whether acquisition failed and output is being discarded.
func (s *Session) Degraded() bool {
	return s.degraded
}

// Allocated reports whether this session created the console.
func (s *Session) Allocated() bool {
	return s.allocated
}

// Reopened reports whether this session redirected standard output.
func (s *Session) Reopened() bool {
	return s.reopened
}

// Close releases the resources this session acquired: the original console
// mode is restored if it was changed, the redirected standard output stream
// is closed only if this session reopened it, and the console is freed only
// if this session allocated it. Close is idempotent; release failures are
// surfaced through the notifier and returned.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if s.modeChanged {
			if err := s.api.setMode(s.handle, s.origMode); err != nil {
				s.notifier.NotifyWarning("guilog", "Failed to restore the console mode.")
			}
		}

		if s.reopened {
			if err := s.conout.Close(); err != nil {
				s.notifier.NotifyError("guilog", "Failed to close standard output.")
				s.closeErr = err
			}
		}

		if s.allocated {
			if err := s.api.freeConsole(); err != nil {
				s.notifier.NotifyError("guilog", "Failed to free the console.")
				if s.closeErr == nil {
					s.closeErr = err
				}
			}
		}
	})
	return s.closeErr
}
