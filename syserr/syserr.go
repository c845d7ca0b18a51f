// Package syserr captures and translates operating-system error codes.
//
// A Source holds at most one pending error code. The logger drains the
// source on every write, so a code set by a failed system call is reported
// exactly once, alongside the application's own message.
package syserr

import (
	"errors"
	"fmt"
	"sync/atomic"
	"syscall"
)

// Source supplies the most recent operating-system error code.
type Source interface {
	// Capture returns the pending error code and clears it. A zero return
	// means no error is pending.
	Capture() uint32

	// Set records a pending error code.
	Set(code uint32)
}

// storedSource is a Source backed by an explicitly recorded code.
type storedSource struct {
	code atomic.Uint32
}

// NewStoredSource returns a Source whose pending code is supplied through
// Set. This is the default source on targets with no thread-local last-error
// slot, and the source tests inject.
func NewStoredSource() Source {
	return &storedSource{}
}

func (s *storedSource) Capture() uint32 {
	return s.code.Swap(0)
}

func (s *storedSource) Set(code uint32) {
	s.code.Store(code)
}

// FromError extracts a platform error code from err. It returns zero when
// err is nil or carries no numeric code.
func FromError(err error) uint32 {
	if err == nil {
		return 0
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return uint32(errno)
	}
	return 0
}

// fallbackMessage is used when the platform message table has no entry.
func fallbackMessage(code uint32) string {
	return fmt.Sprintf("error %d", code)
}
