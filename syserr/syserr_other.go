//go:build !windows

package syserr

import (
	"strings"
	"syscall"
)

// System returns the platform error source. Targets without a thread-local
// last-error slot use a stored source fed through Set.
func System() Source {
	return NewStoredSource()
}

// Translate converts an error code to its description.
func Translate(code uint32) string {
	if code == 0 {
		return ""
	}
	msg := strings.TrimSpace(syscall.Errno(code).Error())
	if msg == "" {
		return fallbackMessage(code)
	}
	return msg
}
