//go:build windows

package syserr

import (
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
)

var (
	kernel32         = windows.NewLazySystemDLL("kernel32.dll")
	procSetLastError = kernel32.NewProc("SetLastError")
)

// osSource reads the calling thread's last-error slot.
type osSource struct{}

// System returns the platform error source.
func System() Source {
	return osSource{}
}

func (osSource) Capture() uint32 {
	err := windows.GetLastError()
	if err == nil {
		return 0
	}
	procSetLastError.Call(0)
	if errno, ok := err.(syscall.Errno); ok {
		return uint32(errno)
	}
	return 0
}

func (osSource) Set(code uint32) {
	procSetLastError.Call(uintptr(code))
}

// Translate converts an error code to its message-table description, using
// the neutral language with the default sub-language.
func Translate(code uint32) string {
	if code == 0 {
		return ""
	}

	const flags = windows.FORMAT_MESSAGE_FROM_SYSTEM | windows.FORMAT_MESSAGE_IGNORE_INSERTS
	buf := make([]uint16, 512)
	n, err := windows.FormatMessage(flags, 0, code, 0, buf, nil)
	if err != nil || n == 0 {
		return fallbackMessage(code)
	}

	msg := strings.TrimRight(windows.UTF16ToString(buf[:n]), "\r\n ")
	if msg == "" {
		return fallbackMessage(code)
	}
	return msg
}
