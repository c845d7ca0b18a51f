//go:build !windows

package console

import (
	"errors"
	"os"

	"golang.org/x/term"

	"github.com/mfbean/guilog/selflog"
)

// unixAPI inherits whatever standard output the process was started with.
// There is no console to allocate on these targets; a terminal either is
// attached or output flows uncolored to wherever stdout points.
type unixAPI struct{}

func platformAPI() api {
	return unixAPI{}
}

func (unixAPI) consoleAttached() bool {
	return true
}

func (unixAPI) allocConsole() error {
	return errors.ErrUnsupported
}

func (unixAPI) freeConsole() error {
	return errors.ErrUnsupported
}

func (unixAPI) redirectStdout() (*os.File, error) {
	return nil, errors.ErrUnsupported
}

func (unixAPI) outputHandle() (uintptr, error) {
	return os.Stdout.Fd(), nil
}

func (unixAPI) getMode(h uintptr) (uint32, error) {
	if !term.IsTerminal(int(h)) {
		return 0, errors.New("standard output is not a terminal")
	}
	// Terminals on these targets interpret escape sequences natively.
	return enableVirtualTerminalProcessing, nil
}

func (unixAPI) setMode(h uintptr, mode uint32) error {
	return nil
}

// selflogNotifier routes failure notifications to selflog. There is no modal
// UI surface to block on here.
type selflogNotifier struct{}

func platformNotifier() Notifier {
	return selflogNotifier{}
}

func (selflogNotifier) NotifyError(title, message string) {
	selflog.Printf("[console] %s: %s", title, message)
}

func (selflogNotifier) NotifyWarning(title, message string) {
	if selflog.IsEnabled() {
		selflog.Printf("[console] %s: %s", title, message)
	}
}
