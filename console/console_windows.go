//go:build windows

package console

import (
	"os"

	"golang.org/x/sys/windows"
)

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procAllocConsole     = kernel32.NewProc("AllocConsole")
	procFreeConsole      = kernel32.NewProc("FreeConsole")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
)

type winAPI struct{}

func platformAPI() api {
	return winAPI{}
}

func (winAPI) consoleAttached() bool {
	ret, _, _ := procGetConsoleWindow.Call()
	return ret != 0
}

func (winAPI) allocConsole() error {
	ret, _, err := procAllocConsole.Call()
	if ret == 0 {
		return err
	}
	return nil
}

func (winAPI) freeConsole() error {
	ret, _, err := procFreeConsole.Call()
	if ret == 0 {
		return err
	}
	return nil
}

func (winAPI) redirectStdout() (*os.File, error) {
	f, err := os.OpenFile("CONOUT$", os.O_WRONLY, 0)
	if err != nil {
		return nil, err
	}
	if err := windows.SetStdHandle(windows.STD_OUTPUT_HANDLE, windows.Handle(f.Fd())); err != nil {
		f.Close()
		return nil, err
	}
	os.Stdout = f
	return f, nil
}

func (winAPI) outputHandle() (uintptr, error) {
	h, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func (winAPI) getMode(h uintptr) (uint32, error) {
	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(h), &mode); err != nil {
		return 0, err
	}
	return mode, nil
}

func (winAPI) setMode(h uintptr, mode uint32) error {
	return windows.SetConsoleMode(windows.Handle(h), mode)
}

// messageBoxNotifier surfaces failures as modal message boxes, so they are
// visible even when the process has no working console.
type messageBoxNotifier struct{}

func platformNotifier() Notifier {
	return messageBoxNotifier{}
}

func (messageBoxNotifier) NotifyError(title, message string) {
	messageBox(title, message, windows.MB_OK|windows.MB_ICONERROR)
}

func (messageBoxNotifier) NotifyWarning(title, message string) {
	messageBox(title, message, windows.MB_OK|windows.MB_ICONWARNING)
}

func messageBox(title, message string, flags uint32) {
	caption, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	text, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return
	}
	windows.MessageBox(0, text, caption, flags)
}
