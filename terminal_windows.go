//go:build windows

package boxprogress

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	getConsoleCursorInfoProc = kernel32.NewProc("GetConsoleCursorInfo")
	setConsoleCursorInfoProc = kernel32.NewProc("SetConsoleCursorInfo")
)

// consoleCursorInfo represents the cursor info on Windows.
type consoleCursorInfo struct {
	size    uint32
	visible int32
}

func cursorShowHide(f *os.File, show bool) {
	handle := f.Fd()
	var info consoleCursorInfo
	getConsoleCursorInfoProc.Call(handle, uintptr(unsafe.Pointer(&info)))

	info.visible = func() int32 {
		if show {
			return 1
		}

		return 0
	}()

	setConsoleCursorInfoProc.Call(handle, uintptr(unsafe.Pointer(&info)))
}

// cursorHide hides the cursor in Windows.
func cursorHide(f *os.File) {
	cursorShowHide(f, false)
}

// cursorShow shows the cursor in Windows.
func cursorShow(f *os.File) {
	cursorShowHide(f, true)
}

// terminalSize returns the size of the visible console window, not of the
// whole screen buffer.
func terminalSize(fd uintptr) (int, int, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return 0, 0, err
	}
	w := info.Window
	return int(w.Right-w.Left) + 1, int(w.Bottom-w.Top) + 1, nil
}

// enterOutputMode turns on virtual terminal processing so the console
// understands the clear and cursor sequences. The returned func puts the
// previous console mode back.
func enterOutputMode(f *os.File) (func(), error) {
	handle := windows.Handle(f.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return nil, err
	}

	want := mode | windows.ENABLE_PROCESSED_OUTPUT | windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	if err := windows.SetConsoleMode(handle, want); err != nil {
		return nil, err
	}

	return func() {
		_ = windows.SetConsoleMode(handle, mode)
	}, nil
}
