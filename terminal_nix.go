//go:build linux || darwin || freebsd || openbsd || netbsd || dragonfly

package boxprogress

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// terminalSize returns the visible columns and rows of the terminal on fd.
func terminalSize(fd uintptr) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// enterOutputMode has nothing to switch; unix terminals take UTF-8 and ANSI sequences as is.
func enterOutputMode(*os.File) (func(), error) {
	return func() {}, nil
}

// cursorHide hides the cursor in Unix-based systems.
func cursorHide(f *os.File) {
	fmt.Fprint(f, escCursorHide)
}

// cursorShow shows the cursor in Unix-based systems.
func cursorShow(f *os.File) {
	fmt.Fprint(f, escCursorShow)
}
