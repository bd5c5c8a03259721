//go:build !linux && !darwin && !freebsd && !openbsd && !netbsd && !dragonfly && !windows

package boxprogress

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

func isatty(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

func terminalSize(fd uintptr) (int, int, error) {
	return term.GetSize(int(fd))
}

func enterOutputMode(*os.File) (func(), error) {
	return func() {}, nil
}

func cursorHide(f *os.File) {
	fmt.Fprint(f, escCursorHide)
}

func cursorShow(f *os.File) {
	fmt.Fprint(f, escCursorShow)
}
