//go:build windows

package boxprogress

import "golang.org/x/sys/windows"

// isatty return true if the file descriptor is a console.
func isatty(fd uintptr) bool {
	var mode uint32
	return windows.GetConsoleMode(windows.Handle(fd), &mode) == nil
}
