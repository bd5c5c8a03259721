//go:build darwin || freebsd || openbsd || netbsd || dragonfly

package boxprogress

import "golang.org/x/sys/unix"

// isatty return true if the file descriptor is terminal.
func isatty(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TIOCGETA)
	return err == nil
}
