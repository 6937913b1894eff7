//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import "os"

// IsTerminal reports false; termios is unavailable on this platform
func IsTerminal(f *os.File) bool {
	return false
}
