//go:build !aix && !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris && !windows

package console

import "errors"

func terminalWidth(int) (int, error) {
	return 0, errors.New("terminal size not supported on this platform")
}
