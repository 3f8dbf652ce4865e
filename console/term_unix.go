//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package console

import "golang.org/x/sys/unix"

func terminalWidth(fd int) (int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, err
	}
	return int(ws.Col), nil
}
