package console

import "os"

// DefaultWidth is used when f is not a terminal.
const DefaultWidth = 80

// Width returns the column count of the terminal attached to f.
func Width(f *os.File) int {
	w, err := terminalWidth(int(f.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}
