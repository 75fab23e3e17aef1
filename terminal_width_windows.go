//go:build windows

package logsy

import (
	"os"

	"golang.org/x/term"
)

func systemTerminalWidth() (int, bool) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}

	return width, true
}
