package logsy

import (
	"os"
	"strconv"
)

// fallbackTerminalWidth is used when the terminal size cannot be queried,
// e.g. when output is piped.
const fallbackTerminalWidth = 120

// detectTerminalWidth resolves the terminal width, honoring a COLUMNS
// override before asking the platform.
func detectTerminalWidth() (int, bool) {
	if raw, ok := os.LookupEnv("COLUMNS"); ok {
		if width, err := strconv.Atoi(raw); err == nil && width > 0 {
			return width, true
		}
	}

	if width, ok := systemTerminalWidth(); ok {
		return width, true
	}

	return 0, false
}

// terminalWidth returns the detected width or the fixed fallback.
func terminalWidth() int {
	if width, ok := detectTerminalWidth(); ok {
		return width
	}

	return fallbackTerminalWidth
}
