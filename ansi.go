package logsy

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// stripANSI removes ANSI escape sequences from a string. CSI sequences
// (ESC [ ... final byte), OSC sequences (ESC ] ... BEL or ESC \) and
// two-byte ESC escapes are all recognized.
func stripANSI(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != 0x1b {
			out.WriteByte(s[i])

			continue
		}

		if i+1 >= len(s) {
			break
		}

		switch s[i+1] {
		case '[':
			// CSI: parameter bytes 0x30-0x3f, intermediate bytes 0x20-0x2f,
			// one final byte 0x40-0x7e.
			j := i + 2
			for j < len(s) && s[j] >= 0x30 && s[j] <= 0x3f {
				j++
			}
			for j < len(s) && s[j] >= 0x20 && s[j] <= 0x2f {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j - 1
		case ']':
			// OSC: terminated by BEL or the ST sequence ESC \.
			j := i + 2
			for j < len(s) {
				if s[j] == 0x07 {
					j++

					break
				}
				if s[j] == 0x1b && j+1 < len(s) && s[j+1] == '\\' {
					j += 2

					break
				}
				j++
			}
			i = j - 1
		default:
			i++
		}
	}

	return out.String()
}

// visibleWidth returns the terminal cell width of a string once every
// escape sequence has been removed.
func visibleWidth(s string) int {
	return runewidth.StringWidth(stripANSI(s))
}
