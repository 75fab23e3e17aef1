package logsy

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText splits text into lines whose visible width does not exceed width.
// Wrapping is greedy on word boundaries; a single word wider than the column
// is broken after a hyphen when possible, otherwise hard-broken. Degenerate
// input (empty text, width below one) yields a best-effort single line
// instead of failing.
func wrapText(text string, width int) []string {
	if text == "" {
		return []string{""}
	}

	if width < 1 || visibleWidth(text) <= width {
		return []string{text}
	}

	var lines []string

	current := ""

	for _, word := range strings.Fields(text) {
		for _, piece := range splitToken(word, width) {
			if current == "" {
				current = piece

				continue
			}

			if visibleWidth(current)+1+visibleWidth(piece) <= width {
				current += " " + piece

				continue
			}

			lines = append(lines, current)
			current = piece
		}
	}

	if current != "" {
		lines = append(lines, current)
	}

	if len(lines) == 0 {
		return []string{text}
	}

	return lines
}

// splitToken breaks one word into pieces of at most width cells, preferring
// to break just after a hyphen. A single rune wider than the column still
// becomes its own (oversized) piece.
func splitToken(word string, width int) []string {
	if visibleWidth(word) <= width {
		return []string{word}
	}

	var pieces []string

	runes := []rune(word)
	for len(runes) > 0 {
		if runewidth.StringWidth(string(runes)) <= width {
			pieces = append(pieces, string(runes))

			break
		}

		cut := 0
		cells := 0
		hyphen := 0

		for i, r := range runes {
			w := runewidth.RuneWidth(r)
			if cells+w > width {
				break
			}

			cells += w
			cut = i + 1

			if r == '-' {
				hyphen = i + 1
			}
		}

		if hyphen > 0 && hyphen < len(runes) {
			cut = hyphen
		}

		if cut == 0 {
			cut = 1
		}

		pieces = append(pieces, string(runes[:cut]))
		runes = runes[cut:]
	}

	return pieces
}
