package logsy

import "strings"

const colorReset = "\x1b[0m"

// colorCodes maps the color names accepted in Options.CustomColors to their
// ANSI SGR escape sequences. File output is scrubbed against every value in
// this table, so any code emitted by the logger must be registered here.
var colorCodes = map[string]string{
	"gray":    "\x1b[90m",
	"red":     "\x1b[91m",
	"green":   "\x1b[92m",
	"yellow":  "\x1b[93m",
	"blue":    "\x1b[94m",
	"magenta": "\x1b[95m",
	"cyan":    "\x1b[96m",
	"white":   "\x1b[97m",
	"reset":   colorReset,
}

// defaultLevelColors returns the built-in level palette. Levels are open
// string keys, so callers may colorize levels this table never heard of.
func defaultLevelColors() map[string]string {
	return map[string]string{
		"INFO":    colorCodes["blue"],
		"WARNING": colorCodes["yellow"],
		"ERROR":   colorCodes["red"],
		"DEBUG":   colorCodes["cyan"],
	}
}

// resolveLevelColors merges user overrides into the default palette.
// Unknown color names are ignored and the default for that level stays.
func resolveLevelColors(custom map[string]string) map[string]string {
	colors := defaultLevelColors()

	for level, name := range custom {
		if code, ok := colorCodes[strings.ToLower(name)]; ok {
			colors[strings.ToUpper(level)] = code
		}
	}

	return colors
}

// levelColor returns the escape code for a level, falling back to the reset
// code so unknown levels still terminate cleanly.
func levelColor(colors map[string]string, level string) string {
	if code, ok := colors[strings.ToUpper(level)]; ok {
		return code
	}

	return colorCodes["reset"]
}

// stripKnownColors removes every escape code from the color table. This is
// deliberately table-driven rather than generic ANSI stripping: file output
// must lose exactly the codes this logger can produce.
func stripKnownColors(s string) string {
	for _, code := range colorCodes {
		s = strings.ReplaceAll(s, code, "")
	}

	return s
}
