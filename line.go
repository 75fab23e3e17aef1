package logsy

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

// callSite identifies the file and line a log call originated from.
type callSite struct {
	file string
	line int
}

// callerSite captures the call site skip frames above the caller.
func callerSite(skip int) callSite {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return callSite{file: "unknown"}
	}

	return callSite{file: filepath.Base(file), line: line}
}

func (c callSite) String() string {
	if c.line <= 0 {
		return c.file
	}

	return fmt.Sprintf("%s:%d", c.file, c.line)
}

// record is one log call, consumed immediately by a renderer.
type record struct {
	level     string
	message   string
	timestamp string
	site      callSite
}

// buildLine assembles the plain single-line form of a record:
// "[timestamp] [LEVEL] file:line - message", timestamp omitted when the
// session runs without one.
func buildLine(rec record) string {
	parts := make([]string, 0, 4)

	if rec.timestamp != "" {
		parts = append(parts, "["+rec.timestamp+"]")
	}

	parts = append(parts, "["+rec.level+"]", rec.site.String(), "- "+rec.message)

	return strings.Join(parts, " ")
}

// colorizeLine wraps the whole assembled line in the level color. Coloring
// is all-or-nothing per line.
func colorizeLine(colors map[string]string, level, line string) string {
	return levelColor(colors, level) + line + colorReset
}

func now() string {
	return time.Now().Format(timestampLayout)
}
