// Package logsy implements a colorized console and file logger with an
// optional responsive table view that adapts its column widths to the
// terminal.
package logsy

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Options configures a Logger. Use DefaultOptions as the starting point;
// the zero value disables everything.
type Options struct {
	// WithTime includes a "[2006-01-02 15:04:05]" timestamp in every record.
	WithTime bool
	// LogToFile appends a plain-text copy of every record to FilePath.
	LogToFile bool
	// FilePath is the log file location; parent directories are created at
	// construction time.
	FilePath string
	// UseColor enables ANSI colors on console output.
	UseColor bool
	// CustomColors remaps level names to color names, e.g. {"INFO": "cyan"}.
	// Unknown color names are ignored and the default stays.
	CustomColors map[string]string
	// LogToConsole enables console output.
	LogToConsole bool
	// TableView renders console output as a bordered table instead of lines.
	TableView bool
	// TableTitle is printed centered above the table; ignored without
	// TableView.
	TableTitle string
	// ConsoleWriter overrides the console sink; nil means os.Stdout.
	ConsoleWriter io.Writer
}

// DefaultOptions returns the stock configuration: timestamps on, colors on,
// console on, file logging to logs/app.log.
func DefaultOptions() Options {
	return Options{
		WithTime:     true,
		LogToFile:    true,
		FilePath:     "logs/app.log",
		UseColor:     true,
		LogToConsole: true,
	}
}

// Logger is one logging session. All methods are safe for concurrent use;
// per-session state and the file sink are guarded by a single mutex, so
// interleaved calls never corrupt a table or a file line.
type Logger struct {
	mu     sync.Mutex
	opts   Options
	colors map[string]string
	out    io.Writer
	table  *tableRenderer
	closed bool
}

// New constructs a Logger. When file logging is enabled the file (and its
// parent directories) are created immediately, so a bad path fails here
// rather than on the first log call. Table-view sessions register
// themselves for the process-wide footer flush; pair New with Close, or
// rely on Shutdown at exit.
func New(opts Options) (*Logger, error) {
	out := opts.ConsoleWriter
	if out == nil {
		out = os.Stdout
	}

	if opts.LogToFile {
		if err := prepareFileSink(opts.FilePath); err != nil {
			return nil, err
		}
	}

	logger := &Logger{
		opts:   opts,
		colors: resolveLevelColors(opts.CustomColors),
		out:    out,
	}

	if opts.TableView {
		logger.table = &tableRenderer{
			out:         out,
			title:       opts.TableTitle,
			withTime:    opts.WithTime,
			useColor:    opts.UseColor,
			levelColors: logger.colors,
		}
		register(logger)
	}

	return logger, nil
}

// Scoped runs fn with a fresh Logger and always closes it afterwards, so
// the table footer is flushed on normal return and on error alike.
func Scoped(opts Options, fn func(*Logger) error) error {
	logger, err := New(opts)
	if err != nil {
		return err
	}
	defer logger.Close()

	return fn(logger)
}

// prepareFileSink creates the log file's directory and probes the file in
// append mode.
func prepareFileSink(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	return file.Close()
}

// Log records one message under an arbitrary level tag. Levels are open
// strings, not a closed set: any tag works, and unknown tags render with
// the default color.
func (l *Logger) Log(level, message string) {
	l.write(level, message, callerSite(1))
}

// Info logs at level INFO.
func (l *Logger) Info(message string) { l.write("INFO", message, callerSite(1)) }

// Warning logs at level WARNING.
func (l *Logger) Warning(message string) { l.write("WARNING", message, callerSite(1)) }

// Error logs at level ERROR.
func (l *Logger) Error(message string) { l.write("ERROR", message, callerSite(1)) }

// Debug logs at level DEBUG.
func (l *Logger) Debug(message string) { l.write("DEBUG", message, callerSite(1)) }

func (l *Logger) write(level, message string, site callSite) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	rec := record{
		level:   strings.ToUpper(level),
		message: message,
		site:    site,
	}
	if l.opts.WithTime {
		rec.timestamp = now()
	}

	if l.opts.LogToConsole {
		if l.table != nil {
			l.table.writeRow(rec)
		} else {
			line := buildLine(rec)
			if l.opts.UseColor {
				line = colorizeLine(l.colors, rec.level, line)
			}

			fmt.Fprintln(l.out, line)
		}
	}

	if l.opts.LogToFile {
		l.appendToFile(buildLine(rec))
	}
}

// appendToFile writes one scrubbed line to the file sink. The file is
// opened and closed per call; construction already validated the path, so
// a failure here is reported on stderr rather than propagated.
func (l *Logger) appendToFile(line string) {
	file, err := os.OpenFile(l.opts.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logsy: failed to open log file %s: %v\n", l.opts.FilePath, err)

		return
	}
	defer file.Close()

	fmt.Fprintln(file, stripKnownColors(line))
}

// Close terminates the session: the table footer (if a header was printed)
// is flushed exactly once and the session leaves the process-wide registry.
// Close is idempotent, never propagates sink errors, and later log calls
// on a closed Logger are dropped.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true

	if l.table != nil {
		l.table.writeFooter()
		unregister(l)
	}

	return nil
}
