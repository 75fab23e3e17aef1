package logsy

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentLineLogging(t *testing.T) {
	var buf bytes.Buffer

	opts := DefaultOptions()
	opts.WithTime = false
	opts.UseColor = false
	opts.LogToFile = false
	opts.ConsoleWriter = &buf

	logger, err := New(opts)
	require.NoError(t, err)

	const (
		workers = 8
		perLine = 50
	)

	var group errgroup.Group

	for w := 0; w < workers; w++ {
		group.Go(func() error {
			for i := 0; i < perLine; i++ {
				logger.Info(fmt.Sprintf("worker message %d", i))
			}

			return nil
		})
	}

	require.NoError(t, group.Wait())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, workers*perLine)

	// The session mutex serializes writes: every physical line is complete.
	for _, line := range lines {
		assert.Regexp(t, `^\[INFO\] .+:\d+ - worker message \d+$`, line)
	}
}

func TestConcurrentTableLoggingSingleHeader(t *testing.T) {
	t.Setenv("COLUMNS", "100")

	var buf bytes.Buffer

	opts := DefaultOptions()
	opts.LogToFile = false
	opts.TableView = true
	opts.ConsoleWriter = &buf

	logger, err := New(opts)
	require.NoError(t, err)

	var group errgroup.Group

	for w := 0; w < 8; w++ {
		group.Go(func() error {
			for i := 0; i < 20; i++ {
				logger.Info("concurrent table row")
			}

			return nil
		})
	}

	require.NoError(t, group.Wait())
	require.NoError(t, logger.Close())

	out := buf.String()

	assert.Equal(t, 1, strings.Count(out, "┏"), "exactly one header")
	assert.Equal(t, 1, strings.Count(out, "└"), "exactly one footer")

	total := computeWidths(100, true).total(true)
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.Equal(t, total, visibleWidth(line), "line %q", line)
	}
}

func TestConcurrentFileLogging(t *testing.T) {
	path := t.TempDir() + "/app.log"

	opts := DefaultOptions()
	opts.WithTime = false
	opts.FilePath = path
	opts.LogToConsole = false

	logger, err := New(opts)
	require.NoError(t, err)

	var group errgroup.Group

	for w := 0; w < 4; w++ {
		group.Go(func() error {
			for i := 0; i < 25; i++ {
				logger.Error("file line")
			}

			return nil
		})
	}

	require.NoError(t, group.Wait())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	assert.Len(t, lines, 100)

	for _, line := range lines {
		assert.Regexp(t, `^\[ERROR\] .+:\d+ - file line$`, line)
	}
}
