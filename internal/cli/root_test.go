package cli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	origStdout := os.Stdout
	os.Stdout = writer

	outCh := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, reader)
		outCh <- buf.String()
	}()

	fn()

	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout

	return <-outCh
}

func TestRootCommand(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd is nil")
	}

	if rootCmd.Use != "logsy" {
		t.Errorf("Expected Use to be 'logsy', got %q", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Short description is empty")
	}
}

func TestRootCommandFlags(t *testing.T) {
	for _, name := range []string{"no-color", "no-time", "file"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("%s flag not found", name)
		}
	}
}

func TestSessionOptions(t *testing.T) {
	origColor, origTime, origFile := noColor, noTime, filePath
	t.Cleanup(func() { noColor, noTime, filePath = origColor, origTime, origFile })

	noColor = true
	noTime = true
	filePath = ""

	opts := sessionOptions()

	if opts.UseColor {
		t.Error("expected colors disabled")
	}

	if opts.WithTime {
		t.Error("expected timestamps disabled")
	}

	if opts.LogToFile {
		t.Error("expected file logging disabled without --file")
	}

	filePath = "out/test.log"
	opts = sessionOptions()

	if !opts.LogToFile || opts.FilePath != "out/test.log" {
		t.Errorf("expected file logging to out/test.log, got %+v", opts)
	}
}

func TestDemoCommand(t *testing.T) {
	origColor, origTime, origFile := noColor, noTime, filePath
	t.Cleanup(func() { noColor, noTime, filePath = origColor, origTime, origFile })

	out := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"demo", "--no-color", "--no-time"})
		if err := rootCmd.Execute(); err != nil {
			t.Errorf("demo command failed: %v", err)
		}
	})

	for _, want := range []string{"[INFO]", "[WARNING]", "[ERROR]", "[DEBUG]", "[NOTICE]"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestTableCommand(t *testing.T) {
	origColor, origTime, origFile := noColor, noTime, filePath
	t.Cleanup(func() { noColor, noTime, filePath = origColor, origTime, origFile })

	t.Setenv("COLUMNS", "100")

	out := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"table", "--no-color", "--title", "Test Table"})
		if err := rootCmd.Execute(); err != nil {
			t.Errorf("table command failed: %v", err)
		}
	})

	for _, want := range []string{"Test Table", "Level", "File:Line", "Message", "┏", "└"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}
