// Package cli provides the command-line interface for the logsy demo tool.
package cli

import (
	"context"
	"os"

	"github.com/kedare/logsy"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	noColor  bool
	noTime   bool
	filePath string
)

var rootCmd = &cobra.Command{
	Use:   "logsy",
	Short: "Colorized console/file logger with a responsive table view",
	Long:  "Demo tool for the logsy library: emit colorized log lines or a bordered table that adapts its column widths to the terminal.",
}

// InitPterm routes all pterm diagnostic printers to stderr, leaving stdout
// clean for log output.
func InitPterm() {
	pterm.Info.Writer = os.Stderr
	pterm.Success.Writer = os.Stderr
	pterm.Warning.Writer = os.Stderr
	pterm.Error.Writer = os.Stderr
	pterm.Debug.Writer = os.Stderr
}

func Execute() error {
	return ExecuteContext(context.Background())
}

func ExecuteContext(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	return rootCmd.ExecuteContext(ctx)
}

// sessionOptions translates the persistent flags into logger options.
// Colors are disabled automatically when stdout is not a terminal.
func sessionOptions() logsy.Options {
	opts := logsy.DefaultOptions()
	opts.WithTime = !noTime
	opts.UseColor = !noColor && term.IsTerminal(int(os.Stdout.Fd()))

	if filePath == "" {
		opts.LogToFile = false
	} else {
		opts.FilePath = filePath
	}

	return opts
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors on console output")
	rootCmd.PersistentFlags().BoolVar(&noTime, "no-time", false, "Omit timestamps from log records")
	rootCmd.PersistentFlags().StringVar(&filePath, "file", "", "Also append plain-text log lines to this file")
}
