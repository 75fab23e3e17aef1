package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/kedare/logsy"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	tableTitle string
	tableWatch bool
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Render sample logs as a responsive bordered table",
	Long:  "Render sample log records as a table whose column widths adapt to the terminal. With --watch the table is redrawn whenever the terminal is resized.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !tableWatch {
			return renderSampleTable()
		}

		pterm.Info.Println("Resize the terminal - the table re-renders to fit (Ctrl+C to exit).")

		if err := renderSampleTable(); err != nil {
			return err
		}

		ctx := cmd.Context()
		lastWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))

		ticker := time.NewTicker(300 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				width, _, err := term.GetSize(int(os.Stdout.Fd()))
				if err != nil || width == lastWidth {
					continue
				}
				lastWidth = width

				clearScreen()

				if err := renderSampleTable(); err != nil {
					return err
				}
			}
		}
	},
}

func renderSampleTable() error {
	opts := sessionOptions()
	opts.TableView = true
	opts.TableTitle = tableTitle

	return logsy.Scoped(opts, func(log *logsy.Logger) error {
		log.Info("Senior engineer working on platform reliability and scaling systems.")
		log.Warning("Frontend developer who loves design systems and long cell content.")
		log.Error("Intern - writes tests, fixes bugs, and learns Go!")
		log.Debug("Short one.")

		return nil
	})
}

func clearScreen() {
	fmt.Print("\x1b[2J\x1b[H")
}

func init() {
	tableCmd.Flags().StringVar(&tableTitle, "title", "Sample Logs", "Title rendered centered above the table")
	tableCmd.Flags().BoolVar(&tableWatch, "watch", false, "Redraw the table when the terminal is resized")
	rootCmd.AddCommand(tableCmd)
}
