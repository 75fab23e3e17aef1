package cli

import (
	"github.com/kedare/logsy"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Emit one sample log line per level",
	RunE: func(cmd *cobra.Command, args []string) error {
		return logsy.Scoped(sessionOptions(), func(log *logsy.Logger) error {
			log.Info("service started")
			log.Debug("configuration loaded from defaults")
			log.Warning("disk usage above 80 percent")
			log.Error("upstream timed out after 3 retries")
			log.Log("notice", "custom levels work too")

			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
