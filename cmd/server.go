package cmd

import (
	"github.com/spf13/cobra"

	"github.com/curaious/tasker/internal/api"
	"github.com/curaious/tasker/internal/config"
	"github.com/curaious/tasker/internal/telemetry"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start Task API Server",
	Run: func(cmd *cobra.Command, args []string) {
		conf := config.ReadConfig()

		shutdownTelemetry := telemetry.NewProvider(conf.OTEL_EXPORTER_OTLP_ENDPOINT)
		defer shutdownTelemetry()

		s := api.New()
		s.Start()
	},
}

// Register the "server" command
func init() {
	rootCmd.AddCommand(serverCmd)
}
