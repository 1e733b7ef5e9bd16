package main

import (
	app "github.com/ak7sky/subnet-quiz/internal"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve quizzes over gRPC",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		app.Run(cfg)
		return nil
	},
}

func init() {
	serveCmd.Flags().String("listen", "", "Listen address (overrides SUBNETQUIZ_LISTEN_ADDR)")
	serveCmd.Flags().Duration("shutdown-timeout", 0, "Graceful shutdown timeout (overrides SUBNETQUIZ_SHUTDOWN_TIMEOUT)")
}
