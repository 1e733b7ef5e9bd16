package main

import (
	"fmt"

	"github.com/ak7sky/subnet-quiz/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "subnetquiz",
	Short:        "IPv4 subnetting practice",
	Long:         "subnetquiz generates random IPv4 subnetting problems and grades the answers.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides SUBNETQUIZ_LOG_LEVEL)")
	rootCmd.PersistentFlags().Int("max-gen-attempts", 0, "Retry ceiling of network generation (overrides SUBNETQUIZ_MAX_GEN_ATTEMPTS)")
	rootCmd.PersistentFlags().Bool("strict-addrs", false, "Accept only canonical dotted-quad address answers (overrides SUBNETQUIZ_STRICT_ADDRS)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(generateCmd)
}

// resolveConfig returns the configuration from flags set on the command line
// (highest priority), then SUBNETQUIZ_* env vars, then defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("max-gen-attempts") {
		cfg.MaxGenAttempts, _ = flags.GetInt("max-gen-attempts")
	}
	if flags.Changed("strict-addrs") {
		cfg.StrictAddrs, _ = flags.GetBool("strict-addrs")
	}
	if flags.Lookup("listen") != nil && flags.Changed("listen") {
		cfg.ListenAddr, _ = flags.GetString("listen")
	}
	if flags.Lookup("shutdown-timeout") != nil && flags.Changed("shutdown-timeout") {
		cfg.ShutdownTimeout, _ = flags.GetDuration("shutdown-timeout")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
