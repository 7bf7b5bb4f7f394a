package cmd

import (
	"fmt"
	"os"

	"github.com/ethpandaops/test-runs/internal/actions"
	"github.com/ethpandaops/test-runs/internal/config"
	"github.com/spf13/cobra"
)

var showConfigCmd = &cobra.Command{
	Use:   "show-config",
	Short: "Display current configuration",
	Long:  `Shows the current configuration loaded from the config file, environment variables and .env file.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		path := configPath
		if path == "" {
			path = os.Getenv(config.EnvConfigFile)
		}

		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to show config: %w", err)
		}
		if resultsDir != "" {
			cfg.Results.Dir = resultsDir
		}

		return actions.ShowConfig(os.Stdout, cfg)
	},
}

func init() {
	rootCmd.AddCommand(showConfigCmd)
}
