// Package cmd contains CLI command definitions
package cmd

import (
	"fmt"
	"os"

	"github.com/ethpandaops/test-runs/internal/config"
	"github.com/ethpandaops/test-runs/internal/results"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Logger is the shared logger instance for all commands
	Logger *logrus.Logger

	// Persistent flags
	configPath string
	envFile    string
	resultsDir string

	rootCmd = &cobra.Command{
		Use:   "test-runs",
		Short: "Test Runs - browse and serve test result files",
		Long: `Test Runs serves the JSON result files written by a test runner over HTTP
and lets you browse them from the terminal.

Run without arguments to launch interactive mode, or use subcommands for direct operations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return LoadEnvFile(envFile)
		},
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Load .env file if it exists
	_ = godotenv.Load()

	InitLogger()

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file (optional, or "+config.EnvConfigFile+")")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Path to env file (default .env)")
	rootCmd.PersistentFlags().StringVar(&resultsDir, "results-dir", "", "Directory containing test result files")
}

// LoadEnvFile loads the specified environment file. A missing default .env is not an error.
func LoadEnvFile(file string) error {
	if file == "" {
		file = config.DefaultEnvFile
	}

	if err := godotenv.Load(file); err != nil {
		if file == config.DefaultEnvFile && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load env file '%s': %w", file, err)
	}

	return nil
}

// loadConfig resolves the effective configuration: flags > env > yaml > defaults.
// overrides apply command-specific flags before validation.
func loadConfig(overrides ...func(*config.Config)) (*config.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigFile)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if resultsDir != "" {
		cfg.Results.Dir = resultsDir
	}

	for _, override := range overrides {
		override(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	configureLogger(Logger, cfg.Logging)

	return cfg, nil
}

func newCatalog(cfg *config.Config) results.Catalog {
	return results.NewCatalog(cfg.Results.Dir, Logger)
}
