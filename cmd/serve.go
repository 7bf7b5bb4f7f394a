package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethpandaops/test-runs/internal/config"
	"github.com/ethpandaops/test-runs/internal/server"
	"github.com/spf13/cobra"
)

var (
	// Serve command flags
	serveHost string
	servePort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve test results over HTTP",
	Long: `Start the HTTP API for test result files.

Routes:
  GET /api/test-runs             list result files, newest first
  GET /api/test-runs/{filename}  fetch one result file
  GET /api/health                liveness

The server runs until interrupted (Ctrl+C or SIGTERM) and then shuts down
gracefully.

Example:
  test-runs serve --port 4141 --results-dir ./test-data`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", config.DefaultHost, "Host to bind (empty for all interfaces)")
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(func(c *config.Config) {
		if cmd.Flags().Changed("host") {
			c.Server.Host = serveHost
		}
		if cmd.Flags().Changed("port") {
			c.Server.Port = servePort
		}
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(newCatalog(cfg), server.Options{
		Addr:            cfg.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, Logger)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("running server: %w", err)
	}

	Logger.Info("test results server stopped")

	return nil
}
