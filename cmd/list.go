package cmd

import (
	"os"

	"github.com/ethpandaops/test-runs/internal/actions"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List test result files, newest first",
	Long: `List the result files in the results directory with their date and size.

Use --json to print the same array GET /api/test-runs returns.

Example:
  test-runs list --results-dir ./test-data
  test-runs list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		return actions.ListResults(cmd.Context(), os.Stdout, newCatalog(cfg), listJSON)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print the listing as JSON")
}
