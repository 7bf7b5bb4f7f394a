package cmd

import (
	"os"

	"github.com/ethpandaops/test-runs/internal/actions"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <filename>",
	Short: "Print a single test result file",
	Long: `Print the JSON contents of one result file, indented.

Example:
  test-runs show results-1700000000000.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		return actions.ShowResult(cmd.Context(), os.Stdout, newCatalog(cfg), args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
