package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ethpandaops/test-runs/internal/actions"
	"github.com/ethpandaops/test-runs/internal/interactive"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch interactive TUI mode",
	Long:  `Launches the interactive Terminal User Interface for browsing test results.`,
	Run: func(_ *cobra.Command, _ []string) {
		RunInteractive()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// RunInteractive shows the main menu until the user exits.
func RunInteractive() {
	fmt.Println("Test Runs - Interactive Mode")
	fmt.Println("============================")
	fmt.Println()

	for {
		options := []interactive.MenuOption{
			{
				Name:        "🔎 Browse Test Runs",
				Description: "Pick a test run and view its results",
				Action:      browseResults,
			},
			{
				Name:        "🧪 List Test Runs",
				Description: "Show all test runs, newest first",
				Action: func() error {
					if err := listResults(); err != nil {
						fmt.Printf("\n❌ Error: %v\n", err)
					}
					interactive.PauseForEnter()
					return nil
				},
			},
			{
				Name:        "📋 Show Config",
				Description: "Display current configuration",
				Action: func() error {
					cfg, err := loadConfig()
					if err != nil {
						fmt.Printf("\n❌ Error: %v\n", err)
					} else if err := actions.ShowConfig(os.Stdout, cfg); err != nil {
						fmt.Printf("\n❌ Error: %v\n", err)
					}
					interactive.PauseForEnter()
					return nil
				},
			},
		}

		if err := interactive.ShowMainMenu(options); err != nil {
			if errors.Is(err, interactive.ErrExit) {
				fmt.Println("Goodbye!")
				return
			}
			log.Fatal(err)
		}

		fmt.Println()
	}
}

func listResults() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return actions.ListResults(context.Background(), os.Stdout, newCatalog(cfg), false)
}

// browseResults lets the user view result after result until they go back.
func browseResults() error {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("\n❌ Error: %v\n", err)
		interactive.PauseForEnter()
		return nil
	}

	ctx := context.Background()
	catalog := newCatalog(cfg)

	for {
		summaries, err := catalog.List(ctx)
		if err != nil {
			fmt.Printf("\n❌ Error: %v\n", err)
			interactive.PauseForEnter()
			return nil
		}

		filename, err := interactive.SelectResult(summaries)
		if err != nil {
			if errors.Is(err, interactive.ErrNoResults) {
				fmt.Printf("\nNo test results found in %s\n", catalog.Dir())
				interactive.PauseForEnter()
			}
			return nil // Return to main menu
		}

		fmt.Println()
		if err := actions.ShowResult(ctx, os.Stdout, catalog, filename); err != nil {
			fmt.Printf("\n❌ Error: %v\n", err)
		}
		interactive.PauseForEnter()
	}
}
