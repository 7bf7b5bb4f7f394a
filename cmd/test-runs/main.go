// Package main is the entry point for the test-runs application
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethpandaops/test-runs/cmd"
)

const (
	envFlag      = "--env"
	envFlagEqual = "--env="
)

func main() {
	// Parse --env flag and determine mode
	envFile, runTUI := parseArgs(os.Args)

	if runTUI {
		// Load env file for TUI mode
		if err := cmd.LoadEnvFile(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading env file: %v\n", err)
			os.Exit(1)
		}
		// Initialize cmd.Logger after loading env file
		cmd.InitLogger()
		cmd.RunInteractive()
	} else {
		// Arguments provided - run cobra CLI (it will handle --env flag itself)
		cmd.Execute()
	}
}

// parseArgs extracts the env file and reports whether only --env was given,
// in which case the interactive mode runs.
func parseArgs(args []string) (envFile string, runTUI bool) {
	for i, arg := range args {
		if arg == envFlag && i+1 < len(args) {
			envFile = args[i+1]
			break
		}
		if strings.HasPrefix(arg, envFlagEqual) {
			envFile = arg[len(envFlagEqual):]
			break
		}
	}

	switch len(args) {
	case 1:
		// No arguments - run TUI
		return envFile, true
	case 2:
		// Only --env=value provided, run TUI. A bare --env falls through to
		// cobra, which reports the missing value.
		return envFile, strings.HasPrefix(args[1], envFlagEqual)
	case 3:
		// Only --env value provided, run TUI
		return envFile, args[1] == envFlag
	default:
		return envFile, false
	}
}
