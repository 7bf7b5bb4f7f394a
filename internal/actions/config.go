// Package actions contains the operations shared by the CLI and interactive mode
package actions

import (
	"fmt"
	"io"

	"github.com/ethpandaops/test-runs/internal/config"
)

// ShowConfig displays the current configuration
func ShowConfig(w io.Writer, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(w, "%s\n\n⚠️  Invalid configuration: %v\n", cfg.String(), err)
		return nil
	}

	fmt.Fprintln(w, cfg.String())
	return nil
}
