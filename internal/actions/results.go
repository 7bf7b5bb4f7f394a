package actions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ethpandaops/test-runs/internal/results"
	"github.com/ethpandaops/test-runs/internal/table"
)

// ListResults writes the catalog listing either as a table or as the same JSON
// array the HTTP API returns.
func ListResults(ctx context.Context, w io.Writer, catalog results.Catalog, asJSON bool) error {
	summaries, err := catalog.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list test results: %w", err)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}

	formatter := table.NewListingFormatter(table.NewRenderer())
	fmt.Fprintln(w, formatter.Format(catalog.Dir(), summaries))

	return nil
}

// ShowResult writes a single result document, indented.
func ShowResult(ctx context.Context, w io.Writer, catalog results.Catalog, filename string) error {
	doc, err := catalog.Get(ctx, filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, doc, "", "  "); err != nil {
		return fmt.Errorf("failed to format %s: %w", filename, err)
	}
	buf.WriteByte('\n')

	_, err = buf.WriteTo(w)
	return err
}
