package table

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ethpandaops/test-runs/internal/format"
	"github.com/ethpandaops/test-runs/internal/results"
	"github.com/olekukonko/tablewriter"
)

// recentWindow is how old a result may be and still be highlighted.
const recentWindow = 24 * time.Hour

// ListingFormatter formats a result listing as a table.
type ListingFormatter struct {
	renderer Renderer
	colors   *ColorHelper
	now      func() time.Time
}

// NewListingFormatter creates a new listing formatter.
func NewListingFormatter(renderer Renderer) *ListingFormatter {
	return &ListingFormatter{
		renderer: renderer,
		colors:   NewColorHelper(),
		now:      time.Now,
	}
}

// Format converts summaries into a table string headed by the directory they came from.
func (f *ListingFormatter) Format(dir string, summaries []results.Summary) string {
	if len(summaries) == 0 {
		return fmt.Sprintf("No test results found in %s", dir)
	}

	var (
		headers = []string{"#", "Filename", "Date", "Age", "Size"}
		rows    = make([][]string, 0, len(summaries))
		now     = f.now()
	)

	for i, s := range summaries {
		recent := now.Sub(time.UnixMilli(s.Timestamp)) < recentWindow

		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			s.Filename,
			s.Date,
			f.colors.FormatAge(recent, format.Age(s.Timestamp, now)),
			f.colors.FormatSize(s.Size, format.Bytes(s.Size)),
		})
	}

	title := fmt.Sprintf("▸ Test Runs (%d) in %s", len(summaries), dir)

	return "\n" + f.colors.Header(title) + "\n\n" + f.renderer.RenderToString(
		headers,
		rows,
		WithColumnAlignment([]int{
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_RIGHT,
		}),
	)
}
