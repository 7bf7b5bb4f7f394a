// Package results reads test-result files written by an external test runner
// and exposes them as a newest-first catalog.
package results

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNotFound is returned when a result is missing, unreadable or not valid JSON.
	ErrNotFound = errors.New("test result not found")
	// ErrInvalidFilename is returned for names that would escape the results directory.
	ErrInvalidFilename = fmt.Errorf("invalid result filename: %w", ErrNotFound)
)

// Catalog lists and reads result files from a single directory.
// It never writes to the directory and keeps no state between calls.
type Catalog interface {
	Dir() string
	List(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, filename string) (json.RawMessage, error)
}

type catalog struct {
	dir string
	log logrus.FieldLogger
}

// NewCatalog creates a catalog over dir.
func NewCatalog(dir string, log logrus.FieldLogger) Catalog {
	return &catalog{
		dir: dir,
		log: log.WithField("component", "results_catalog"),
	}
}

func (c *catalog) Dir() string {
	return c.dir
}

// List returns a summary for every .json file in the directory, newest first.
// A missing directory is an empty catalog, not an error.
func (c *catalog) List(_ context.Context) ([]Summary, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			c.log.WithField("dir", c.dir).Debug("results directory does not exist")
			return []Summary{}, nil
		}
		return nil, fmt.Errorf("reading results directory %s: %w", c.dir, err)
	}

	summaries := make([]Summary, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, FileSuffix) {
			continue
		}

		info, err := os.Stat(filepath.Join(c.dir, name))
		if err != nil {
			// Removed by the test runner between readdir and stat
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", name, err)
		}

		ts, ok := ParseTimestamp(name)
		if !ok {
			ts = info.ModTime().UnixMilli()
		}

		summaries = append(summaries, Summary{
			ID:        name,
			Filename:  name,
			Timestamp: ts,
			Date:      FormatDate(ts),
			Size:      info.Size(),
		})
	}

	sort.Sort(byNewest(summaries))

	c.log.WithFields(logrus.Fields{
		"dir":   c.dir,
		"count": len(summaries),
	}).Debug("listed test results")

	return summaries, nil
}

// Get reads a single result and returns it as compact JSON.
func (c *catalog) Get(_ context.Context, filename string) (json.RawMessage, error) {
	if err := validateFilename(filename); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(c.dir, filename))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	// Invalid UTF-8 is replaced so the response body is always valid UTF-8.
	if !utf8.Valid(data) {
		data = bytes.ToValidUTF8(data, []byte("\uFFFD"))
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrNotFound, filename, err)
	}

	return json.RawMessage(buf.Bytes()), nil
}

// validateFilename accepts only plain names that resolve inside the directory.
func validateFilename(name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}
	if strings.ContainsAny(name, `/\`) || !filepath.IsLocal(name) {
		return fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}
	return nil
}

// Compile-time interface compliance check
var _ Catalog = (*catalog)(nil)
