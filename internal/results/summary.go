package results

import (
	"strconv"
	"strings"
	"time"
)

const (
	// FileSuffix is the extension a directory entry must carry to be listed.
	FileSuffix = ".json"
	// FilePrefix is the prefix of result files that encode their timestamp.
	FilePrefix = "results-"
	// DateLayout renders timestamps the way en-US toLocaleString does.
	DateLayout = "1/2/2006, 3:04:05 PM"
)

// Summary is the metadata computed for a single result file on every listing.
type Summary struct {
	ID        string `json:"id"`
	Filename  string `json:"filename"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds
	Date      string `json:"date"`
	Size      int64  `json:"size"`
}

// ParseTimestamp extracts the unix millisecond timestamp from a name of the
// form results-<digits>.json. The second return is false when the name does
// not follow that form.
func ParseTimestamp(name string) (int64, bool) {
	digits, ok := strings.CutPrefix(name, FilePrefix)
	if !ok {
		return 0, false
	}

	digits, ok = strings.CutSuffix(digits, FileSuffix)
	if !ok || digits == "" {
		return 0, false
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	ts, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}

	return ts, true
}

// FormatDate renders a unix millisecond timestamp in the local time zone.
func FormatDate(ms int64) string {
	return time.UnixMilli(ms).Local().Format(DateLayout)
}

// byNewest orders summaries newest first, falling back to filename so equal
// timestamps list deterministically.
type byNewest []Summary

// Len implements sort.Interface
func (b byNewest) Len() int {
	return len(b)
}

// Less implements sort.Interface
func (b byNewest) Less(i, j int) bool {
	if b[i].Timestamp != b[j].Timestamp {
		return b[i].Timestamp > b[j].Timestamp
	}
	return b[i].Filename < b[j].Filename
}

// Swap implements sort.Interface
func (b byNewest) Swap(i, j int) {
	b[i], b[j] = b[j], b[i]
}
