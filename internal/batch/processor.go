// Package batch reads line-oriented batch files for bulk conversion.
package batch

import (
	"fmt"
	"os"
	"strings"
)

// Entry is one line of a batch file
type Entry struct {
	Line     int    // 1-based line number in the file
	Source   string // Text to convert
	Expected string // Expected conversion result
	// Check indicates the line was a "source = expected" pair
	Check bool
}

// ReadBatchFile reads entries from a batch file
func ReadBatchFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return ParseBatch(string(content)), nil
}

// ParseBatch parses batch file content. Supported line formats:
// - Text only: "Ўзбекистон" (converted, nothing to compare)
// - Check pair: "Ўзбекистон = O'zbekiston" (converted and compared)
// - Comment: "# ..." (ignored)
// Empty lines, pairs with an empty source and CRLF endings are tolerated.
func ParseBatch(content string) []Entry {
	var entries []Entry

	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry := Entry{Line: i + 1, Source: line}
		if source, expected, ok := strings.Cut(line, "="); ok {
			source = strings.TrimSpace(source)
			expected = strings.TrimSpace(expected)
			if source == "" {
				continue
			}
			entry.Source = source
			if expected != "" {
				entry.Expected = expected
				entry.Check = true
			}
		}

		entries = append(entries, entry)
	}

	return entries
}
