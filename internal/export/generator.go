// Package export writes batch conversion results as CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/kirlot/internal"
	"codeberg.org/snonux/kirlot/internal/translit"
)

// Record is one converted batch line
type Record struct {
	Source    string             // Text as read from the batch file
	Result    string             // Converted text
	Direction translit.Direction // Resolved conversion direction
	Expected  string             // Expected result of a check pair
	Checked   bool               // Line was a "source = expected" check pair
}

// Match reports whether a check pair produced the expected text.
// Unchecked records always match.
func (r Record) Match() bool {
	return !r.Checked || r.Result == r.Expected
}

// GeneratorOptions configures the CSV export
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "kirlot_export.csv",
		IncludeHeaders: true,
	}
}

// Generator collects records and writes them as CSV
type Generator struct {
	options *GeneratorOptions
	records []Record
}

// NewGenerator creates a new CSV generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		records: make([]Record, 0),
	}
}

// AddRecord adds a record to the export
func (g *Generator) AddRecord(record Record) {
	g.records = append(g.records, record)
}

// Records returns the collected records
func (g *Generator) Records() []Record {
	return g.records
}

// WriteCSV writes all records to w
func (g *Generator) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	if g.options.IncludeHeaders {
		headers := []string{"Source", "Result", "Direction", "Expected", "OK"}
		if err := writer.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, record := range g.records {
		row := []string{
			record.Source,
			record.Result,
			string(record.Direction),
			record.Expected,
			formatMatch(record),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// GenerateCSV creates the CSV file at the configured output path
func (g *Generator) GenerateCSV() error {
	if dir := filepath.Dir(g.options.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	return g.WriteCSV(file)
}

// formatMatch renders the OK column; unchecked rows stay empty
func formatMatch(r Record) string {
	if !r.Checked {
		return ""
	}
	if r.Match() {
		return "yes"
	}
	return "no"
}

// Stats returns statistics about the collected records
func (g *Generator) Stats() (total, checked, mismatched int) {
	total = len(g.records)

	for _, record := range g.records {
		if record.Checked {
			checked++
			if !record.Match() {
				mismatched++
			}
		}
	}

	return
}

// ResolveOutputPath turns the --csv argument into a file path. When target
// is an existing directory the file name is derived from the batch file name
// and the direction, e.g. "Сўзлар.txt" becomes "sozlar-latin.csv".
func ResolveOutputPath(target, batchPath string, dir translit.Direction) string {
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return target
	}
	return filepath.Join(target, FileNameFor(batchPath, dir))
}

// FileNameFor builds a slug CSV file name from a batch file name.
func FileNameFor(batchPath string, dir translit.Direction) string {
	base := strings.TrimSuffix(filepath.Base(batchPath), filepath.Ext(batchPath))
	name := internal.SanitizeFilename(base)
	if dir != "" && dir != translit.Auto {
		name += "-" + string(dir)
	}
	return name + ".csv"
}
