package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"go.uber.org/zap"

	"codeberg.org/snonux/kirlot/internal/archive"
	"codeberg.org/snonux/kirlot/internal/batch"
	"codeberg.org/snonux/kirlot/internal/cli"
	"codeberg.org/snonux/kirlot/internal/convert"
	"codeberg.org/snonux/kirlot/internal/export"
	"codeberg.org/snonux/kirlot/internal/history"
	"codeberg.org/snonux/kirlot/internal/translit"
)

// ErrCheckFailed is returned when batch check pairs did not match.
var ErrCheckFailed = errors.New("batch check failed")

// Processor runs the CLI conversion workflow
type Processor struct {
	flags   *cli.Flags
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	logger  *zap.Logger
	store   *history.Store
	service *convert.Service
}

// Option configures a Processor
type Option func(*Processor)

// WithInput sets the reader used when no text or file is given
func WithInput(r io.Reader) Option {
	return func(p *Processor) { p.in = r }
}

// WithOutput sets the writer for converted text
func WithOutput(w io.Writer) Option {
	return func(p *Processor) { p.out = w }
}

// WithErrorOutput sets the writer for summaries and diagnostics
func WithErrorOutput(w io.Writer) Option {
	return func(p *Processor) { p.errOut = w }
}

// WithLogger sets the structured logger
func WithLogger(l *zap.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewProcessor creates a new processor
func NewProcessor(flags *cli.Flags, opts ...Option) *Processor {
	p := &Processor{
		flags:  flags,
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.service = convert.NewService(nil, convert.WithLogger(p.logger))
	return p
}

// Close releases the history database if it was opened
func (p *Processor) Close() error {
	if p.store == nil {
		return nil
	}
	err := p.store.Close()
	p.store = nil
	return err
}

// Run dispatches to the requested mode: archive, history listing, batch,
// text arguments, a file, or stdin.
func (p *Processor) Run(ctx context.Context, args []string) error {
	if _, err := translit.ParseDirection(p.flags.Direction); err != nil {
		return err
	}

	switch {
	case p.flags.Archive:
		return p.ArchiveHistory()
	case p.flags.ListHistory > 0:
		return p.ListHistory(ctx, p.flags.ListHistory)
	}

	if p.flags.History {
		if err := p.enableHistory(); err != nil {
			return err
		}
	}

	switch {
	case p.flags.BatchFile != "":
		return p.ProcessBatch(ctx)
	case len(args) > 0:
		return p.ProcessText(ctx, strings.Join(args, " "))
	case p.flags.InputFile != "":
		return p.ProcessFile(ctx, p.flags.InputFile)
	default:
		return p.ProcessReader(ctx, p.in)
	}
}

// enableHistory opens the history database and routes conversions into it
func (p *Processor) enableHistory() error {
	store, err := p.openStore()
	if err != nil {
		return err
	}
	guard := history.NewGuard(store, p.logger)
	p.service = convert.NewService(nil, convert.WithLogger(p.logger), convert.WithRecorder(guard))
	return nil
}

func (p *Processor) openStore() (*history.Store, error) {
	if p.store != nil {
		return p.store, nil
	}
	store, err := history.Open(p.flags.HistoryDB)
	if err != nil {
		return nil, err
	}
	p.store = store
	return store, nil
}

// ProcessText converts text and writes the result
func (p *Processor) ProcessText(ctx context.Context, text string) error {
	res, err := p.service.Convert(ctx, convert.Request{
		Text:      text,
		Direction: translit.Direction(p.flags.Direction),
		MaxWords:  p.flags.MaxWords,
	})
	if err != nil {
		return err
	}

	if res.Truncated {
		fmt.Fprintf(p.errOut, "Note: input truncated to %d words\n", p.flags.MaxWords)
	}
	if p.flags.Stats {
		fmt.Fprintf(p.errOut, "Direction: %s\nWords: %d\n", res.Direction, res.Words)
	}

	return p.writeResult(res.Text)
}

// ProcessFile converts a whole file as one text
func (p *Processor) ProcessFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	return p.ProcessText(ctx, string(data))
}

// ProcessReader converts everything read from r
func (p *Processor) ProcessReader(ctx context.Context, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return p.ProcessText(ctx, string(data))
}

// writeResult writes converted text to the output file or the output writer
func (p *Processor) writeResult(text string) error {
	if p.flags.OutputPath != "" {
		if err := os.WriteFile(p.flags.OutputPath, []byte(text), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(p.out, text)
	return err
}

// ProcessBatch converts a batch file line by line and checks expectations
func (p *Processor) ProcessBatch(ctx context.Context) error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	dir, err := translit.ParseDirection(p.flags.Direction)
	if err != nil {
		return err
	}
	csvPath := export.ResolveOutputPath(p.flags.CSVPath, p.flags.BatchFile, dir)
	opts := export.DefaultGeneratorOptions()
	opts.OutputPath = csvPath
	gen := export.NewGenerator(opts)
	var results []string
	errorCount := 0

	for _, entry := range entries {
		res, err := p.service.Convert(ctx, convert.Request{
			Text:      entry.Source,
			Direction: dir,
			MaxWords:  p.flags.MaxWords,
		})
		if err != nil {
			fmt.Fprintf(p.errOut, "Error converting line %d '%s': %v\n", entry.Line, entry.Source, err)
			errorCount++
			continue
		}

		record := export.Record{
			Source:    entry.Source,
			Result:    res.Text,
			Direction: res.Direction,
			Expected:  entry.Expected,
			Checked:   entry.Check,
		}
		gen.AddRecord(record)
		results = append(results, res.Text)

		if !record.Match() {
			fmt.Fprintf(p.errOut, "  ✗ Line %d: '%s' → '%s', expected '%s'\n",
				entry.Line, entry.Source, res.Text, entry.Expected)
		}
	}

	if err := p.writeResult(strings.Join(results, "\n")); err != nil {
		return err
	}

	if p.flags.CSVPath != "" {
		if err := gen.GenerateCSV(); err != nil {
			return err
		}
		fmt.Fprintf(p.errOut, "CSV export created: %s\n", csvPath)
	}

	total, checked, mismatched := gen.Stats()

	// Print summary
	fmt.Fprintf(p.errOut, "\n=== Batch Summary ===\n")
	fmt.Fprintf(p.errOut, "Total lines: %d\n", len(entries))
	fmt.Fprintf(p.errOut, "Converted: %d\n", total)
	fmt.Fprintf(p.errOut, "Checked: %d\n", checked)
	fmt.Fprintf(p.errOut, "Mismatched: %d\n", mismatched)
	if errorCount > 0 {
		fmt.Fprintf(p.errOut, "Errors: %d\n", errorCount)
	}
	fmt.Fprintf(p.errOut, "=====================\n")

	if mismatched > 0 {
		return fmt.Errorf("%w: %d of %d checks mismatched", ErrCheckFailed, mismatched, checked)
	}
	return nil
}

// ListHistory prints the most recent history entries, newest first
func (p *Processor) ListHistory(ctx context.Context, n int) error {
	store, err := p.openStore()
	if err != nil {
		return err
	}

	entries, err := store.Recent(ctx, n)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(p.errOut, "History is empty")
		return nil
	}

	data := pterm.TableData{{"Time", "Direction", "Source", "Result"}}
	for _, e := range entries {
		data = append(data, []string{
			e.CreatedAt.Format("2006-01-02 15:04:05"),
			string(e.Direction),
			oneLine(e.Source),
			oneLine(e.Result),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render history: %w", err)
	}
	_, err = fmt.Fprintln(p.out, table)
	return err
}

// ArchiveHistory moves the history database to the archive directory
func (p *Processor) ArchiveHistory() error {
	if err := p.Close(); err != nil {
		return fmt.Errorf("failed to close history database: %w", err)
	}

	archivePath, err := archive.ArchiveHistory(p.flags.HistoryDB)
	if err != nil {
		return fmt.Errorf("failed to archive history: %w", err)
	}

	fmt.Fprintf(p.errOut, "History archived to: %s\n", archivePath)
	return nil
}

// oneLine collapses line breaks so that an entry prints on one line
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
