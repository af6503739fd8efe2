// Package tabstat summarizes the numeric columns of a tab-delimited table.
//
// A run reads one table, finds the header row, probes every column for
// numeric content and writes the minimum, maximum and average of each
// numeric column to a JSON document.
//
// # Basic Usage
//
//	result, err := tabstat.Summarize("A\tB\t\n1\t2\t\n3\t4\t\n5\t6")
//	if err != nil {
//	    return err
//	}
//	for _, e := range result.Entries {
//	    fmt.Printf("%s: min=%v max=%v avg=%v\n", e.Name, e.Data.Min, e.Data.Max, e.Data.Avg)
//	}
//
// Running the whole pipeline against a file:
//
//	err := tabstat.Run(tabstat.Config{Input: "data.tsv"}, logger)
//
// # Package Structure
//
// This package wires together the table, stats and emit packages. Use those
// directly for finer control over extraction policies and output.
package tabstat

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/arloliu/tabstat/compress"
	"github.com/arloliu/tabstat/emit"
	"github.com/arloliu/tabstat/errs"
	"github.com/arloliu/tabstat/format"
	"github.com/arloliu/tabstat/stats"
	"github.com/arloliu/tabstat/table"
)

// Result is the outcome of summarizing one table.
type Result struct {
	// Entries holds one entry per numeric column, in header order.
	Entries []stats.Entry
	// Points is the number of tokens in the data block.
	Points int
	// Columns is the number of header columns.
	Columns int
	// Rows is Points / Columns rounded down.
	Rows int
	// PartialRow is set when Points is not a multiple of Columns.
	PartialRow bool
}

// Summarize tokenizes text, splits header from data and extracts the
// numeric columns.
//
// Returns errs.ErrNoDataBoundary or errs.ErrNoNumericData (wrapped) when
// the table cannot be summarized.
func Summarize(text string, opts ...table.ExtractOption) (Result, error) {
	layout, err := table.DetectLayout(table.Tokenize(text))
	if err != nil {
		return Result{}, err
	}

	ex, err := table.NewExtractor(opts...)
	if err != nil {
		return Result{}, err
	}

	grid := layout.Grid()
	res := Result{
		Points:     grid.Len(),
		Columns:    grid.Width(),
		Rows:       grid.Rows(),
		PartialRow: grid.HasPartialRow(),
	}

	entries, err := ex.Extract(layout)
	if err != nil {
		return res, err
	}
	res.Entries = entries

	return res, nil
}

// ReadInput reads the whole file at path. Zstd, S2 and LZ4 framed files are
// detected by their magic number and decompressed. The text must be valid
// UTF-8.
func ReadInput(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	comp := format.DetectCompression(raw)
	codec, err := compress.GetCodec(comp)
	if err != nil {
		return "", err
	}

	data, err := codec.Decompress(raw)
	if err != nil {
		return "", fmt.Errorf("decompress %s input: %w", comp, err)
	}

	if !utf8.Valid(data) {
		return "", errs.ErrInvalidEncoding
	}

	return string(data), nil
}

// Config describes one run.
type Config struct {
	// Input is the table file to read.
	Input string
	// Output is the document path. Empty means emit.DefaultDestination,
	// suffixed with the compression's extension when compressed.
	Output string
	// Compression is applied to the output document.
	Compression format.CompressionType
	// Strict fails the run on the first unparsable cell of a numeric column.
	Strict bool
	// Truncate ignores the cells of a trailing partial row.
	Truncate bool
}

func (c Config) extractOptions(logger zerolog.Logger) []table.ExtractOption {
	opts := []table.ExtractOption{
		table.WithDuplicateHandler(func(name string) {
			logger.Warn().Str("column", name).Msg("duplicate column name")
		}),
	}
	if c.Strict {
		opts = append(opts, table.WithParsePolicy(table.FailOnParseFailure))
	}
	if c.Truncate {
		opts = append(opts, table.WithRowPolicy(table.TruncateIncompleteRow))
	}

	return opts
}

func (c Config) emitOptions() []emit.Option {
	opts := []emit.Option{}
	switch {
	case c.Output != "":
		opts = append(opts, emit.WithDestination(c.Output))
	case c.Compression.Extension() != "":
		opts = append(opts, emit.WithDestination(emit.DefaultDestination+c.Compression.Extension()))
	}
	if c.Compression != 0 {
		opts = append(opts, emit.WithCompression(c.Compression))
	}

	return opts
}

// Run reads cfg.Input, summarizes it and writes the document. Nothing is
// written when any step fails.
func Run(cfg Config, logger zerolog.Logger) error {
	emitter, err := emit.NewEmitter(cfg.emitOptions()...)
	if err != nil {
		return err
	}

	logger.Info().Str("file", cfg.Input).Msgf("Reading from %q ...", cfg.Input)

	text, err := ReadInput(cfg.Input)
	if err != nil {
		return fmt.Errorf("error reading file %s: %w", cfg.Input, err)
	}

	res, err := Summarize(text, cfg.extractOptions(logger)...)
	if res.Columns > 0 {
		logger.Info().
			Int("points", res.Points).
			Int("columns", res.Columns).
			Int("rows", res.Rows).
			Msgf("Data Points: %d | Columns: %d | Rows: %d", res.Points, res.Columns, res.Rows)
	}
	if res.PartialRow {
		logger.Warn().
			Int("cells", res.Points-res.Rows*res.Columns).
			Bool("ignored", cfg.Truncate).
			Msg("trailing partial row")
	}
	if err != nil {
		return fmt.Errorf("couldn't process the file: %w", err)
	}

	for _, e := range res.Entries {
		logger.Debug().
			Str("column", e.Name).
			Int("values", e.Data.Count()).
			Float64("min", e.Data.Min).
			Float64("max", e.Data.Max).
			Float64("avg", e.Data.Avg).
			Msg("column summary")
	}

	if err := emitter.WriteFile(res.Entries); err != nil {
		return err
	}

	logger.Info().Str("output", emitter.Destination()).Msgf("Outputted to %q", emitter.Destination())

	return nil
}
