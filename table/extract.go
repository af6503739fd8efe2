package table

import (
	"fmt"
	"strings"

	"github.com/arloliu/tabstat/errs"
	"github.com/arloliu/tabstat/internal/collision"
	"github.com/arloliu/tabstat/internal/hash"
	"github.com/arloliu/tabstat/internal/options"
	"github.com/arloliu/tabstat/stats"
)

// ParsePolicy decides what happens to a cell of a numeric column that does
// not parse as a number.
type ParsePolicy uint8

const (
	// SkipOnParseFailure drops the cell from the column's values. Other
	// columns are unaffected and no error is reported.
	SkipOnParseFailure ParsePolicy = iota + 1
	// FailOnParseFailure aborts extraction with errs.ErrInvalidNumber.
	FailOnParseFailure
)

func (p ParsePolicy) String() string {
	switch p {
	case SkipOnParseFailure:
		return "skip-on-parse-failure"
	case FailOnParseFailure:
		return "fail-on-parse-failure"
	default:
		return "unknown"
	}
}

// RowPolicy decides whether a trailing partial row contributes values.
type RowPolicy uint8

const (
	// IncludePartialRow reads every stride position inside the data block,
	// including the cells of a trailing partial row.
	IncludePartialRow RowPolicy = iota + 1
	// TruncateIncompleteRow reads only the complete rows.
	TruncateIncompleteRow
)

func (p RowPolicy) String() string {
	switch p {
	case IncludePartialRow:
		return "include-partial-row"
	case TruncateIncompleteRow:
		return "truncate-incomplete-row"
	default:
		return "unknown"
	}
}

// ExtractConfig holds the extractor settings.
type ExtractConfig struct {
	ParsePolicy ParsePolicy
	RowPolicy   RowPolicy
	// OnDuplicate is called once for every header name that repeats an
	// earlier one. Duplicate columns are still extracted.
	OnDuplicate func(name string)
}

func defaultExtractConfig() ExtractConfig {
	return ExtractConfig{
		ParsePolicy: SkipOnParseFailure,
		RowPolicy:   IncludePartialRow,
	}
}

// ExtractOption is a functional option for ExtractConfig.
type ExtractOption = options.Option[*ExtractConfig]

// WithParsePolicy sets the policy for unparsable cells.
func WithParsePolicy(p ParsePolicy) ExtractOption {
	return options.New(func(cfg *ExtractConfig) error {
		switch p {
		case SkipOnParseFailure, FailOnParseFailure:
			cfg.ParsePolicy = p
			return nil
		default:
			return fmt.Errorf("invalid parse policy: %d", p)
		}
	})
}

// WithRowPolicy sets the policy for a trailing partial row.
func WithRowPolicy(p RowPolicy) ExtractOption {
	return options.New(func(cfg *ExtractConfig) error {
		switch p {
		case IncludePartialRow, TruncateIncompleteRow:
			cfg.RowPolicy = p
			return nil
		default:
			return fmt.Errorf("invalid row policy: %d", p)
		}
	})
}

// WithDuplicateHandler registers fn to be told about repeated header names.
func WithDuplicateHandler(fn func(name string)) ExtractOption {
	return options.NoError(func(cfg *ExtractConfig) {
		cfg.OnDuplicate = fn
	})
}

// Extractor turns a Layout into one Entry per numeric column.
//
// An Extractor is not safe for concurrent use.
type Extractor struct {
	cfg     ExtractConfig
	tracker *collision.Tracker
}

// NewExtractor creates an extractor. Without options it skips unparsable
// cells and reads trailing partial rows.
func NewExtractor(opts ...ExtractOption) (*Extractor, error) {
	cfg := defaultExtractConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Extractor{cfg: cfg, tracker: collision.NewTracker()}, nil
}

// Extract probes each header column and summarizes the numeric ones, in
// header order.
//
// The probe parses the untrimmed first-row token of the column. A column
// whose probe fails, or that has no first-row token at all, is skipped
// entirely. For a numeric column every cell is trimmed and parsed on its
// own, and the parse policy decides the fate of cells that fail.
//
// Returns errs.ErrNoNumericData when no column qualifies, or
// errs.ErrInvalidNumber under FailOnParseFailure.
func (e *Extractor) Extract(layout Layout) ([]stats.Entry, error) {
	e.tracker.Reset()
	grid := layout.Grid()
	includePartial := e.cfg.RowPolicy == IncludePartialRow

	entries := make([]stats.Entry, 0, len(layout.Header))
	for col, name := range layout.Header {
		if dup := e.tracker.Track(name, hash.ID(name)); dup && e.cfg.OnDuplicate != nil {
			e.cfg.OnDuplicate(name)
		}

		probe, ok := grid.At(0, col)
		if !ok {
			continue
		}
		if _, ok := ParseNumber(probe); !ok {
			continue
		}

		values, err := e.collect(grid, col, name, includePartial)
		if err != nil {
			return nil, err
		}
		if len(values) == 0 {
			continue
		}

		summary, err := stats.NewSummary(values)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		entries = append(entries, stats.NewEntry(name, summary))
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("extract %d columns: %w", len(layout.Header), errs.ErrNoNumericData)
	}

	return entries, nil
}

func (e *Extractor) collect(grid Grid, col int, name string, includePartial bool) ([]float64, error) {
	values := make([]float64, 0, grid.Rows()+1)
	for row, tok := range grid.Column(col, includePartial) {
		v, ok := ParseNumber(strings.TrimSpace(tok))
		if ok {
			values = append(values, v)
			continue
		}
		if e.cfg.ParsePolicy == FailOnParseFailure {
			return nil, fmt.Errorf("column %q row %d value %q: %w", name, row, tok, errs.ErrInvalidNumber)
		}
	}

	return values, nil
}
