// Package errs defines the sentinel errors returned across tabstat.
//
// Callers classify failures with errors.Is; producers wrap these with
// additional context using fmt.Errorf and the %w verb.
package errs

import "errors"

var (
	// ErrUsage is returned when the command line does not name exactly one input file.
	ErrUsage = errors.New("usage: expected exactly one input filename")

	// ErrNoDataBoundary is returned when no token contains a line break, so the
	// header row cannot be separated from the data block. A line break inside
	// the very first token is reported the same way.
	ErrNoDataBoundary = errors.New("couldn't find where the data starts")

	// ErrNoNumericData is returned when no header column probes as numeric.
	ErrNoNumericData = errors.New("no numeric data was found")

	// ErrInvalidNumber is returned under the strict parse policy when a cell
	// of a numeric column does not parse.
	ErrInvalidNumber = errors.New("invalid numeric value")

	// ErrEmptyColumn is returned when a summary is requested for zero values.
	ErrEmptyColumn = errors.New("column has no values")

	// ErrInvalidEncoding is returned when the input is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")

	// ErrUnsupportedCompression is returned for an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
