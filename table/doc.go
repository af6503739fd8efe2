// Package table turns tab-delimited text into numeric columns.
//
// # Input Grammar
//
// The text is split on every tab character into tokens. Line breaks are not
// delimiters on their own: rows of the source format end with a tab, so the
// line break ends up at the front of the next row's first token. The first
// token containing a line break therefore marks the start of the data block:
//
//	"time\ttemp\t\n0\t21.5\t\n1\t22.0"
//	tokens: ["time" "temp" "\n0" "21.5" "\n1" "22.0"]
//	header: ["time" "temp"]
//	data:   ["0" "21.5" "\n1" "22.0"]   (boundary token trimmed)
//
// A line break inside the very first token is treated as "no boundary",
// which means a single-column file without a trailing tab is rejected with
// errs.ErrNoDataBoundary.
//
// # Columns
//
// The data block is viewed as a row-major Grid of Width() = len(header)
// columns. Column i holds the tokens at i, i+W, i+2W, ... The token in the
// first row decides whether the column is numeric; see Extractor.
package table
