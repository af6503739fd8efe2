package table

import "iter"

// Grid is a read-only row-major view over a flat token slice with a fixed
// number of columns. It never copies the tokens.
//
// Rows counts only complete rows; a trailing partial row is still reachable
// through Column and At when the caller asks for it.
type Grid struct {
	tokens []string
	width  int
}

// NewGrid creates a view of tokens with width columns. A non-positive width
// yields an empty grid.
func NewGrid(tokens []string, width int) Grid {
	if width <= 0 {
		return Grid{}
	}

	return Grid{tokens: tokens, width: width}
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

// Len returns the number of tokens in the view.
func (g Grid) Len() int {
	return len(g.tokens)
}

// Rows returns the number of complete rows, len/width rounded down.
func (g Grid) Rows() int {
	if g.width == 0 {
		return 0
	}

	return len(g.tokens) / g.width
}

// HasPartialRow reports whether the token count is not a multiple of the width.
func (g Grid) HasPartialRow() bool {
	return g.width > 0 && len(g.tokens)%g.width != 0
}

// At returns the token at row, col and whether it exists.
func (g Grid) At(row, col int) (string, bool) {
	if col < 0 || col >= g.width || row < 0 {
		return "", false
	}
	idx := row*g.width + col
	if idx >= len(g.tokens) {
		return "", false
	}

	return g.tokens[idx], true
}

// Column yields (row, token) pairs for column col by fixed stride.
//
// With includePartial set, iteration continues into a trailing partial row
// while positions stay inside the token slice. Without it, only the first
// Rows() rows are visited.
func (g Grid) Column(col int, includePartial bool) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if col < 0 || col >= g.width {
			return
		}

		limit := len(g.tokens)
		if !includePartial {
			limit = g.Rows() * g.width
		}

		row := 0
		for i := col; i < limit; i += g.width {
			if !yield(row, g.tokens[i]) {
				return
			}
			row++
		}
	}
}
