package table

import (
	"fmt"
	"strings"

	"github.com/arloliu/tabstat/errs"
)

// boundaryMarker is the character whose first occurrence inside a token
// starts the data block.
const boundaryMarker = "\n"

// Layout is a token stream split into header names and the data block.
type Layout struct {
	Header []string
	Data   []string
}

// Width returns the number of header columns.
func (l Layout) Width() int {
	return len(l.Header)
}

// Grid returns the data block as a row-major grid with one column per header.
func (l Layout) Grid() Grid {
	return NewGrid(l.Data, len(l.Header))
}

// DetectLayout finds the first token containing a line break, trims that
// token in place and splits tokens around it. Tokens before it form the
// header; the trimmed token and everything after it form the data block.
//
// Returns errs.ErrNoDataBoundary when no token contains a line break or when
// the only candidate is token 0.
func DetectLayout(tokens []string) (Layout, error) {
	k := boundaryIndex(tokens)
	if k == 0 {
		return Layout{}, fmt.Errorf("detect layout of %d tokens: %w", len(tokens), errs.ErrNoDataBoundary)
	}

	tokens[k] = strings.TrimSpace(tokens[k])

	return Layout{
		Header: tokens[:k:k],
		Data:   tokens[k:],
	}, nil
}

// boundaryIndex returns the index of the first token containing the
// boundary marker, or 0 when there is none. A marker in token 0 is
// indistinguishable from "none".
func boundaryIndex(tokens []string) int {
	for i, tok := range tokens {
		if strings.Contains(tok, boundaryMarker) {
			return i
		}
	}

	return 0
}
