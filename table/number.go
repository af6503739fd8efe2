package table

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseNumber parses s as a 64-bit float.
//
// Accepted: optional sign, decimal digits with optional fraction and
// exponent, and the case-insensitive words inf, infinity and nan (a signed
// nan is still NaN). Values
// beyond the float64 range saturate to ±Inf instead of failing.
// Hexadecimal floats and underscore digit separators are rejected.
// Surrounding whitespace is not trimmed.
func ParseNumber(s string) (float64, bool) {
	if s == "" || strings.ContainsRune(s, '_') || isHex(s) {
		return 0, false
	}
	if isSignedNaN(s) {
		return math.NaN(), true
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}

		return 0, false
	}

	return v, true
}

func isHex(s string) bool {
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}

	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func isSignedNaN(s string) bool {
	return len(s) == 4 && (s[0] == '+' || s[0] == '-') && strings.EqualFold(s[1:], "nan")
}
