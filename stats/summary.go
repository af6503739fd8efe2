// Package stats computes per-column statistics and pairs them with column
// names.
package stats

import (
	"fmt"

	"github.com/arloliu/tabstat/errs"
)

// Summary holds the parsed values of one numeric column together with their
// minimum, maximum and arithmetic mean.
//
// A Summary is never built from an empty value set. For finite inputs
// Min <= Avg <= Max always holds.
type Summary struct {
	Values []float64
	Min    float64
	Max    float64
	Avg    float64
}

// NewSummary computes the statistics of values in a single pass.
//
// Min and max start at values[0]. Each value is first compared against the
// running minimum and only checked against the maximum when it is not a new
// minimum. The mean is sum/len(values), clamped into [Min, Max] so rounding
// in the sum cannot push it outside the observed range.
//
// The values slice is retained, not copied.
//
// Returns errs.ErrEmptyColumn when values is empty.
func NewSummary(values []float64) (*Summary, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("summarize: %w", errs.ErrEmptyColumn)
	}

	minVal, maxVal := values[0], values[0]
	var sum float64
	for _, v := range values {
		if v < minVal {
			minVal = v
		} else if v > maxVal {
			maxVal = v
		}
		sum += v
	}

	avg := sum / float64(len(values))
	if avg < minVal {
		avg = minVal
	} else if avg > maxVal {
		avg = maxVal
	}

	return &Summary{
		Values: values,
		Min:    minVal,
		Max:    maxVal,
		Avg:    avg,
	}, nil
}

// Count returns the number of values the summary was computed from.
func (s *Summary) Count() int {
	return len(s.Values)
}
