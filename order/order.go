// Package order computes order statistics: medians, quartiles under the
// published textbook schemes, the R quantile types, median absolute
// deviation and five-number summaries. Inputs are samples of
// exactstat/numeric values; every function sorts a private copy, the
// caller's slice is never reordered.
package order

import (
	"errors"
	"fmt"
	"math"

	"exactstat/numeric"
)

var (
	// ErrEmptyInput is returned by operations that need at least one point.
	ErrEmptyInput = errors.New("order: empty input")
	// ErrInsufficientData is returned when a sample is smaller than the
	// operation's minimum.
	ErrInsufficientData = errors.New("order: insufficient data")
	// ErrUnknownScheme is returned for an unrecognized scheme name or code.
	ErrUnknownScheme = errors.New("order: unknown scheme")
	// ErrBadFraction is returned when a quantile fraction is outside [0, 1].
	ErrBadFraction = errors.New("order: fraction out of range")
	// ErrBadScale is returned for an unrecognized deviation scale name.
	ErrBadScale = errors.New("order: unknown scale")
	// ErrOutOfOrder is returned when quartiles supplied by the caller are
	// not in non-decreasing order.
	ErrOutOfOrder = errors.New("order: quartiles out of order")
)

// prepare validates the sample and returns a sorted copy. Non-finite
// values are rejected; ranks are undefined over NaN.
func prepare(data []numeric.Value, min int) ([]numeric.Value, error) {
	if len(data) < min {
		err := ErrInsufficientData
		if min <= 1 {
			err = ErrEmptyInput
		}
		return nil, fmt.Errorf("need at least %d data points, got %d: %w", min, len(data), err)
	}
	if err := numeric.ValidateFinite(data); err != nil {
		return nil, err
	}
	return numeric.SortedCopy(data), nil
}

// avg returns the midpoint of a and b.
func avg(a, b numeric.Value) (numeric.Value, error) {
	s, err := a.Add(b)
	if err != nil {
		return numeric.Value{}, err
	}
	return s.Div(numeric.Int(2))
}

// interpolate evaluates the 1-based fractional rank h over sorted data,
// clamping h to [1, n]. Integral ranks return the order statistic itself
// with its kind intact; fractional ranks interpolate linearly and so
// coerce to float.
func interpolate(sorted []numeric.Value, h float64) (numeric.Value, error) {
	n := len(sorted)
	if h <= 1 {
		return sorted[0], nil
	}
	if h >= float64(n) {
		return sorted[n-1], nil
	}
	j := int(math.Floor(h))
	g := h - float64(j)
	if g == 0 {
		return sorted[j-1], nil
	}
	gap, err := sorted[j].Sub(sorted[j-1])
	if err != nil {
		return numeric.Value{}, err
	}
	step, err := gap.Mul(numeric.Float(g))
	if err != nil {
		return numeric.Value{}, err
	}
	return sorted[j-1].Add(step)
}

// MinMax returns the smallest and largest values of data in one pass over
// the sample.
func MinMax(data []numeric.Value) (min, max numeric.Value, err error) {
	if len(data) == 0 {
		return numeric.Value{}, numeric.Value{}, fmt.Errorf("extremes require at least one data point: %w", ErrEmptyInput)
	}
	if err := numeric.ValidateFinite(data); err != nil {
		return numeric.Value{}, numeric.Value{}, err
	}
	min, max = data[0], data[0]
	for _, x := range data[1:] {
		if x.Cmp(min) < 0 {
			min = x
		}
		if x.Cmp(max) > 0 {
			max = x
		}
	}
	return min, max, nil
}

// Range returns max - min.
func Range(data []numeric.Value) (numeric.Value, error) {
	min, max, err := MinMax(data)
	if err != nil {
		return numeric.Value{}, err
	}
	return max.Sub(min)
}

// Midrange returns the midpoint of the extremes, (min + max) / 2.
func Midrange(data []numeric.Value) (numeric.Value, error) {
	min, max, err := MinMax(data)
	if err != nil {
		return numeric.Value{}, err
	}
	return avg(min, max)
}
