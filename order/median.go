package order

import (
	"fmt"

	"exactstat/numeric"
)

// MedianKind selects which median an operation uses when the sample has an
// even number of points.
type MedianKind int

const (
	// StandardMedian averages the two middle values of an even sample.
	StandardMedian MedianKind = iota
	// LowMedian takes the smaller of the two middle values.
	LowMedian
	// HighMedian takes the larger of the two middle values.
	HighMedian
)

func (k MedianKind) String() string {
	switch k {
	case StandardMedian:
		return "standard"
	case LowMedian:
		return "low"
	case HighMedian:
		return "high"
	}
	return fmt.Sprintf("MedianKind(%d)", int(k))
}

// Median returns the middle value of data, averaging the two central values
// when the sample size is even.
func Median(data []numeric.Value) (numeric.Value, error) {
	return MedianOf(data, StandardMedian)
}

// MedianLow returns the middle value, taking the smaller of the two central
// values when the sample size is even. The result is always a member of the
// sample.
func MedianLow(data []numeric.Value) (numeric.Value, error) {
	return MedianOf(data, LowMedian)
}

// MedianHigh returns the middle value, taking the larger of the two central
// values when the sample size is even. The result is always a member of the
// sample.
func MedianHigh(data []numeric.Value) (numeric.Value, error) {
	return MedianOf(data, HighMedian)
}

// MedianOf returns the median of data under the given kind.
func MedianOf(data []numeric.Value, kind MedianKind) (numeric.Value, error) {
	sorted, err := prepare(data, 1)
	if err != nil {
		return numeric.Value{}, fmt.Errorf("median: %w", err)
	}
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2], nil
	}
	switch kind {
	case StandardMedian:
		return avg(sorted[n/2-1], sorted[n/2])
	case LowMedian:
		return sorted[n/2-1], nil
	case HighMedian:
		return sorted[n/2], nil
	}
	return numeric.Value{}, fmt.Errorf("median: unrecognized kind %v: %w", kind, ErrUnknownScheme)
}

// MedianGrouped estimates the median of continuous data that has been
// rounded or binned to multiples of interval. Each sample point is treated
// as the midpoint of a class of the given width and the median is
// interpolated within the class holding the middle rank.
func MedianGrouped(data []numeric.Value, interval numeric.Value) (numeric.Value, error) {
	if !interval.IsFinite() {
		return numeric.Value{}, fmt.Errorf("median grouped: interval: %w", numeric.ErrNonFinite)
	}
	sorted, err := prepare(data, 1)
	if err != nil {
		return numeric.Value{}, fmt.Errorf("median grouped: %w", err)
	}
	n := len(sorted)
	if n == 1 {
		return sorted[0], nil
	}
	x := sorted[n/2]
	half, err := interval.Div(numeric.Int(2))
	if err != nil {
		return numeric.Value{}, fmt.Errorf("median grouped: %w", err)
	}
	lower, err := x.Sub(half)
	if err != nil {
		return numeric.Value{}, err
	}
	// cf counts the values strictly below the median class, f the values
	// inside it.
	cf := n / 2
	for cf > 0 && sorted[cf-1].Cmp(x) == 0 {
		cf--
	}
	f := cf
	for f < n && sorted[f].Cmp(x) == 0 {
		f++
	}
	f -= cf
	// The middle rank n/2 is a true half, so work in halves to keep the
	// arithmetic exact: (n/2 - cf)/f == (n - 2*cf)/(2*f).
	within, err := interval.Mul(numeric.Int(int64(n - 2*cf)))
	if err != nil {
		return numeric.Value{}, err
	}
	within, err = within.Div(numeric.Int(int64(2 * f)))
	if err != nil {
		return numeric.Value{}, err
	}
	return lower.Add(within)
}
