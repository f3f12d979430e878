// Package stat computes measures of central tendency and spread on top of
// the exact summation engine in exactstat/numeric. Results keep the input
// kind wherever the arithmetic allows: rational samples yield rational
// means, decimal samples decimal means, integer samples divide to floats.
package stat

import (
	"errors"
	"fmt"

	"exactstat/numeric"
)

var (
	// ErrEmptyInput is returned by operations that need at least one point.
	ErrEmptyInput = errors.New("stat: empty input")
	// ErrInsufficientData is returned when a sample is smaller than the
	// operation's minimum.
	ErrInsufficientData = errors.New("stat: insufficient data")
	// ErrTooManyModes is returned when the number of equally common values
	// exceeds the caller's cap.
	ErrTooManyModes = errors.New("stat: no unique mode")
	// ErrBadCenter is returned when a supplied center produces an
	// impossible (substantively negative) sum of squared deviations.
	ErrBadCenter = errors.New("stat: invalid center")
)

// Mean returns the arithmetic mean of data.
func Mean(data []numeric.Value) (numeric.Value, error) {
	if len(data) == 0 {
		return numeric.Value{}, fmt.Errorf("mean requires at least one data point: %w", ErrEmptyInput)
	}
	total, err := numeric.Sum(data)
	if err != nil {
		return numeric.Value{}, err
	}
	return total.Div(numeric.Int(int64(len(data))))
}
