package stat

import (
	"fmt"
	"math"

	"exactstat/numeric"
)

// sumSquaredDeviations returns sum((x-c)**2) with a second-pass correction
// term sum(x-c)**2/n subtracted. With the exact summation underneath the
// correction is zero whenever c is the exact mean; for a shifted or rounded
// center it recovers the sum of squared deviations about the mean, which is
// what the variance estimators need.
func sumSquaredDeviations(data []numeric.Value, center *numeric.Value) (numeric.Value, error) {
	if len(data) == 0 {
		return numeric.Value{}, fmt.Errorf("spread requires at least one data point: %w", ErrEmptyInput)
	}
	c := center
	if c == nil {
		m, err := Mean(data)
		if err != nil {
			return numeric.Value{}, err
		}
		c = &m
	}
	devs := make([]numeric.Value, len(data))
	squares := make([]numeric.Value, len(data))
	for i, x := range data {
		d, err := x.Sub(*c)
		if err != nil {
			return numeric.Value{}, err
		}
		sq, err := d.Mul(d)
		if err != nil {
			return numeric.Value{}, err
		}
		devs[i] = d
		squares[i] = sq
	}
	ss, err := numeric.Sum(squares)
	if err != nil {
		return numeric.Value{}, err
	}
	devTotal, err := numeric.Sum(devs)
	if err != nil {
		return numeric.Value{}, err
	}
	devSq, err := devTotal.Mul(devTotal)
	if err != nil {
		return numeric.Value{}, err
	}
	correction, err := devSq.Div(numeric.Int(int64(len(data))))
	if err != nil {
		return numeric.Value{}, err
	}
	ss, err = ss.Sub(correction)
	if err != nil {
		return numeric.Value{}, err
	}
	if ss.Sign() < 0 {
		// In exact arithmetic the corrected sum equals sum((x-mean)**2)
		// for any finite center, so a negative here is either float
		// round-off (clamp) or a genuinely bad center (reject).
		if zero, ok := clampRoundoff(ss, correction); ok {
			return zero, nil
		}
		return numeric.Value{}, fmt.Errorf("center %v yields negative sum of squared deviations: %w", *c, ErrBadCenter)
	}
	return ss, nil
}

// clampRoundoff reports whether a negative corrected sum of squares is
// round-off noise, returning the zero to use in its place. Only float
// results qualify, and only within 1e-9 of the correction magnitude; exact
// kinds carry no round-off, so any negative there is substantive.
func clampRoundoff(ss, correction numeric.Value) (numeric.Value, bool) {
	if ss.Kind() != numeric.KindFloat {
		return numeric.Value{}, false
	}
	tol := 1e-9 * math.Max(math.Abs(correction.Float64()), 1)
	if math.Abs(ss.Float64()) > tol {
		return numeric.Value{}, false
	}
	return numeric.Float(0), true
}

// Variance returns the sample variance of data, with n-1 degrees of freedom.
// If center is non-nil it is used in place of the mean; callers normally pass
// a precomputed mean to avoid recomputing it.
func Variance(data []numeric.Value, center *numeric.Value) (numeric.Value, error) {
	if len(data) < 2 {
		return numeric.Value{}, fmt.Errorf("variance requires at least two data points: %w", ErrInsufficientData)
	}
	ss, err := sumSquaredDeviations(data, center)
	if err != nil {
		return numeric.Value{}, err
	}
	return ss.Div(numeric.Int(int64(len(data) - 1)))
}

// PVariance returns the population variance of data, dividing by n. If
// center is non-nil it is used in place of the mean.
func PVariance(data []numeric.Value, center *numeric.Value) (numeric.Value, error) {
	if len(data) == 0 {
		return numeric.Value{}, fmt.Errorf("pvariance requires at least one data point: %w", ErrEmptyInput)
	}
	ss, err := sumSquaredDeviations(data, center)
	if err != nil {
		return numeric.Value{}, err
	}
	return ss.Div(numeric.Int(int64(len(data))))
}

// Stdev returns the sample standard deviation, the square root of Variance.
func Stdev(data []numeric.Value, center *numeric.Value) (numeric.Value, error) {
	v, err := Variance(data, center)
	if err != nil {
		return numeric.Value{}, err
	}
	return v.Sqrt()
}

// PStdev returns the population standard deviation, the square root of
// PVariance.
func PStdev(data []numeric.Value, center *numeric.Value) (numeric.Value, error) {
	v, err := PVariance(data, center)
	if err != nil {
		return numeric.Value{}, err
	}
	return v.Sqrt()
}
