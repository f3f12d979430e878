package order

import (
	"fmt"
	"math"

	"exactstat/numeric"
)

// QuantileScheme identifies one of the quantile estimators. Codes 1
// through 9 are the nine types catalogued by Hyndman and Fan, as
// implemented by R's quantile function; code 10 is the rank rule used by
// the lower quartile difference estimator.
type QuantileScheme int

const (
	QuantileR1  QuantileScheme = 1
	QuantileR2  QuantileScheme = 2
	QuantileR3  QuantileScheme = 3
	QuantileR4  QuantileScheme = 4
	QuantileR5  QuantileScheme = 5
	QuantileR6  QuantileScheme = 6
	QuantileR7  QuantileScheme = 7
	QuantileR8  QuantileScheme = 8
	QuantileR9  QuantileScheme = 9
	QuantileLQD QuantileScheme = 10
)

// Quantile returns the p-th quantile of data under the given scheme, for
// p in [0, 1]. Fractional ranks past either end of the sample clamp to
// the extremes. At least two data points are required.
func Quantile(data []numeric.Value, p float64, scheme QuantileScheme) (numeric.Value, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return numeric.Value{}, fmt.Errorf("quantile: p=%v not in [0, 1]: %w", p, ErrBadFraction)
	}
	sorted, err := prepare(data, 2)
	if err != nil {
		return numeric.Value{}, fmt.Errorf("quantile: %w", err)
	}
	n := len(sorted)
	fn := float64(n)
	switch scheme {
	case QuantileR1:
		// Inverse of the empirical CDF.
		idx := clampRank(math.Ceil(fn*p), n)
		return sorted[idx-1], nil
	case QuantileR2:
		// As R1, but averaging at the jump points.
		h := fn * p
		j := int(math.Floor(h))
		if h == math.Floor(h) {
			if j < 1 {
				return sorted[0], nil
			}
			if j >= n {
				return sorted[n-1], nil
			}
			return avg(sorted[j-1], sorted[j])
		}
		return sorted[clampRank(float64(j+1), n)-1], nil
	case QuantileR3:
		// Nearest order statistic, ties to even ranks.
		h := fn*p - 0.5
		j := int(math.Floor(h))
		idx := j + 1
		if h == math.Floor(h) && j%2 == 0 {
			idx = j
		}
		return sorted[clampRank(float64(idx), n)-1], nil
	case QuantileR4:
		return interpolate(sorted, fn*p)
	case QuantileR5:
		return interpolate(sorted, fn*p+0.5)
	case QuantileR6:
		return interpolate(sorted, (fn+1)*p)
	case QuantileR7:
		return interpolate(sorted, (fn-1)*p+1)
	case QuantileR8:
		return interpolate(sorted, (fn+1.0/3)*p+1.0/3)
	case QuantileR9:
		return interpolate(sorted, (fn+0.25)*p+0.375)
	case QuantileLQD:
		return interpolate(sorted, (fn+2)*p-0.5)
	}
	return numeric.Value{}, fmt.Errorf("quantile: no scheme numbered %d: %w", scheme, ErrUnknownScheme)
}

func clampRank(h float64, n int) int {
	if h < 1 {
		return 1
	}
	if h > float64(n) {
		return n
	}
	return int(h)
}

// QuantileParams are the four parameters of the generalized quantile rule
// Q(p) = x[floor(h)] + (x[ceil(h)] - x[floor(h)]) * (C + D*frac(h)) with
// rank h = A + (n+B)*p, as in Mathematica's Quantile function. Seven of
// the nine R types are expressible this way; R2 and R3 are not.
type QuantileParams struct {
	A, B, C, D float64
}

// ParamsForScheme returns the four-parameter form of the given scheme.
// The second return is false for schemes with no such form.
func ParamsForScheme(scheme QuantileScheme) (QuantileParams, bool) {
	switch scheme {
	case QuantileR1:
		return QuantileParams{0, 0, 1, 0}, true
	case QuantileR4:
		return QuantileParams{0, 0, 0, 1}, true
	case QuantileR5:
		return QuantileParams{0.5, 0, 0, 1}, true
	case QuantileR6:
		return QuantileParams{0, 1, 0, 1}, true
	case QuantileR7:
		return QuantileParams{1, -1, 0, 1}, true
	case QuantileR8:
		return QuantileParams{1.0 / 3, 1.0 / 3, 0, 1}, true
	case QuantileR9:
		return QuantileParams{3.0 / 8, 0.25, 0, 1}, true
	}
	return QuantileParams{}, false
}

// QuantileParameterized returns the p-th quantile under the generalized
// four-parameter rule. The rank A + (n+B)*p is clamped to [1, n].
func QuantileParameterized(data []numeric.Value, p float64, params QuantileParams) (numeric.Value, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return numeric.Value{}, fmt.Errorf("quantile: p=%v not in [0, 1]: %w", p, ErrBadFraction)
	}
	sorted, err := prepare(data, 2)
	if err != nil {
		return numeric.Value{}, fmt.Errorf("quantile: %w", err)
	}
	n := len(sorted)
	h := params.A + (float64(n)+params.B)*p
	if h < 1 {
		h = 1
	}
	if h > float64(n) {
		h = float64(n)
	}
	lo := sorted[int(math.Floor(h))-1]
	hi := sorted[int(math.Ceil(h))-1]
	gamma := params.C + params.D*(h-math.Floor(h))
	if gamma == 0 {
		return lo, nil
	}
	gap, err := hi.Sub(lo)
	if err != nil {
		return numeric.Value{}, err
	}
	if gap.Sign() == 0 {
		return lo, nil
	}
	step, err := gap.Mul(numeric.Float(gamma))
	if err != nil {
		return numeric.Value{}, err
	}
	return lo.Add(step)
}

// Decile returns the i-th decile for i in 0..10 under the given scheme.
func Decile(data []numeric.Value, i int, scheme QuantileScheme) (numeric.Value, error) {
	if i < 0 || i > 10 {
		return numeric.Value{}, fmt.Errorf("decile: index %d not in 0..10: %w", i, ErrBadFraction)
	}
	return Quantile(data, float64(i)/10, scheme)
}

// Percentile returns the i-th percentile for i in 0..100 under the given
// scheme.
func Percentile(data []numeric.Value, i int, scheme QuantileScheme) (numeric.Value, error) {
	if i < 0 || i > 100 {
		return numeric.Value{}, fmt.Errorf("percentile: index %d not in 0..100: %w", i, ErrBadFraction)
	}
	return Quantile(data, float64(i)/100, scheme)
}
