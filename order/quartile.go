package order

import (
	"fmt"
	"math"

	"exactstat/numeric"
)

// QuartileScheme identifies one of the published quartile conventions.
// The zero value is not a valid scheme; use ParseQuartileScheme or one of
// the named constants.
type QuartileScheme int

const (
	// QuartileInclusive is Tukey's hinges: each half of the sorted sample
	// includes the median when n is odd.
	QuartileInclusive QuartileScheme = 1
	// QuartileExclusive is the Moore and McCabe convention, also used by
	// the TI-85 calculator: the median is excluded from both halves.
	QuartileExclusive QuartileScheme = 2
	// QuartileMendenhall follows Mendenhall and Sincich, rounding the
	// ranks (n+1)/4 and 3(n+1)/4 to the nearest integer.
	QuartileMendenhall QuartileScheme = 3
	// QuartileMinitab interpolates at ranks (n+1)/4, (n+1)/2 and 3(n+1)/4.
	QuartileMinitab QuartileScheme = 4
	// QuartileExcel follows Freund and Perles, interpolating at ranks
	// (n+3)/4, (n+1)/2 and (3n+1)/4. This is Excel's QUARTILE function.
	QuartileExcel QuartileScheme = 5
	// QuartileCDF is Langford's CDF method, inverting the empirical
	// distribution function and averaging at its jump points.
	QuartileCDF QuartileScheme = 6
)

// Quartiles holds the three quartiles of a sample.
type Quartiles struct {
	Q1 numeric.Value
	Q2 numeric.Value
	Q3 numeric.Value
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// QuartilesOf returns the quartiles of data under the given scheme. At
// least three data points are required.
func QuartilesOf(data []numeric.Value, scheme QuartileScheme) (Quartiles, error) {
	sorted, err := prepare(data, 3)
	if err != nil {
		return Quartiles{}, fmt.Errorf("quartiles: %w", err)
	}
	n := len(sorted)
	var q Quartiles
	switch scheme {
	case QuartileInclusive:
		i := (n + 1) / 4
		if r := n % 4; r == 0 || r == 3 {
			q.Q1, err = avg(sorted[i-1], sorted[i])
			if err == nil {
				q.Q3, err = avg(sorted[n-1-i], sorted[n-i])
			}
		} else {
			q.Q1, q.Q3 = sorted[i], sorted[n-1-i]
		}
		if err == nil {
			q.Q2, err = Median(sorted)
		}
	case QuartileExclusive:
		i := n / 4
		if r := n % 4; r == 0 || r == 1 {
			q.Q1, err = avg(sorted[i-1], sorted[i])
			if err == nil {
				q.Q3, err = avg(sorted[n-1-i], sorted[n-i])
			}
		} else {
			q.Q1, q.Q3 = sorted[i], sorted[n-1-i]
		}
		if err == nil {
			q.Q2, err = Median(sorted)
		}
	case QuartileMendenhall:
		// Ranks are rounded, Q1 half-up and Q2 half-even, with Q3
		// placed symmetrically to Q1 from the top.
		m := int(math.RoundToEven(float64(n+1) / 2))
		l := roundHalfUp(float64(n+1) / 4)
		u := n - l + 1
		q.Q1, q.Q2, q.Q3 = sorted[l-1], sorted[m-1], sorted[u-1]
	case QuartileMinitab:
		q, err = interpolatedQuartiles(sorted, float64(n+1)/4, float64(n+1)/2, 3*float64(n+1)/4)
	case QuartileExcel:
		q, err = interpolatedQuartiles(sorted, float64(n+3)/4, float64(n+1)/2, (3*float64(n)+1)/4)
	case QuartileCDF:
		if n%4 == 0 {
			r := n / 4
			q.Q1, err = avg(sorted[r-1], sorted[r])
			if err == nil {
				q.Q3, err = avg(sorted[3*r-1], sorted[3*r])
			}
		} else {
			q.Q1 = sorted[(n+3)/4-1]
			q.Q3 = sorted[(3*n+3)/4-1]
		}
		if err == nil {
			q.Q2, err = Median(sorted)
		}
	default:
		return Quartiles{}, fmt.Errorf("quartiles: no scheme numbered %d: %w", scheme, ErrUnknownScheme)
	}
	if err != nil {
		return Quartiles{}, err
	}
	return q, nil
}

func interpolatedQuartiles(sorted []numeric.Value, h1, h2, h3 float64) (Quartiles, error) {
	var (
		q   Quartiles
		err error
	)
	if q.Q1, err = interpolate(sorted, h1); err != nil {
		return Quartiles{}, err
	}
	if q.Q2, err = interpolate(sorted, h2); err != nil {
		return Quartiles{}, err
	}
	if q.Q3, err = interpolate(sorted, h3); err != nil {
		return Quartiles{}, err
	}
	return q, nil
}

// IQR returns the interquartile range Q3 - Q1 under the given scheme.
func IQR(data []numeric.Value, scheme QuartileScheme) (numeric.Value, error) {
	q, err := QuartilesOf(data, scheme)
	if err != nil {
		return numeric.Value{}, err
	}
	return q.Q3.Sub(q.Q1)
}

// Midhinge returns (Q1 + Q3) / 2 under the given scheme.
func Midhinge(data []numeric.Value, scheme QuartileScheme) (numeric.Value, error) {
	q, err := QuartilesOf(data, scheme)
	if err != nil {
		return numeric.Value{}, err
	}
	return avg(q.Q1, q.Q3)
}

// Trimean returns Tukey's trimean (Q1 + 2*Q2 + Q3) / 4 under the given
// scheme.
func Trimean(data []numeric.Value, scheme QuartileScheme) (numeric.Value, error) {
	q, err := QuartilesOf(data, scheme)
	if err != nil {
		return numeric.Value{}, err
	}
	mid, err := avg(q.Q1, q.Q3)
	if err != nil {
		return numeric.Value{}, err
	}
	return avg(mid, q.Q2)
}

// QuartileSkewness returns Bowley's skewness coefficient
// (Q3 - 2*Q2 + Q1) / (Q3 - Q1) for already-computed quartiles. The three
// arguments must be in non-decreasing order. When all three coincide the
// coefficient is undefined and NaN is returned.
func QuartileSkewness(q1, q2, q3 numeric.Value) (numeric.Value, error) {
	if q1.Cmp(q2) > 0 || q2.Cmp(q3) > 0 {
		return numeric.Value{}, fmt.Errorf("skewness: quartiles %v, %v, %v are not sorted: %w", q1, q2, q3, ErrOutOfOrder)
	}
	q := Quartiles{Q1: q1, Q2: q2, Q3: q3}
	den, err := q.Q3.Sub(q.Q1)
	if err != nil {
		return numeric.Value{}, err
	}
	if den.Sign() == 0 {
		return numeric.Float(math.NaN()), nil
	}
	upper, err := q.Q3.Sub(q.Q2)
	if err != nil {
		return numeric.Value{}, err
	}
	lower, err := q.Q2.Sub(q.Q1)
	if err != nil {
		return numeric.Value{}, err
	}
	num, err := upper.Sub(lower)
	if err != nil {
		return numeric.Value{}, err
	}
	return num.Div(den)
}
