package order

import (
	"fmt"
	"math"
	"strings"

	"exactstat/numeric"
)

// Deviation scales for MAD. Multiplying by a scale makes the MAD a
// consistent estimator of a distribution parameter: ScaleNormal recovers
// the standard deviation of normally distributed data, ScaleUniform that
// of uniformly distributed data.
var (
	ScaleNone    = 1.0
	ScaleNormal  = 1.4826
	ScaleUniform = math.Sqrt(4.0 / 3.0)
)

// ParseScale resolves a deviation scale name.
func ParseScale(name string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return ScaleNone, nil
	case "normal":
		return ScaleNormal, nil
	case "uniform":
		return ScaleUniform, nil
	}
	return 0, fmt.Errorf("no deviation scale named %q: %w", name, ErrBadScale)
}

// MADOptions adjusts the median absolute deviation. The zero value
// computes the plain MAD about the sample median.
type MADOptions struct {
	// Center overrides the sample median as the deviation center.
	Center *numeric.Value
	// Scale multiplies the result; zero means ScaleNone.
	Scale float64
	// Kind selects the median used for the center and for the median of
	// the deviations.
	Kind MedianKind
}

// MAD returns the median absolute deviation of data, the median of the
// distances from each point to the center. opts may be nil.
func MAD(data []numeric.Value, opts *MADOptions) (numeric.Value, error) {
	if len(data) == 0 {
		return numeric.Value{}, fmt.Errorf("mad requires at least one data point: %w", ErrEmptyInput)
	}
	var o MADOptions
	if opts != nil {
		o = *opts
	}
	center := o.Center
	if center == nil {
		m, err := MedianOf(data, o.Kind)
		if err != nil {
			return numeric.Value{}, err
		}
		center = &m
	}
	devs := make([]numeric.Value, len(data))
	for i, x := range data {
		d, err := x.Sub(*center)
		if err != nil {
			return numeric.Value{}, err
		}
		devs[i] = d.Abs()
	}
	mad, err := MedianOf(devs, o.Kind)
	if err != nil {
		return numeric.Value{}, err
	}
	if o.Scale == 0 || o.Scale == ScaleNone {
		return mad, nil
	}
	return mad.Mul(numeric.Float(o.Scale))
}
