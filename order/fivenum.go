package order

import (
	"fmt"

	"exactstat/numeric"
)

// Summary is Tukey's five-number summary of a sample.
type Summary struct {
	Minimum    numeric.Value
	LowerHinge numeric.Value
	Median     numeric.Value
	UpperHinge numeric.Value
	Maximum    numeric.Value
}

// FiveNum returns the five-number summary of data: the extremes, the
// median and the Tukey hinges. At least three data points are required.
func FiveNum(data []numeric.Value) (Summary, error) {
	sorted, err := prepare(data, 3)
	if err != nil {
		return Summary{}, fmt.Errorf("fivenum: %w", err)
	}
	q, err := QuartilesOf(sorted, QuartileInclusive)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Minimum:    sorted[0],
		LowerHinge: q.Q1,
		Median:     q.Q2,
		UpperHinge: q.Q3,
		Maximum:    sorted[len(sorted)-1],
	}, nil
}
