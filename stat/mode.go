package stat

import (
	"fmt"

	"exactstat/numeric"
)

// Modes returns every value tied for the highest multiplicity, in ascending
// order. maxModes caps how many ties are acceptable; if more values share
// the top count the sample has no meaningful mode and ErrTooManyModes is
// returned. A maxModes of 0 means no cap.
func Modes(data []numeric.Value, maxModes int) ([]numeric.Value, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("mode requires at least one data point: %w", ErrEmptyInput)
	}
	// NaN has no sort order and would merge into a neighboring run.
	if err := numeric.ValidateFinite(data); err != nil {
		return nil, err
	}
	sorted := numeric.SortedCopy(data)
	var (
		modes []numeric.Value
		best  int
	)
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j].Cmp(sorted[i]) == 0 {
			j++
		}
		switch run := j - i; {
		case run > best:
			best = run
			modes = append(modes[:0], sorted[i])
		case run == best:
			modes = append(modes, sorted[i])
		}
		i = j
	}
	if maxModes > 0 && len(modes) > maxModes {
		return nil, fmt.Errorf("%d values share the maximum count of %d: %w", len(modes), best, ErrTooManyModes)
	}
	return modes, nil
}

// Mode returns the single most common value in data. A tie for most common
// means the sample has no unique mode and ErrTooManyModes is returned.
func Mode(data []numeric.Value) (numeric.Value, error) {
	modes, err := Modes(data, 1)
	if err != nil {
		return numeric.Value{}, err
	}
	return modes[0], nil
}
