package numeric

import (
	"fmt"
	"sort"
)

// FromInts boxes raw integers into Values.
func FromInts(xs []int64) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		out[i] = Int(x)
	}
	return out
}

// FromFloats boxes raw floats into Values.
func FromFloats(xs []float64) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		out[i] = Float(x)
	}
	return out
}

// ValidateFinite rejects samples containing infinities or NaNs.
func ValidateFinite(data []Value) error {
	for i, x := range data {
		if !x.IsFinite() {
			return fmt.Errorf("sample value %d: %w", i, ErrNonFinite)
		}
	}
	return nil
}

// SortedCopy returns the sample sorted ascending. The caller's slice is
// never reordered; every ordering operation works on a private copy.
func SortedCopy(data []Value) []Value {
	out := make([]Value, len(data))
	copy(out, data)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cmp(out[j]) < 0 })
	return out
}
