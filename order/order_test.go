package order

import (
	"errors"
	"math"
	"testing"

	"exactstat/numeric"
)

func ratVal(num, den int64) numeric.Value {
	v, err := numeric.Rat(num, den)
	if err != nil {
		panic(err)
	}
	return v
}

func TestMinMax(t *testing.T) {
	data := numeric.FromFloats([]float64{4.5, -2.25, 9.0, 0.5})
	min, max, err := MinMax(data)
	if err != nil {
		t.Fatalf("MinMax() error: %v", err)
	}
	if min.Float64() != -2.25 || max.Float64() != 9.0 {
		t.Errorf("MinMax() = %v, %v; want -2.25, 9", min, max)
	}
	if _, _, err := MinMax(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("MinMax(nil) error = %v, want ErrEmptyInput", err)
	}
}

func TestRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name string
		data []float64
	}{
		{"NaN", []float64{1, math.NaN(), 3}},
		{"PosInf", []float64{1, 2, math.Inf(1)}},
		{"NegInf", []float64{math.Inf(-1), 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := numeric.FromFloats(tt.data)
			if _, err := Median(data); !errors.Is(err, numeric.ErrNonFinite) {
				t.Errorf("Median(%v) error = %v, want ErrNonFinite", tt.data, err)
			}
			if _, _, err := MinMax(data); !errors.Is(err, numeric.ErrNonFinite) {
				t.Errorf("MinMax(%v) error = %v, want ErrNonFinite", tt.data, err)
			}
			if _, err := QuartilesOf(data, QuartileInclusive); !errors.Is(err, numeric.ErrNonFinite) {
				t.Errorf("QuartilesOf(%v) error = %v, want ErrNonFinite", tt.data, err)
			}
		})
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		want float64
	}{
		{"Singleton", []float64{42}, 0},
		{"Pair", []float64{1, 5}, 4},
		{"Triple", []float64{1.5, 4.5, 9.0}, 7.5},
		{"Constant", []float64{5, 5, 5}, 0},
		{"ReversedPair", []float64{7, 2}, 5},
		{"Negatives", []float64{-1, -2, -3, -4, -5}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Range(numeric.FromFloats(tt.data))
			if err != nil {
				t.Fatalf("Range() error: %v", err)
			}
			if got.Float64() != tt.want {
				t.Errorf("Range(%v) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestRangeShiftInvariance(t *testing.T) {
	base := make([]float64, 500)
	for i := range base {
		base[i] = float64(i)
	}
	for _, shift := range []float64{0, 0.5, 1234.567, -1000, 1e6, 1e9} {
		data := make([]float64, len(base))
		for i, x := range base {
			data[i] = x + shift
		}
		got, err := Range(numeric.FromFloats(data))
		if err != nil {
			t.Fatalf("Range() error: %v", err)
		}
		if got.Float64() != 499 {
			t.Errorf("Range(0..499 + %v) = %v, want 499", shift, got)
		}
	}
}

func TestMidrange(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		want float64
	}{
		{"Pair", []float64{1.0, 2.5}, 1.75},
		{"Triple", []float64{1.0, 2.0, 4.0}, 2.5},
		{"Unsorted", []float64{2.0, 4.0, 1.0}, 2.5},
		{"Quad", []float64{1.0, 2.5, 3.5, 5.5}, 3.25},
		{"InnerIgnored", []float64{1.0, 2.5, 3.5, 5.5, 1.5}, 3.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Midrange(numeric.FromFloats(tt.data))
			if err != nil {
				t.Fatalf("Midrange() error: %v", err)
			}
			if got.Float64() != tt.want {
				t.Errorf("Midrange(%v) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestRangeExactKinds(t *testing.T) {
	data := []numeric.Value{ratVal(1, 3), ratVal(5, 6), ratVal(1, 2)}
	got, err := Range(data)
	if err != nil {
		t.Fatalf("Range() error: %v", err)
	}
	if got.Kind() != numeric.KindRat || got.Cmp(ratVal(1, 2)) != 0 {
		t.Errorf("rational Range() = %v (%v), want 1/2", got, got.Kind())
	}
}
