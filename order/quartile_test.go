package order

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"exactstat/numeric"
)

func seq(lo, hi int64) []numeric.Value {
	var out []numeric.Value
	for i := lo; i < hi; i++ {
		out = append(out, numeric.Int(i))
	}
	return out
}

func checkQuartiles(t *testing.T, data []numeric.Value, scheme QuartileScheme, q1, q2, q3 float64) {
	t.Helper()
	got, err := QuartilesOf(data, scheme)
	if err != nil {
		t.Fatalf("QuartilesOf(scheme=%d) error: %v", scheme, err)
	}
	if got.Q1.Float64() != q1 || got.Q2.Float64() != q2 || got.Q3.Float64() != q3 {
		t.Errorf("QuartilesOf(n=%d, scheme=%d) = (%v, %v, %v), want (%v, %v, %v)",
			len(data), scheme, got.Q1, got.Q2, got.Q3, q1, q2, q3)
	}
}

func TestQuartilesInclusive(t *testing.T) {
	tests := []struct {
		n          int64
		q1, q2, q3 float64
	}{
		{3, 0.5, 1, 1.5},
		{4, 0.5, 1.5, 2.5},
		{5, 1, 2, 3},
		{6, 1, 2.5, 4},
		{7, 1.5, 3, 4.5},
	}
	for _, tt := range tests {
		checkQuartiles(t, seq(0, tt.n), QuartileInclusive, tt.q1, tt.q2, tt.q3)
	}
	// Published worked examples for n = 8..15 on the range 1..n.
	ref := []struct {
		n          int64
		q1, q2, q3 float64
	}{
		{9, 2.5, 4.5, 6.5},
		{10, 3, 5, 7},
		{11, 3, 5.5, 8},
		{12, 3.5, 6, 8.5},
		{13, 3.5, 6.5, 9.5},
		{14, 4, 7, 10},
		{15, 4, 7.5, 11},
		{16, 4.5, 8, 11.5},
	}
	for _, tt := range ref {
		checkQuartiles(t, seq(1, tt.n), QuartileInclusive, tt.q1, tt.q2, tt.q3)
	}
}

func TestQuartilesExclusive(t *testing.T) {
	tests := []struct {
		n          int64
		q1, q2, q3 float64
	}{
		{3, 0, 1, 2},
		{4, 0.5, 1.5, 2.5},
		{5, 0.5, 2, 3.5},
		{6, 1, 2.5, 4},
		{7, 1, 3, 5},
	}
	for _, tt := range tests {
		checkQuartiles(t, seq(0, tt.n), QuartileExclusive, tt.q1, tt.q2, tt.q3)
	}
	ref := []struct {
		n          int64
		q1, q2, q3 float64
	}{
		{9, 2.5, 4.5, 6.5},
		{10, 2.5, 5, 7.5},
		{11, 3, 5.5, 8},
		{12, 3, 6, 9},
		{13, 3.5, 6.5, 9.5},
		{14, 3.5, 7, 10.5},
		{15, 4, 7.5, 11},
		{16, 4, 8, 12},
	}
	for _, tt := range ref {
		checkQuartiles(t, seq(1, tt.n), QuartileExclusive, tt.q1, tt.q2, tt.q3)
	}
}

func TestQuartilesMendenhall(t *testing.T) {
	tests := []struct {
		n          int64
		q1, q2, q3 float64
	}{
		{3, 0, 1, 2},
		{4, 0, 1, 3},
		{5, 1, 2, 3},
		{6, 1, 3, 4},
		{7, 1, 3, 5},
		{8, 1, 3, 6},
		{9, 2, 4, 6},
		{10, 2, 5, 7},
		{11, 2, 5, 8},
		{12, 2, 5, 9},
	}
	for _, tt := range tests {
		checkQuartiles(t, seq(0, tt.n), QuartileMendenhall, tt.q1, tt.q2, tt.q3)
	}
}

func TestQuartilesMinitab(t *testing.T) {
	tests := []struct {
		n          int64
		q1, q2, q3 float64
	}{
		{3, 0, 1, 2},
		{4, 0.25, 1.5, 2.75},
		{5, 0.5, 2, 3.5},
		{6, 0.75, 2.5, 4.25},
		{7, 1, 3, 5},
		{8, 1.25, 3.5, 5.75},
		{9, 1.5, 4, 6.5},
		{10, 1.75, 4.5, 7.25},
		{11, 2, 5, 8},
		{12, 2.25, 5.5, 8.75},
	}
	for _, tt := range tests {
		checkQuartiles(t, seq(0, tt.n), QuartileMinitab, tt.q1, tt.q2, tt.q3)
	}
}

func TestQuartilesExcel(t *testing.T) {
	tests := []struct {
		n          int64
		q1, q2, q3 float64
	}{
		{3, 0.5, 1, 1.5},
		{4, 0.75, 1.5, 2.25},
		{5, 1, 2, 3},
		{6, 1.25, 2.5, 3.75},
		{7, 1.5, 3, 4.5},
		{8, 1.75, 3.5, 5.25},
		{9, 2, 4, 6},
		{10, 2.25, 4.5, 6.75},
		{11, 2.5, 5, 7.5},
		{12, 2.75, 5.5, 8.25},
		{13, 3, 6, 9},
		{14, 3.25, 6.5, 9.75},
		{15, 3.5, 7, 10.5},
	}
	for _, tt := range tests {
		checkQuartiles(t, seq(0, tt.n), QuartileExcel, tt.q1, tt.q2, tt.q3)
	}
}

func TestQuartilesCDF(t *testing.T) {
	tests := []struct {
		n          int64
		q1, q2, q3 float64
	}{
		{3, 0, 1, 2},
		{4, 0.5, 1.5, 2.5},
		{5, 1, 2, 3},
		{6, 1, 2.5, 4},
		{7, 1, 3, 5},
		{8, 1.5, 3.5, 5.5},
		{9, 2, 4, 6},
		{10, 2, 4.5, 7},
		{11, 2, 5, 8},
		{12, 2.5, 5.5, 8.5},
	}
	for _, tt := range tests {
		checkQuartiles(t, seq(0, tt.n), QuartileCDF, tt.q1, tt.q2, tt.q3)
	}
}

func TestQuartilesBig(t *testing.T) {
	data := seq(1001, 2001)
	checkQuartiles(t, data, QuartileInclusive, 1250.5, 1500.5, 1750.5)
	checkQuartiles(t, data, QuartileExclusive, 1250.5, 1500.5, 1750.5)
	data = append(data, numeric.Int(2001))
	checkQuartiles(t, data, QuartileInclusive, 1251, 1501, 1751)
	checkQuartiles(t, data, QuartileExclusive, 1250.5, 1501, 1751.5)
	data = append(data, numeric.Int(2002))
	checkQuartiles(t, data, QuartileInclusive, 1251, 1501.5, 1752)
	checkQuartiles(t, data, QuartileExclusive, 1251, 1501.5, 1752)
	data = append(data, numeric.Int(2003))
	checkQuartiles(t, data, QuartileInclusive, 1251.5, 1502, 1752.5)
	checkQuartiles(t, data, QuartileExclusive, 1251, 1502, 1753)
}

func TestQuartilesPermutationInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	schemes := []QuartileScheme{
		QuartileInclusive, QuartileExclusive, QuartileMendenhall,
		QuartileMinitab, QuartileExcel, QuartileCDF,
	}
	for _, scheme := range schemes {
		for size := int64(3); size < 12; size++ {
			base := seq(0, size)
			want, err := QuartilesOf(base, scheme)
			if err != nil {
				t.Fatalf("QuartilesOf() error: %v", err)
			}
			for trial := 0; trial < 20; trial++ {
				perm := append([]numeric.Value{}, base...)
				rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
				got, err := QuartilesOf(perm, scheme)
				if err != nil {
					t.Fatalf("QuartilesOf() error: %v", err)
				}
				if got.Q1.Cmp(want.Q1) != 0 || got.Q2.Cmp(want.Q2) != 0 || got.Q3.Cmp(want.Q3) != 0 {
					t.Fatalf("scheme %d size %d: shuffled input changed the result", scheme, size)
				}
			}
		}
	}
}

func TestQuartilesErrors(t *testing.T) {
	if _, err := QuartilesOf(seq(0, 2), QuartileInclusive); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("QuartilesOf(2 points) error = %v, want ErrInsufficientData", err)
	}
	if _, err := QuartilesOf(seq(0, 4), QuartileScheme(0)); !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("QuartilesOf(scheme 0) error = %v, want ErrUnknownScheme", err)
	}
	if _, err := QuartilesOf(seq(0, 4), QuartileScheme(7)); !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("QuartilesOf(scheme 7) error = %v, want ErrUnknownScheme", err)
	}
}

func TestIQR(t *testing.T) {
	data := numeric.FromInts([]int64{1, 5, 12})
	got, err := IQR(data, QuartileInclusive)
	if err != nil {
		t.Fatalf("IQR() error: %v", err)
	}
	if got.Float64() != 5.5 {
		t.Errorf("inclusive IQR([1, 5, 12]) = %v, want 5.5", got)
	}
	got, err = IQR(data, QuartileExclusive)
	if err != nil {
		t.Fatalf("IQR() error: %v", err)
	}
	if got.Float64() != 11 {
		t.Errorf("exclusive IQR([1, 5, 12]) = %v, want 11", got)
	}
}

func TestMidhinge(t *testing.T) {
	// True hinges occur for n = 4N+5 items; the remaining sets cover the
	// other residues mod 4.
	a := []float64{0.1, 0.4, 1.1, 1.4, 2.1, 2.4, 3.1, 3.4, 4.1, 4.4, 5.1, 5.4, 6.1}
	b := append(append([]float64{}, a...), 6.4)
	c := append(append([]float64{}, b...), 7.1)
	d := append(append([]float64{}, c...), 7.4)
	tests := []struct {
		name string
		data []float64
		want float64
	}{
		{"Mod1", a, (1.4 + 4.4) / 2},
		{"Mod2", b, 3.25},
		{"Mod3", c, 3.5},
		{"Mod0", d, 3.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Midhinge(numeric.FromFloats(tt.data), QuartileInclusive)
			if err != nil {
				t.Fatalf("Midhinge() error: %v", err)
			}
			if got.Float64() != tt.want {
				t.Errorf("Midhinge() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrimean(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		want float64
	}{
		{"Mod0", []float64{1.1, 2.2, 3.3, 4.4, 5.5, 6.6, 7.7, 8.8},
			((2.2+3.3)/2 + 4.4 + 5.5 + (6.6+7.7)/2) / 4},
		{"Mod1", []float64{1.1, 2.2, 3.3, 4.4, 5.5, 6.6, 7.7, 8.8, 9.9},
			(3.3 + 5.5*2 + 7.7) / 4},
		{"Mod2", []float64{0.0, 1.1, 2.2, 3.3, 4.4, 5.5, 6.6, 7.7, 8.8, 9.9},
			(2.2 + 4.4 + 5.5 + 7.7) / 4},
		{"Mod3", []float64{-1.1, 0.0, 1.1, 2.2, 3.3, 4.4, 5.5, 6.6, 7.7, 8.8, 9.9},
			((1.1+2.2)/2 + 4.4*2 + (6.6+7.7)/2) / 4},
		{"Sextet", []float64{1.1, 3.3, 4.4, 6.6, 7.7, 9.9},
			(3.3 + 4.4 + 6.6 + 7.7) / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Trimean(numeric.FromFloats(tt.data), QuartileInclusive)
			if err != nil {
				t.Fatalf("Trimean() error: %v", err)
			}
			if diff := math.Abs(got.Float64() - tt.want); diff > 1e-12 {
				t.Errorf("Trimean(%v) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestQuartileSkewness(t *testing.T) {
	tests := []struct {
		name       string
		q1, q2, q3 int64
		want       float64
	}{
		{"Symmetric", 3, 5, 7, 0},
		{"RightTail", 0, 1, 10, 0.8},
		{"LeftTail", 0, 9, 10, -0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := QuartileSkewness(numeric.Int(tt.q1), numeric.Int(tt.q2), numeric.Int(tt.q3))
			if err != nil {
				t.Fatalf("QuartileSkewness() error: %v", err)
			}
			if got.Float64() != tt.want {
				t.Errorf("QuartileSkewness(%d, %d, %d) = %v, want %v", tt.q1, tt.q2, tt.q3, got, tt.want)
			}
		})
	}
}

func TestQuartileSkewnessDegenerate(t *testing.T) {
	got, err := QuartileSkewness(numeric.Int(5), numeric.Int(5), numeric.Int(5))
	if err != nil {
		t.Fatalf("QuartileSkewness() error: %v", err)
	}
	if !math.IsNaN(got.Float64()) {
		t.Errorf("QuartileSkewness(5, 5, 5) = %v, want NaN", got)
	}
}

func TestQuartileSkewnessOutOfOrder(t *testing.T) {
	tests := []struct {
		q1, q2, q3 int64
	}{
		{2, 3, 1},
		{9, 8, 7},
	}
	for _, tt := range tests {
		if _, err := QuartileSkewness(numeric.Int(tt.q1), numeric.Int(tt.q2), numeric.Int(tt.q3)); !errors.Is(err, ErrOutOfOrder) {
			t.Errorf("QuartileSkewness(%d, %d, %d) error = %v, want ErrOutOfOrder", tt.q1, tt.q2, tt.q3, err)
		}
	}
}
