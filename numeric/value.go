package numeric

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// DecimalContext governs precision and rounding for every decimal operation
// in this module. It is process-wide and read by all decimal arithmetic;
// replace it during startup, before any statistics are computed.
var DecimalContext = apd.BaseContext.WithPrecision(28)

var (
	// ErrNonFinite is returned when an infinity or NaN appears where a
	// finite sample value is required.
	ErrNonFinite = errors.New("non-finite value")
	// ErrDivisionByZero is returned by Div and Rat for a zero denominator.
	ErrDivisionByZero = errors.New("division by zero")
)

// Value is a number of one of the four supported kinds. The zero Value is
// the integer 0. Values are immutable: arithmetic returns new Values and
// constructors copy any pointer-backed input.
type Value struct {
	kind Kind
	i    int64
	f    float64
	r    *big.Rat
	d    *apd.Decimal
}

// Int returns an integer Value.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Float returns a floating-point Value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Rat returns the exact rational num/den.
func Rat(num, den int64) (Value, error) {
	if den == 0 {
		return Value{}, fmt.Errorf("rational %d/%d: %w", num, den, ErrDivisionByZero)
	}
	return Value{kind: KindRat, r: big.NewRat(num, den)}, nil
}

// RatFrom returns an exact-rational Value holding a copy of r.
func RatFrom(r *big.Rat) Value {
	return Value{kind: KindRat, r: new(big.Rat).Set(r)}
}

// Dec returns a fixed-precision decimal Value holding a copy of d.
func Dec(d *apd.Decimal) Value {
	return Value{kind: KindDec, d: new(apd.Decimal).Set(d)}
}

// ParseDec parses a decimal literal such as "0.1375".
func ParseDec(s string) (Value, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Value{}, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	return Value{kind: KindDec, d: d}, nil
}

// Kind reports the numeric kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsFinite reports whether v is an ordinary finite number. Integer and
// rational values are always finite.
func (v Value) IsFinite() bool {
	switch v.kind {
	case KindFloat:
		return !math.IsInf(v.f, 0) && !math.IsNaN(v.f)
	case KindDec:
		return v.d.Form == apd.Finite
	}
	return true
}

// Sign returns -1, 0 or +1 by the sign of v.
func (v Value) Sign() int {
	switch v.kind {
	case KindInt:
		switch {
		case v.i > 0:
			return 1
		case v.i < 0:
			return -1
		}
		return 0
	case KindRat:
		return v.r.Sign()
	case KindDec:
		return v.d.Sign()
	default:
		switch {
		case v.f > 0:
			return 1
		case v.f < 0:
			return -1
		}
		return 0
	}
}

// Float64 converts v to the nearest IEEE double.
func (v Value) Float64() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindRat:
		f, _ := v.r.Float64()
		return f
	case KindDec:
		f, _ := v.d.Float64()
		return f
	default:
		return v.f
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindRat:
		return v.r.RatString()
	case KindDec:
		return v.d.String()
	default:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
}

// exactRat returns v as an exact rational. The second result is false for
// non-finite floats and decimals, which have no rational form.
func (v Value) exactRat() (*big.Rat, bool) {
	switch v.kind {
	case KindInt:
		return new(big.Rat).SetInt64(v.i), true
	case KindRat:
		return new(big.Rat).Set(v.r), true
	case KindDec:
		return decimalRat(v.d)
	default:
		if !v.IsFinite() {
			return nil, false
		}
		return new(big.Rat).SetFloat64(v.f), true
	}
}

// toRat returns a freshly allocated rational equal to v, for use as a
// mutable op target. Only valid for integer and rational kinds.
func (v Value) toRat() *big.Rat {
	if v.kind == KindInt {
		return new(big.Rat).SetInt64(v.i)
	}
	return new(big.Rat).Set(v.r)
}

// toDec returns v as a decimal operand. Only valid for integer and decimal
// kinds; the result must not be mutated.
func (v Value) toDec() *apd.Decimal {
	if v.kind == KindInt {
		return apd.New(v.i, 0)
	}
	return v.d
}

// Cmp compares v and w numerically, returning -1, 0 or +1. Comparison works
// across all kind combinations, including pairs the arithmetic lattice
// rejects, since ordering never loses precision.
func (v Value) Cmp(w Value) int {
	if v.kind == w.kind {
		switch v.kind {
		case KindInt:
			switch {
			case v.i < w.i:
				return -1
			case v.i > w.i:
				return 1
			}
			return 0
		case KindRat:
			return v.r.Cmp(w.r)
		case KindDec:
			return v.d.Cmp(w.d)
		default:
			switch {
			case v.f < w.f:
				return -1
			case v.f > w.f:
				return 1
			}
			return 0
		}
	}
	a, aok := v.exactRat()
	b, bok := w.exactRat()
	if !aok || !bok {
		// Non-finite values have no exact form; fall back to float order.
		switch {
		case v.Float64() < w.Float64():
			return -1
		case v.Float64() > w.Float64():
			return 1
		}
		return 0
	}
	return a.Cmp(b)
}

// Add returns v + w in the coerced kind.
func (v Value) Add(w Value) (Value, error) {
	k, err := Coerce(v.kind, w.kind)
	if err != nil {
		return Value{}, err
	}
	switch k {
	case KindInt:
		if c, ok := addInt64(v.i, w.i); ok {
			return Int(c), nil
		}
		a := v.toRat()
		return Value{kind: KindRat, r: a.Add(a, w.toRat())}, nil
	case KindRat:
		a := v.toRat()
		return Value{kind: KindRat, r: a.Add(a, w.toRat())}, nil
	case KindDec:
		d := new(apd.Decimal)
		if _, err := DecimalContext.Add(d, v.toDec(), w.toDec()); err != nil {
			return Value{}, err
		}
		return Value{kind: KindDec, d: d}, nil
	default:
		return Float(v.Float64() + w.Float64()), nil
	}
}

// Sub returns v - w in the coerced kind.
func (v Value) Sub(w Value) (Value, error) {
	k, err := Coerce(v.kind, w.kind)
	if err != nil {
		return Value{}, err
	}
	switch k {
	case KindInt:
		if c, ok := subInt64(v.i, w.i); ok {
			return Int(c), nil
		}
		a := v.toRat()
		return Value{kind: KindRat, r: a.Sub(a, w.toRat())}, nil
	case KindRat:
		a := v.toRat()
		return Value{kind: KindRat, r: a.Sub(a, w.toRat())}, nil
	case KindDec:
		d := new(apd.Decimal)
		if _, err := DecimalContext.Sub(d, v.toDec(), w.toDec()); err != nil {
			return Value{}, err
		}
		return Value{kind: KindDec, d: d}, nil
	default:
		return Float(v.Float64() - w.Float64()), nil
	}
}

// Mul returns v * w in the coerced kind.
func (v Value) Mul(w Value) (Value, error) {
	k, err := Coerce(v.kind, w.kind)
	if err != nil {
		return Value{}, err
	}
	switch k {
	case KindInt:
		if c, ok := mulInt64(v.i, w.i); ok {
			return Int(c), nil
		}
		a := v.toRat()
		return Value{kind: KindRat, r: a.Mul(a, w.toRat())}, nil
	case KindRat:
		a := v.toRat()
		return Value{kind: KindRat, r: a.Mul(a, w.toRat())}, nil
	case KindDec:
		d := new(apd.Decimal)
		if _, err := DecimalContext.Mul(d, v.toDec(), w.toDec()); err != nil {
			return Value{}, err
		}
		return Value{kind: KindDec, d: d}, nil
	default:
		return Float(v.Float64() * w.Float64()), nil
	}
}

// Div returns v / w. Two integers divide to a float (true division);
// rationals and decimals keep their kind. A zero divisor is an error for
// every kind.
func (v Value) Div(w Value) (Value, error) {
	k, err := Coerce(v.kind, w.kind)
	if err != nil {
		return Value{}, err
	}
	if w.Sign() == 0 && w.IsFinite() {
		return Value{}, ErrDivisionByZero
	}
	switch k {
	case KindInt:
		q := new(big.Rat).SetFrac64(v.i, w.i)
		f, _ := q.Float64()
		return Float(f), nil
	case KindRat:
		a := v.toRat()
		return Value{kind: KindRat, r: a.Quo(a, w.toRat())}, nil
	case KindDec:
		d := new(apd.Decimal)
		if _, err := DecimalContext.Quo(d, v.toDec(), w.toDec()); err != nil {
			return Value{}, err
		}
		return Value{kind: KindDec, d: d}, nil
	default:
		return Float(v.Float64() / w.Float64()), nil
	}
}

// Neg returns -v.
func (v Value) Neg() Value {
	switch v.kind {
	case KindInt:
		if v.i == math.MinInt64 {
			r := new(big.Rat).SetInt64(v.i)
			return Value{kind: KindRat, r: r.Neg(r)}
		}
		return Int(-v.i)
	case KindRat:
		r := new(big.Rat).Set(v.r)
		return Value{kind: KindRat, r: r.Neg(r)}
	case KindDec:
		d := new(apd.Decimal)
		d.Neg(v.d)
		return Value{kind: KindDec, d: d}
	default:
		return Float(-v.f)
	}
}

// Abs returns the absolute value of v.
func (v Value) Abs() Value {
	if v.Sign() < 0 {
		return v.Neg()
	}
	return v
}

// Sqrt returns the square root of v, preserving the decimal kind (computed
// under DecimalContext) and converting every other kind to float.
func (v Value) Sqrt() (Value, error) {
	if v.Sign() < 0 {
		return Value{}, fmt.Errorf("square root of negative value %s", v)
	}
	if v.kind == KindDec {
		d := new(apd.Decimal)
		if _, err := DecimalContext.Sqrt(d, v.d); err != nil {
			return Value{}, err
		}
		return Value{kind: KindDec, d: d}, nil
	}
	return Float(math.Sqrt(v.Float64())), nil
}

// Integer overflow helpers. A false result means the operation does not fit
// in int64 and the caller must promote to an exact rational.

func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (a > 0 && b > 0 && c < 0) || (a < 0 && b < 0 && c >= 0) {
		return 0, false
	}
	return c, true
}

func subInt64(a, b int64) (int64, bool) {
	c := a - b
	if (a >= 0 && b < 0 && c < 0) || (a < 0 && b > 0 && c >= 0) {
		return 0, false
	}
	return c, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}
