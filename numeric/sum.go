package numeric

import (
	"fmt"
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// Sum returns the sum of data, starting from integer zero. See SumWithStart.
func Sum(data []Value) (Value, error) {
	return SumWithStart(data, Int(0))
}

// SumWithStart returns start plus the sum of data, exact to the precision of
// the coerced result kind. Empty data returns start unchanged.
//
// Pure floating-point input is accumulated through the error-compensated
// partials engine and is correctly rounded to within one unit of least
// precision; a running total that transiently overflows the float range is
// redone on the exact path, so only a truly out-of-range sum yields an
// infinity. Everything else is folded through a denominator-to-numerator
// map, summing over a lazily constructed common denominator, reduced to a
// single exact rational at the end and cast to the result kind. The result
// kind follows the coercion lattice, consulted once per distinct kind
// encountered rather than once per element; mixing exact rationals with
// decimals fails with ErrIncompatibleKinds.
func SumWithStart(data []Value, start Value) (Value, error) {
	if floatOnly(data, start) {
		var p partialSums
		p.Add(start.Float64())
		for _, x := range data {
			p.Add(x.Float64())
		}
		if p.overflowed {
			// Finite inputs whose running total left the float range;
			// the exact rational path recovers the true sum, which may
			// cancel back to a finite value.
			return ratioSum(data, start)
		}
		return Float(p.Total()), nil
	}
	return ratioSum(data, start)
}

// floatOnly reports whether the fast float path applies: all data values
// are floats and the start seed is a float or an exactly representable
// integer.
func floatOnly(data []Value, start Value) bool {
	switch start.kind {
	case KindFloat:
	case KindInt:
		if int64(float64(start.i)) != start.i {
			return false
		}
	default:
		return false
	}
	if len(data) == 0 {
		return start.kind == KindFloat
	}
	for _, x := range data {
		if x.kind != KindFloat {
			return false
		}
	}
	return true
}

type ratioBucket struct {
	den *big.Int
	num *big.Int
}

func ratioSum(data []Value, start Value) (Value, error) {
	kind := start.kind
	seen := [4]bool{}
	seen[kind] = true

	buckets := make(map[string]*ratioBucket)
	special := 0.0
	hasSpecial := false

	fold := func(v Value) {
		if hasSpecial {
			special += v.Float64()
			return
		}
		r, ok := v.exactRat()
		if !ok {
			// Infinity or NaN: short-circuit into the non-finite slot.
			hasSpecial = true
			special = v.Float64()
			return
		}
		key := r.Denom().String()
		b, ok := buckets[key]
		if !ok {
			b = &ratioBucket{den: new(big.Int).Set(r.Denom()), num: new(big.Int)}
			buckets[key] = b
		}
		b.num.Add(b.num, r.Num())
	}

	fold(start)
	for _, x := range data {
		if !seen[x.kind] {
			k, err := Coerce(kind, x.kind)
			if err != nil {
				return Value{}, fmt.Errorf("sum: %w", err)
			}
			kind = k
			seen[x.kind] = true
		}
		fold(x)
	}

	if hasSpecial {
		// Only float and decimal kinds can represent non-finite results.
		switch kind {
		case KindFloat:
			return Float(special), nil
		case KindDec:
			return nonFiniteDecimal(special), nil
		}
		return Value{}, fmt.Errorf("sum: %w", ErrNonFinite)
	}

	total := new(big.Rat)
	term := new(big.Rat)
	for _, b := range buckets {
		total.Add(total, term.SetFrac(b.num, b.den))
	}

	switch kind {
	case KindInt:
		if !total.IsInt() {
			return Value{}, fmt.Errorf("sum: integer total has denominator %s", total.Denom())
		}
		if total.Num().IsInt64() {
			return Int(total.Num().Int64()), nil
		}
		// Out of int64 range: promote to an exact rational rather than wrap.
		return Value{kind: KindRat, r: new(big.Rat).Set(total)}, nil
	case KindRat:
		return Value{kind: KindRat, r: new(big.Rat).Set(total)}, nil
	case KindDec:
		d, err := ratDecimal(total)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindDec, d: d}, nil
	default:
		f, _ := total.Float64()
		return Float(f), nil
	}
}

func nonFiniteDecimal(f float64) Value {
	d := new(apd.Decimal)
	switch {
	case math.IsInf(f, 1):
		d.Form = apd.Infinite
	case math.IsInf(f, -1):
		d.Form = apd.Infinite
		d.Negative = true
	default:
		d.Form = apd.NaN
	}
	return Value{kind: KindDec, d: d}
}
