// Package numeric provides the tagged-union value type, the kind-coercion
// lattice and the exact summation engine that the statistics packages are
// built on. A Value carries exactly one of four representations: a 64-bit
// integer, an exact rational, a fixed-precision decimal, or an IEEE double.
package numeric

import (
	"errors"
	"fmt"
)

// Kind identifies the numeric representation of a Value. The set is closed:
// combining kinds outside the coercion table is rejected, never guessed.
type Kind int

const (
	KindInt Kind = iota
	KindRat
	KindDec
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindRat:
		return "rational"
	case KindDec:
		return "decimal"
	case KindFloat:
		return "float"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ErrIncompatibleKinds is returned when two kinds have no lossless common
// representation (exact rationals mixed with fixed-precision decimals).
var ErrIncompatibleKinds = errors.New("incompatible numeric kinds")

// coerceTable lists the non-trivial kind pairs. Identity and integer
// absorption are handled before the lookup; everything absent is rejected.
var coerceTable = map[[2]Kind]Kind{
	{KindRat, KindFloat}: KindFloat,
	{KindFloat, KindRat}: KindFloat,
	{KindDec, KindFloat}: KindFloat,
	{KindFloat, KindDec}: KindFloat,
}

// Coerce resolves the result kind for combining values of kinds a and b.
//
// Identical kinds keep their kind. Integers combine losslessly with every
// other kind and take that kind. Floats win over rationals and decimals.
// Rationals and decimals cannot be combined.
func Coerce(a, b Kind) (Kind, error) {
	if a == b {
		return a, nil
	}
	if a == KindInt {
		return b, nil
	}
	if b == KindInt {
		return a, nil
	}
	if k, ok := coerceTable[[2]Kind{a, b}]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %s and %s", ErrIncompatibleKinds, a, b)
}
