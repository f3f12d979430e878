package numeric

import (
	"math"
	"math/big"
)

// partialSums is the error-compensated float accumulator. It keeps an
// ordered slice of non-overlapping partial magnitudes whose exact
// mathematical sum equals the running total of everything added so far, so
// no rounding error accumulates across additions. A distinguished slot
// absorbs non-finite values; once engaged it takes over entirely and
// follows IEEE semantics (opposite infinities collapse to NaN).
type partialSums struct {
	special    float64
	hasSpecial bool
	// overflowed marks a special slot engaged by the running total of
	// finite inputs exceeding the float range, rather than by a
	// non-finite input. The true sum may still be finite; callers
	// recompute it exactly when this is set.
	overflowed bool
	parts      []float64
}

// Add folds x into the accumulator.
func (p *partialSums) Add(x float64) {
	if p.hasSpecial {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			// A genuinely non-finite input arrived; IEEE semantics
			// govern from here even if the slot was engaged by
			// transient overflow.
			p.overflowed = false
		}
		p.special += x
		return
	}
	if math.IsInf(x, 0) || math.IsNaN(x) {
		p.hasSpecial = true
		p.special = x
		p.parts = p.parts[:0]
		return
	}
	// Two-sum cascade: combine x with each existing partial, larger
	// magnitude first, keeping the exact round-off residual of every
	// pairwise addition and dropping residuals that are exactly zero.
	i := 0
	for _, y := range p.parts {
		if math.Abs(x) < math.Abs(y) {
			x, y = y, x
		}
		hi := x + y
		lo := y - (hi - x)
		if lo != 0 {
			p.parts[i] = lo
			i++
		}
		x = hi
	}
	if math.IsInf(x, 0) {
		// The running total itself overflowed.
		p.hasSpecial = true
		p.overflowed = true
		p.special = x
		p.parts = p.parts[:0]
		return
	}
	p.parts = append(p.parts[:i], x)
}

// Total rounds the accumulated partials to a single float. Because the
// partials are non-overlapping and ordered by magnitude, the plain
// ascending sum is within one unit of least precision of the exact total.
func (p *partialSums) Total() float64 {
	if p.hasSpecial {
		return p.special
	}
	total := 0.0
	for _, x := range p.parts {
		total += x
	}
	return total
}

// SumFloat64 returns the error-compensated sum of xs. The result is exact
// to within one unit of least precision regardless of magnitude
// cancellation or transient overflow; non-finite inputs propagate IEEE
// semantics.
func SumFloat64(xs []float64) float64 {
	var p partialSums
	for _, x := range xs {
		p.Add(x)
	}
	if p.overflowed {
		// The running total left the float range but every input was
		// finite, so the true sum may cancel back in. Redo it exactly.
		total := new(big.Rat)
		term := new(big.Rat)
		for _, x := range xs {
			term.SetFloat64(x)
			total.Add(total, term)
		}
		f, _ := total.Float64()
		return f
	}
	return p.Total()
}
