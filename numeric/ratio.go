package numeric

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

var bigTen = big.NewInt(10)

// decimalRat converts a finite decimal to its exact rational form:
// coefficient scaled by the power-of-ten exponent. Non-finite decimals
// report false.
func decimalRat(d *apd.Decimal) (*big.Rat, bool) {
	if d.Form != apd.Finite {
		return nil, false
	}
	num := d.Coeff.MathBigInt()
	if d.Negative {
		num = new(big.Int).Neg(num)
	}
	den := big.NewInt(1)
	switch {
	case d.Exponent < 0:
		den = den.Exp(bigTen, big.NewInt(int64(-d.Exponent)), nil)
	case d.Exponent > 0:
		scale := new(big.Int).Exp(bigTen, big.NewInt(int64(d.Exponent)), nil)
		num = new(big.Int).Mul(num, scale)
	}
	return new(big.Rat).SetFrac(num, den), true
}

// ratDecimal converts an exact rational to a decimal by dividing numerator
// by denominator under DecimalContext.
func ratDecimal(r *big.Rat) (*apd.Decimal, error) {
	num := apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(r.Num()), 0)
	den := apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(r.Denom()), 0)
	q := new(apd.Decimal)
	if _, err := DecimalContext.Quo(q, num, den); err != nil {
		return nil, err
	}
	return q, nil
}
