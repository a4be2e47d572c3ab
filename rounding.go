package decimal96

// halfEven reports whether a truncated coefficient has to be incremented
// under the "half to even" rule.
// half is the sign of (discarded fraction - 1/2), odd is the parity of
// the truncated coefficient.
func halfEven(half int, odd bool) bool {
	return half > 0 || half == 0 && odd
}

// newDecimalFromRescaledBint reduces the exact value coef / 10^scale to a
// decimal with scale at most [MaxScale] and a coefficient that fits in 96 bits.
// Digits are dropped all at once and the result is rounded a single time,
// using "half to even" rule.
// Only when that rounding carries the coefficient to 2^96 is one more
// digit dropped.
// coef is used as scratch space and is modified.
func newDecimalFromRescaledBint(neg bool, coef *bint, scale int) (Decimal, error) {
	if scale < 0 {
		coef.lsh(coef, -scale)
		scale = 0
	}

	// Smallest shift that brings the coefficient under 2^96
	shift := 0
	if scale > MaxScale {
		shift = scale - MaxScale
	}
	lim := getBint()
	defer putBint(lim)
	for {
		lim.mul(bmaxCoefPlusOne, coef.pow10(shift))
		if coef.cmp(lim) < 0 {
			break
		}
		shift++
	}
	if shift > scale {
		return Decimal{}, errCoefficientOverflow
	}

	coef.rshHalfEven(coef, shift)
	scale -= shift

	// Rounding carried into the 97th bit
	if coef.cmp(bmaxCoef) > 0 {
		if scale == 0 {
			return Decimal{}, errCoefficientOverflow
		}
		coef.rshHalfEven(coef, 1)
		scale--
	}

	c, ok := coef.u96()
	if !ok {
		return Decimal{}, errCoefficientOverflow
	}
	return newDecimal(neg, c, scale)
}

// newDecimalFromRescaledFint is a fast version of [newDecimalFromRescaledBint]
// for coefficients that fit in 64 bits.
// It never needs to drop digits when the scale is in range.
func newDecimalFromRescaledFint(neg bool, coef fint, scale int) (Decimal, error) {
	if scale < 0 || scale > MaxScale {
		b := getBint()
		defer putBint(b)
		b.setFint(coef)
		return newDecimalFromRescaledBint(neg, b, scale)
	}
	return newDecimal(neg, u96{lo: uint64(coef)}, scale)
}
