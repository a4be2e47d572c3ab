package decimal96

// Neg returns d with opposite sign.
// Zeros are negated too, so -(0.0) is -0.0 and Neg is an involution.
func (d Decimal) Neg() Decimal {
	d.neg = !d.neg
	return d
}

// Plus returns d unchanged, it is the unary plus operator.
func (d Decimal) Plus() Decimal {
	return d
}

// Inc returns d + 1.
//
// Inc returns an [*OverflowError] if the result is out of range.
func (d Decimal) Inc() (Decimal, error) {
	f, err := d.add(One)
	if err != nil {
		return Decimal{}, overflow(OpIncrement, d, Decimal{})
	}
	return f, nil
}

// Dec returns d - 1.
//
// Dec returns an [*OverflowError] if the result is out of range.
func (d Decimal) Dec() (Decimal, error) {
	f, err := d.add(MinusOne)
	if err != nil {
		return Decimal{}, overflow(OpDecrement, d, Decimal{})
	}
	return f, nil
}

// Add returns the (possibly rounded) sum of d and e.
//
// The sum is computed exactly at the larger of the two scales.
// If it does not fit in 96 bits, digits after the decimal point are
// dropped and the result is rounded using "half to even" rule.
// The result takes the sign of d, unless the signs differ and
// the magnitude of e is greater, so 0 + -0 is 0 and -0 + 0 is -0.
//
// Add returns an [*OverflowError] if the integer part of the sum does not
// fit in 96 bits.
func (d Decimal) Add(e Decimal) (Decimal, error) {
	f, err := d.add(e)
	if err != nil {
		return Decimal{}, overflow(OpAdd, d, e)
	}
	return f, nil
}

// Sub returns the (possibly rounded) difference of d and e.
// It is computed as d + (-e), see [Decimal.Add].
//
// Sub returns an [*OverflowError] if the integer part of the difference
// does not fit in 96 bits.
func (d Decimal) Sub(e Decimal) (Decimal, error) {
	f, err := d.add(e.Neg())
	if err != nil {
		return Decimal{}, overflow(OpSubtract, d, e)
	}
	return f, nil
}

func (d Decimal) add(e Decimal) (Decimal, error) {
	f, err := addFast(d, e)
	if err != nil {
		f, err = addSlow(d, e)
	}
	return f, err
}

// addFast adds decimals with 64-bit coefficients that stay within
// 64 bits after alignment.
// The sum of two such coefficients always fits in 96 bits.
func addFast(d, e Decimal) (Decimal, error) {

	var (
		dcoef fint
		ecoef fint
		coef  u96
		neg   bool
		scale int
		ok    bool
	)

	dcoef, ok = d.coef.fint()
	if !ok {
		return Decimal{}, errCoefficientOverflow
	}
	ecoef, ok = e.coef.fint()
	if !ok {
		return Decimal{}, errCoefficientOverflow
	}

	// Alignment and scale
	switch {
	case d.Scale() == e.Scale():
		scale = d.Scale()
	case e.Scale() < d.Scale():
		scale = d.Scale()
		ecoef, ok = ecoef.lsh(d.Scale() - e.Scale())
		if !ok {
			return Decimal{}, errCoefficientOverflow
		}
	case d.Scale() < e.Scale():
		scale = e.Scale()
		dcoef, ok = dcoef.lsh(e.Scale() - d.Scale())
		if !ok {
			return Decimal{}, errCoefficientOverflow
		}
	}

	// Sign and coefficient
	neg = d.IsNeg()
	if d.IsNeg() == e.IsNeg() {
		coef = dcoef.add96(ecoef)
	} else {
		if dcoef < ecoef {
			neg = e.IsNeg()
		}
		coef = u96{lo: uint64(dcoef.dist(ecoef))}
	}

	return newDecimal(neg, coef, scale)
}

func addSlow(d, e Decimal) (Decimal, error) {

	var (
		dcoef *bint
		ecoef *bint
		neg   bool
		scale int
	)

	dcoef = getBint()
	defer putBint(dcoef)
	ecoef = getBint()
	defer putBint(ecoef)
	dcoef.setU96(d.coef)
	ecoef.setU96(e.coef)

	// Alignment and scale
	switch {
	case d.Scale() == e.Scale():
		scale = d.Scale()
	case e.Scale() < d.Scale():
		ecoef.lsh(ecoef, d.Scale()-e.Scale())
		scale = d.Scale()
	case d.Scale() < e.Scale():
		dcoef.lsh(dcoef, e.Scale()-d.Scale())
		scale = e.Scale()
	}

	// Sign and coefficient
	neg = d.IsNeg()
	if d.IsNeg() == e.IsNeg() {
		dcoef.add(dcoef, ecoef)
	} else {
		if dcoef.cmp(ecoef) < 0 {
			neg = e.IsNeg()
		}
		dcoef.dist(dcoef, ecoef)
	}

	return newDecimalFromRescaledBint(neg, dcoef, scale)
}

// Mul returns the (possibly rounded) product of d and e.
//
// The exact product has scale d.Scale() + e.Scale().
// If that scale is greater than [MaxScale] or the coefficient does not
// fit in 96 bits, digits after the decimal point are dropped and the
// result is rounded using "half to even" rule.
// The sign of the result is negative if exactly one operand is negative,
// zeros included.
//
// Mul returns an [*OverflowError] if the integer part of the product does
// not fit in 96 bits.
func (d Decimal) Mul(e Decimal) (Decimal, error) {
	f, err := mulFast(d, e)
	if err != nil {
		f, err = mulSlow(d, e)
		if err != nil {
			return Decimal{}, overflow(OpMultiply, d, e)
		}
	}
	return f, nil
}

func mulFast(d, e Decimal) (Decimal, error) {

	var (
		dcoef fint
		ecoef fint
		coef  u96
		scale int
		ok    bool
	)

	dcoef, ok = d.coef.fint()
	if !ok {
		return Decimal{}, errCoefficientOverflow
	}
	ecoef, ok = e.coef.fint()
	if !ok {
		return Decimal{}, errCoefficientOverflow
	}

	neg := d.IsNeg() != e.IsNeg()
	scale = d.Scale() + e.Scale()

	// 64-bit products are rescaled here, whatever their scale
	if c, ok := dcoef.mul(ecoef); ok {
		return newDecimalFromRescaledFint(neg, c, scale)
	}

	if scale > MaxScale {
		return Decimal{}, errScaleRange
	}
	coef, ok = dcoef.mul96(ecoef)
	if !ok {
		return Decimal{}, errCoefficientOverflow
	}

	return newDecimal(neg, coef, scale)
}

func mulSlow(d, e Decimal) (Decimal, error) {

	var (
		dcoef *bint
		ecoef *bint
	)

	dcoef = getBint()
	defer putBint(dcoef)
	ecoef = getBint()
	defer putBint(ecoef)
	dcoef.setU96(d.coef)
	ecoef.setU96(e.coef)

	dcoef.mul(dcoef, ecoef)

	return newDecimalFromRescaledBint(d.IsNeg() != e.IsNeg(), dcoef, d.Scale()+e.Scale())
}

// Quo returns the (possibly rounded) quotient of d and e.
//
// Long division starts at scale max(d.Scale() - e.Scale(), 0) and adds
// digits while there is a remainder, the scale is less than [MaxScale]
// and the quotient still fits in 96 bits.
// The last digit is rounded using "half to even" rule.
// For example, 1.000 / 2 is 0.500, 1 / 8 is 0.125, and 100.0 / 3 is
// 33.333333333333333333333333333.
// The sign of the result is negative if exactly one operand is negative.
//
// Quo returns a [*DivideByZeroError] if e is zero and an [*OverflowError]
// if the integer part of the quotient does not fit in 96 bits.
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, Error.Wrap(&DivideByZeroError{Op: OpDivide, X: d, Y: e})
	}
	f, err := quoFast(d, e)
	if err != nil {
		f, err = quoSlow(d, e)
		if err != nil {
			return Decimal{}, overflow(OpDivide, d, e)
		}
	}
	return f, nil
}

// quoFast divides decimals while the dividend, the partial quotient and
// the scaled remainders fit in 64 bits.
// Otherwise it gives up and leaves the division to quoSlow.
func quoFast(d, e Decimal) (Decimal, error) {

	var (
		dcoef fint
		ecoef fint
		q, r  fint
		scale int
		ok    bool
	)

	dcoef, ok = d.coef.fint()
	if !ok {
		return Decimal{}, errCoefficientOverflow
	}
	ecoef, ok = e.coef.fint()
	if !ok || ecoef == 0 {
		return Decimal{}, errCoefficientOverflow
	}

	// Alignment
	scale = max(d.Scale()-e.Scale(), 0)
	dcoef, ok = dcoef.lsh(scale - d.Scale() + e.Scale())
	if !ok {
		return Decimal{}, errCoefficientOverflow
	}
	q, r, _ = dcoef.quoRem(ecoef)

	// Digits after the natural scale
	for r != 0 && scale < MaxScale {
		r10, ok := r.mul(10)
		if !ok {
			return Decimal{}, errCoefficientOverflow
		}
		digit, rem, _ := r10.quoRem(ecoef)
		next, ok := q.fsa(1, byte(digit))
		if !ok {
			return Decimal{}, errCoefficientOverflow
		}
		q, r = next, rem
		scale++
	}

	// Rounding, 2r is compared with ecoef as r with ecoef - r
	if r != 0 {
		half := 0
		switch {
		case r > ecoef-r:
			half = 1
		case r < ecoef-r:
			half = -1
		}
		if halfEven(half, q.isOdd()) {
			q, ok = q.add(1)
			if !ok {
				return Decimal{}, errCoefficientOverflow
			}
		}
	}

	return newDecimal(d.IsNeg() != e.IsNeg(), u96{lo: uint64(q)}, scale)
}

func quoSlow(d, e Decimal) (Decimal, error) {

	var (
		dcoef *bint
		ecoef *bint
		q, r  *bint
		scale int
	)

	dcoef = getBint()
	defer putBint(dcoef)
	ecoef = getBint()
	defer putBint(ecoef)
	q = getBint()
	defer putBint(q)
	r = getBint()
	defer putBint(r)
	dcoef.setU96(d.coef)
	ecoef.setU96(e.coef)

	// Alignment
	scale = max(d.Scale()-e.Scale(), 0)
	dcoef.lsh(dcoef, scale-d.Scale()+e.Scale())
	q.quoRem(dcoef, ecoef, r)
	if q.cmp(bmaxCoef) > 0 {
		return Decimal{}, errCoefficientOverflow
	}

	// Digits after the natural scale
	r10 := getBint()
	defer putBint(r10)
	digit := getBint()
	defer putBint(digit)
	rem := getBint()
	defer putBint(rem)
	next := getBint()
	defer putBint(next)
	for r.sign() != 0 && scale < MaxScale {
		r10.lsh(r, 1)
		digit.quoRem(r10, ecoef, rem)
		next.lsh(q, 1)
		next.add(next, digit)
		if next.cmp(bmaxCoef) > 0 {
			break
		}
		q.setBint(next)
		r.setBint(rem)
		scale++
	}

	// Rounding
	if r.sign() != 0 {
		r.dbl(r)
		if halfEven(r.cmp(ecoef), q.isOdd()) {
			q.inc(q)
		}
	}

	// The increment may have carried the quotient to 2^96
	return newDecimalFromRescaledBint(d.IsNeg() != e.IsNeg(), q, scale)
}

// Rem returns the remainder of the truncated division of d by e.
//
// The remainder is computed exactly at the larger of the two scales and
// takes the sign of d, regardless of the sign of e.
// If d is zero or its magnitude is less than that of e, d is returned
// unchanged.
// For example, 100.0 % 3 is 1.0 and -7 % 2.5 is -2.0.
//
// Rem returns a [*DivideByZeroError] if e is zero.
func (d Decimal) Rem(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, Error.Wrap(&DivideByZeroError{Op: OpRemainder, X: d, Y: e})
	}
	f, err := remFast(d, e)
	if err != nil {
		f, err = remSlow(d, e)
		if err != nil {
			return Decimal{}, overflow(OpRemainder, d, e)
		}
	}
	return f, nil
}

func remFast(d, e Decimal) (Decimal, error) {

	var (
		dcoef fint
		ecoef fint
		scale int
		ok    bool
	)

	if d.IsZero() {
		return d, nil
	}

	dcoef, ok = d.coef.fint()
	if !ok {
		return Decimal{}, errCoefficientOverflow
	}
	ecoef, ok = e.coef.fint()
	if !ok {
		return Decimal{}, errCoefficientOverflow
	}

	// Alignment and scale
	scale = max(d.Scale(), e.Scale())
	dcoef, ok = dcoef.lsh(scale - d.Scale())
	if !ok {
		return Decimal{}, errCoefficientOverflow
	}
	ecoef, ok = ecoef.lsh(scale - e.Scale())
	if !ok {
		return Decimal{}, errCoefficientOverflow
	}

	switch {
	case dcoef == ecoef:
		return newDecimal(d.IsNeg(), u96{}, scale)
	case dcoef < ecoef:
		return d, nil
	}
	_, r, _ := dcoef.quoRem(ecoef)
	return newDecimal(d.IsNeg(), u96{lo: uint64(r)}, scale)
}

func remSlow(d, e Decimal) (Decimal, error) {

	var (
		dcoef *bint
		ecoef *bint
		q     *bint
		scale int
	)

	if d.IsZero() {
		return d, nil
	}

	dcoef = getBint()
	defer putBint(dcoef)
	ecoef = getBint()
	defer putBint(ecoef)
	q = getBint()
	defer putBint(q)
	dcoef.setU96(d.coef)
	ecoef.setU96(e.coef)

	// Alignment and scale
	scale = max(d.Scale(), e.Scale())
	dcoef.lsh(dcoef, scale-d.Scale())
	ecoef.lsh(ecoef, scale-e.Scale())

	switch dcoef.cmp(ecoef) {
	case 0:
		return newDecimal(d.IsNeg(), u96{}, scale)
	case -1:
		return d, nil
	}
	r := getBint()
	defer putBint(r)
	q.quoRem(dcoef, ecoef, r)
	return newDecimalFromRescaledBint(d.IsNeg(), r, scale)
}

// Cmp compares decimals and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// The comparison is exact: 1.0 and 1.00 are equal, and so are 0 and -0.
func (d Decimal) Cmp(e Decimal) int {

	// Special case: different signs
	switch {
	case e.Sign() < d.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	case d.Sign() == 0:
		return 0
	}

	// General case
	r, err := cmpFast(d, e)
	if err != nil {
		r = cmpSlow(d, e)
	}
	return r
}

// Equal returns true if d and e are numerically equal, see [Decimal.Cmp].
// Use the == operator to check that representations are identical.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

func cmpFast(d, e Decimal) (int, error) {

	var (
		dcoef fint
		ecoef fint
		ok    bool
	)

	dcoef, ok = d.coef.fint()
	if !ok {
		return 0, errCoefficientOverflow
	}
	ecoef, ok = e.coef.fint()
	if !ok {
		return 0, errCoefficientOverflow
	}

	// Alignment
	switch {
	case e.Scale() < d.Scale():
		ecoef, ok = ecoef.lsh(d.Scale() - e.Scale())
		if !ok {
			return 0, errCoefficientOverflow
		}
	case d.Scale() < e.Scale():
		dcoef, ok = dcoef.lsh(e.Scale() - d.Scale())
		if !ok {
			return 0, errCoefficientOverflow
		}
	}

	// Comparison
	switch {
	case ecoef < dcoef:
		return d.Sign(), nil
	case dcoef < ecoef:
		return -e.Sign(), nil
	default:
		return 0, nil
	}
}

func cmpSlow(d, e Decimal) int {

	var (
		dcoef *bint
		ecoef *bint
	)

	dcoef = getBint()
	defer putBint(dcoef)
	ecoef = getBint()
	defer putBint(ecoef)
	dcoef.setU96(d.coef)
	ecoef.setU96(e.coef)

	// Alignment
	switch {
	case e.Scale() < d.Scale():
		ecoef.lsh(ecoef, d.Scale()-e.Scale())
	case d.Scale() < e.Scale():
		dcoef.lsh(dcoef, e.Scale()-d.Scale())
	}

	// Comparison
	switch dcoef.cmp(ecoef) {
	case 1:
		return d.Sign()
	case -1:
		return -e.Sign()
	default:
		return 0
	}
}
