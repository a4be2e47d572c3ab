package decimal96

import (
	"encoding/binary"
	"math"
	"math/big"
	"strconv"
)

const (
	// float64Digits and float32Digits are the significant digits kept when a
	// binary float is converted to a decimal.
	float64Digits = 15
	float32Digits = 7

	// floatLimit is the smallest float magnitude that overflows a decimal.
	floatLimit = 7.9228162514264338e28
	// floatTiny is the float magnitude below which a float converts to zero.
	floatTiny = 1e-28
)

// NewFromInt64 converts an integer to a decimal with scale 0.
func NewFromInt64(i int64) Decimal {
	d, _ := New(i, 0)
	return d
}

// NewFromUint64 converts an unsigned integer to a decimal with scale 0.
func NewFromUint64(u uint64) Decimal {
	return Decimal{coef: u96{lo: u}}
}

// NewFromFloat64 converts a float to a decimal the way the runtime does.
// The float is rounded to 15 significant digits, trailing zeros after the
// decimal point are removed, and the digits are evaluated like a literal,
// see [Evaluate].
// Floats with magnitude below 1e-28 convert to [Zero], negative ones included.
//
// NewFromFloat64 returns an error of class [MalformedError] for NaN and
// infinities, and an [*OverflowError] if the magnitude of f is
// 7.9228162514264338e28 or more.
func NewFromFloat64(f float64) (Decimal, error) {
	return newFromFloat(f, float64Digits, 64)
}

// NewFromFloat32 is like [NewFromFloat64], but keeps 7 significant digits.
func NewFromFloat32(f float32) (Decimal, error) {
	return newFromFloat(float64(f), float32Digits, 32)
}

func newFromFloat(f float64, digits, bitSize int) (Decimal, error) {
	text := strconv.FormatFloat(f, 'g', -1, bitSize)
	abs := math.Abs(f)
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return Decimal{}, Error.Wrap(MalformedError.New("float %v cannot be converted", text))
	case abs >= floatLimit:
		return Decimal{}, Error.Wrap(&OverflowError{Text: text})
	case abs < floatTiny:
		return Zero, nil
	}

	lit, err := Scan(strconv.FormatFloat(abs, 'e', digits-1, bitSize))
	if err != nil {
		return Decimal{}, err
	}
	lit.Neg = f < 0
	lit.Text = text

	// Trailing zeros after the decimal point
	for lit.FracDigits > 0 && int64(lit.FracDigits)-lit.Exp > 0 && lit.Digits[len(lit.Digits)-1] == '0' {
		lit.Digits = lit.Digits[:len(lit.Digits)-1]
		lit.FracDigits--
	}

	return Evaluate(lit)
}

// Float64 returns the float nearest to d.
// Negative zeros convert to negative zero floats.
func (d Decimal) Float64() float64 {
	f, _ := d.rat().Float64()
	if d.neg {
		f = math.Copysign(f, -1)
	}
	return f
}

// Float32 returns the float nearest to d.
// Negative zeros convert to negative zero floats.
func (d Decimal) Float32() float32 {
	f, _ := d.rat().Float32()
	if d.neg {
		f = float32(math.Copysign(float64(f), -1))
	}
	return f
}

// rat returns |d| as a fraction.
func (d Decimal) rat() *big.Rat {
	return new(big.Rat).SetFrac(d.Coef(), (*big.Int)(bpow10[d.Scale()]))
}

// Int64 returns the integer part of d, truncating toward zero.
//
// Int64 returns an [*OverflowError] if the integer part does not fit in int64.
func (d Decimal) Int64() (int64, error) {
	c := getBint()
	defer putBint(c)
	r := getBint()
	defer putBint(r)
	c.setU96(d.coef)
	c.quoRem(c, bpow10[d.Scale()], r)

	i := (*big.Int)(c)
	if d.neg {
		i.Neg(i)
	}
	if !i.IsInt64() {
		return 0, Error.Wrap(&OverflowError{Text: d.String()})
	}
	return i.Int64(), nil
}

// Decompose returns the internal decimal state in parts, the finite form
// of the database/sql decimal interface.
// If buf has sufficient capacity, buf is returned as the coefficient:
// 12 bytes holding the words Hi, Mid and Lo in big-endian order.
func (d Decimal) Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32) {
	if cap(buf) >= 12 {
		coefficient = buf[:12]
	} else {
		coefficient = make([]byte, 12)
	}
	hi, mid, lo := d.coef.words()
	binary.BigEndian.PutUint32(coefficient[0:], hi)
	binary.BigEndian.PutUint32(coefficient[4:], mid)
	binary.BigEndian.PutUint32(coefficient[8:], lo)
	return 0, d.neg, coefficient, -int32(d.scale)
}

// Compose sets d to (-1)^negative * coefficient * 10^exponent, where the
// coefficient is a big-endian unsigned integer.
// Exponents less than -[MaxScale] round the value using "half to even" rule.
//
// Compose returns an error of class [MalformedError] for infinite and NaN
// forms, and an [*OverflowError] if the value is out of range.
func (d *Decimal) Compose(form byte, negative bool, coefficient []byte, exponent int32) (err error) {
	defer Error.WrapP(&err)

	switch form {
	case 0:
	case 1:
		return MalformedError.New("compose: infinite form is not supported")
	case 2:
		return MalformedError.New("compose: NaN form is not supported")
	default:
		return MalformedError.New("compose: unknown form %v", form)
	}

	c := getBint()
	defer putBint(c)
	(*big.Int)(c).SetBytes(coefficient)
	scale := -int(exponent)
	text := c.string() + "e" + strconv.Itoa(int(exponent))

	switch {
	case c.sign() == 0:
		*d = Decimal{neg: negative, scale: int8(min(max(scale, 0), MaxScale))}
		return nil
	case scale < -MaxPrec:
		return &OverflowError{Text: text}
	case len(c.string()) > 2*MaxPrec:
		return MalformedError.New("compose: coefficient %v is too long", c.string())
	case scale-MaxScale > len(c.string()):
		// The value is below half of the smallest positive decimal
		*d = Decimal{neg: negative, scale: MaxScale}
		return nil
	}

	f, err := newDecimalFromRescaledBint(negative, c, scale)
	if err != nil {
		return &OverflowError{Text: text}
	}
	*d = f
	return nil
}
