package decimal96

import (
	"fmt"
	"math/big"
	"strings"
)

// Decimal type is a representation of a 96-bit fixed-point decimal number,
// bit-compatible with the decimal type of the .NET runtime.
// The zero value is the numeric value of 0, equal to [Zero].
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal type is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Scale: an integer in range [0, 28], the number of digits after the decimal point.
//   - Coefficient: an unsigned 96-bit integer, the value without the decimal point.
//
// For example, a decimal with a coefficient of 1712 and a scale of 3
// represents the value 1.712.
// The same numerical value has many representations: 1, 1.0, and 1.00 have
// different scales and coefficients, and all three are kept as written.
// Zero is not canonicalized either: 0, 0.0, -0 and -0.00 are distinct
// decimals that compare equal.
//
// Two decimals are identical, including scale and sign, if and only if
// they are equal with the == operator.
type Decimal struct {
	neg   bool // indicates whether the decimal is negative, also for zero
	scale int8 // the position of the floating decimal point
	coef  u96  // the coefficient of the decimal
}

const (
	MaxPrec  = 29 // maximum length of the coefficient in decimal digits
	MaxScale = 28 // maximum number of digits after the decimal point
)

// MaxCoefficient is the largest coefficient of a decimal, 2^96 - 1.
const MaxCoefficient = "79228162514264337593543950335"

var (
	Zero     = Decimal{}
	One      = Decimal{coef: u96{lo: 1}}
	MinusOne = Decimal{neg: true, coef: u96{lo: 1}}

	// MaxValue is 79228162514264337593543950335.
	MaxValue = Decimal{coef: maxU96}
	// MinValue is -79228162514264337593543950335.
	MinValue = Decimal{neg: true, coef: maxU96}
	// Epsilon is 0.0000000000000000000000000001, the smallest positive decimal.
	Epsilon = Decimal{scale: MaxScale, coef: u96{lo: 1}}
)

func newDecimal(neg bool, coef u96, scale int) (Decimal, error) {
	if scale < 0 || scale > MaxScale {
		return Decimal{}, errScaleRange
	}
	return Decimal{neg: neg, coef: coef, scale: int8(scale)}, nil
}

// New returns a decimal equal to coef / 10^scale.
// New returns an error if scale is less than 0 or greater than [MaxScale].
// A zero coef gives a positive zero.
func New(coef int64, scale int) (Decimal, error) {
	neg := false
	abs := uint64(coef)
	if coef < 0 {
		neg = true
		abs = -abs
	}
	d, err := newDecimal(neg, u96{lo: abs}, scale)
	if err != nil {
		return Decimal{}, Error.New("New(%v, %v) failed: %w", coef, scale, err)
	}
	return d, nil
}

// NewFromBigInt returns a decimal equal to coef / 10^scale.
// Unlike [New], it rounds the value using "half to even" rule when
// scale is greater than [MaxScale] or the coefficient does not fit in 96 bits,
// and it accepts negative scales.
func NewFromBigInt(coef *big.Int, scale int) (Decimal, error) {
	b := getBint()
	defer putBint(b)
	(*big.Int)(b).Abs(coef)
	neg := coef.Sign() < 0

	switch {
	case b.sign() == 0:
		return Decimal{scale: int8(min(max(scale, 0), MaxScale))}, nil
	case scale < -MaxPrec:
		return Decimal{}, Error.Wrap(&OverflowError{Text: fmt.Sprintf("%ve%v", coef, -scale)})
	case scale-MaxScale > len(b.string()):
		// Below half of the smallest positive decimal
		return Decimal{neg: neg, scale: MaxScale}, nil
	}

	d, err := newDecimalFromRescaledBint(neg, b, scale)
	if err != nil {
		return Decimal{}, Error.Wrap(&OverflowError{Text: fmt.Sprintf("%ve%v", coef, -scale)})
	}
	return d, nil
}

// Scale returns number of digits after the decimal point.
func (d Decimal) Scale() int {
	return int(d.scale)
}

// Coef returns the coefficient of the decimal.
func (d Decimal) Coef() *big.Int {
	b := new(big.Int)
	(*bint)(b).setU96(d.coef)
	return b
}

// Prec returns number of digits in the coefficient.
// Zero has no digits.
func (d Decimal) Prec() int {
	if d.coef.isZero() {
		return 0
	}
	return len(d.coef.string())
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0, including negative zeros
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.coef.isZero():
		return 0
	case d.neg:
		return -1
	}
	return 1
}

// IsNeg returns true if the sign bit of d is set.
// It is also true for negative zeros, see [Decimal.Sign].
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return !d.neg && !d.coef.isZero()
}

// IsZero returns true if d == 0, regardless of its sign and scale.
func (d Decimal) IsZero() bool {
	return d.coef.isZero()
}

// IsInt returns true if fractional part of d is zero.
func (d Decimal) IsInt() bool {
	if d.scale == 0 || d.coef.isZero() {
		return true
	}
	c := getBint()
	defer putBint(c)
	q := getBint()
	defer putBint(q)
	r := getBint()
	defer putBint(r)
	c.setU96(d.coef)
	q.quoRem(c, bpow10[d.Scale()], r)
	return r.sign() == 0
}

// Abs returns absolute value of d.
func (d Decimal) Abs() Decimal {
	d.neg = false
	return d
}

// String implements the [fmt.Stringer] interface and returns
// a string representation of the decimal that keeps its scale and sign.
// The returned string does not use scientific or engineering notation and
// follows the grammar below:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// Negative zeros are printed with a sign, for example "-0.0".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	digits := d.coef.string()
	scale := d.Scale()

	var buf strings.Builder
	buf.Grow(len(digits) + scale + 3)

	// Sign
	if d.neg {
		buf.WriteByte('-')
	}

	// Integer part
	if len(digits) <= scale {
		buf.WriteByte('0')
	} else {
		buf.WriteString(digits[:len(digits)-scale])
	}

	// Fractional part
	if scale > 0 {
		buf.WriteByte('.')
		if pad := scale - len(digits); pad > 0 {
			buf.WriteString(strings.Repeat("0", pad))
			buf.WriteString(digits)
		} else {
			buf.WriteString(digits[len(digits)-scale:])
		}
	}

	return buf.String()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// WellKnown identifies the decimals that the runtime exposes as static fields.
type WellKnown uint8

const (
	WellKnownZero     WellKnown = iota + 1 // decimal.Zero
	WellKnownOne                           // decimal.One
	WellKnownMinusOne                      // decimal.MinusOne
)

func (w WellKnown) String() string {
	switch w {
	case WellKnownZero:
		return "Zero"
	case WellKnownOne:
		return "One"
	case WellKnownMinusOne:
		return "MinusOne"
	}
	return fmt.Sprintf("WellKnown(%d)", uint8(w))
}

// Decimal returns the value of the well-known constant.
func (w WellKnown) Decimal() Decimal {
	switch w {
	case WellKnownOne:
		return One
	case WellKnownMinusOne:
		return MinusOne
	}
	return Zero
}

// WellKnown reports whether d is exactly one of [Zero], [One] or [MinusOne],
// including sign and scale.
// Values such as 0.0, -0 or 1.00 are numerically equal but not well-known.
func (d Decimal) WellKnown() (WellKnown, bool) {
	switch d {
	case Zero:
		return WellKnownZero, true
	case One:
		return WellKnownOne, true
	case MinusOne:
		return WellKnownMinusOne, true
	}
	return 0, false
}
