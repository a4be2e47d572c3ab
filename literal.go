package decimal96

import (
	"fmt"
	"strings"
)

// Literal is a decimal literal split into its lexical parts, such as the
// one produced by a compiler's lexer for 1.712m or -7.9e28M.
// The value of the literal is (-1)^Neg * 0.Digits * 10^(len(Digits)-FracDigits+Exp).
type Literal struct {
	Neg        bool   // literal has a leading minus sign
	Digits     string // integer digits followed by fraction digits, '0' to '9' only
	FracDigits int    // number of trailing Digits that follow the decimal point
	Exp        int64  // decimal exponent, 0 if absent
	Text       string // source text, used in diagnostics
}

const (
	// maxExponent is the magnitude at which exponents saturate.
	// Any exponent this large overflows or underflows regardless of the digits.
	maxExponent = 1 << 40

	// stickyDigits is the number of digits following a rounding digit of 5
	// that decide whether the value is above the halfway point.
	// Digits further away are never inspected.
	stickyDigits = 20
)

// roundedMaxCoef is the coefficient that (2^96 - 1) + 1 rounds to after
// dropping one more digit.
var roundedMaxCoef = u96{hi: 0x19999999, lo: 0x99999999_9999999A}

// String returns the source text of the literal, or a reconstruction of it
// if Text is empty.
func (l Literal) String() string {
	if l.Text != "" {
		return l.Text
	}
	var b strings.Builder
	if l.Neg {
		b.WriteByte('-')
	}
	i := len(l.Digits) - l.FracDigits
	switch {
	case i <= 0:
		b.WriteByte('0')
	default:
		b.WriteString(l.Digits[:i])
	}
	if l.FracDigits > 0 && i >= 0 {
		b.WriteByte('.')
		b.WriteString(l.Digits[i:])
	}
	if l.Exp != 0 {
		fmt.Fprintf(&b, "e%d", l.Exp)
	}
	return b.String()
}

func (l Literal) validate() error {
	if l.Digits == "" {
		return MalformedError.New("literal has no digits")
	}
	if l.FracDigits < 0 || l.FracDigits > len(l.Digits) {
		return MalformedError.New("literal digits %q: fraction digit count %v out of range", l.Digits, l.FracDigits)
	}
	for i := 0; i < len(l.Digits); i++ {
		if c := l.Digits[i]; c < '0' || c > '9' {
			return MalformedError.New("literal digits %q: invalid digit %q", l.Digits, c)
		}
	}
	return nil
}

// Scan splits text into a [Literal].
// It accepts the grammar below, where exponents saturate at a magnitude
// far beyond the range of a decimal:
//
//	sign     ::= '+' | '-'
//	digits   ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	exponent ::= ('e' | 'E') [sign] digits
//	suffix   ::= 'm' | 'M'
//	literal  ::= [sign] (digits ['.' [digits]] | '.' digits) [exponent] [suffix]
//
// Scan returns an error of class [MalformedError] if text does not match.
func Scan(text string) (Literal, error) {
	lit := Literal{Text: text}
	s := text
	pos := 0

	// Sign
	if pos < len(s) && (s[pos] == '+' || s[pos] == '-') {
		lit.Neg = s[pos] == '-'
		pos++
	}

	// Integer and fraction digits
	var digits strings.Builder
	start := pos
	for pos < len(s) && isDigit(s[pos]) {
		pos++
	}
	digits.WriteString(s[start:pos])
	intDigits := pos - start
	if pos < len(s) && s[pos] == '.' {
		pos++
		start = pos
		for pos < len(s) && isDigit(s[pos]) {
			pos++
		}
		digits.WriteString(s[start:pos])
		lit.FracDigits = pos - start
	}
	if intDigits+lit.FracDigits == 0 {
		return Literal{}, Error.Wrap(MalformedError.New("literal %q: no digits", text))
	}
	lit.Digits = digits.String()

	// Exponent
	if pos < len(s) && (s[pos] == 'e' || s[pos] == 'E') {
		pos++
		neg := false
		if pos < len(s) && (s[pos] == '+' || s[pos] == '-') {
			neg = s[pos] == '-'
			pos++
		}
		start = pos
		var exp int64
		for pos < len(s) && isDigit(s[pos]) {
			if exp < maxExponent {
				exp = exp*10 + int64(s[pos]-'0')
			}
			pos++
		}
		if pos == start {
			return Literal{}, Error.Wrap(MalformedError.New("literal %q: missing exponent digits", text))
		}
		exp = min(exp, maxExponent)
		if neg {
			exp = -exp
		}
		lit.Exp = exp
	}

	// Suffix
	if pos < len(s) && (s[pos] == 'm' || s[pos] == 'M') {
		pos++
	}

	if pos != len(s) {
		return Literal{}, Error.Wrap(MalformedError.New("literal %q: unexpected character %q", text, s[pos]))
	}
	return lit, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// Evaluate converts a literal to a decimal.
//
// Digits beyond the precision of a decimal are rounded using "half to even"
// rule at scale [MaxScale] or at the last digit that fits in 96 bits,
// whichever comes first.
// A rounding digit of 5 counts as exactly half unless one of the
// following 20 digits is non-zero; digits further away never affect the result.
// Values whose first significant digit lies beyond scale [MaxScale] round
// to a zero of scale [MaxScale].
//
// Zeros keep their sign and scale, for example "-0.00" has scale 2.
// Zeros with a positive exponent, such as "0e1", cannot be represented
// and are rejected.
//
// Evaluate returns an [*OverflowError] if the integer part of the literal
// does not fit in 96 bits.
func Evaluate(lit Literal) (Decimal, error) {
	if err := lit.validate(); err != nil {
		return Decimal{}, Error.Wrap(err)
	}
	exp := max(min(lit.Exp, maxExponent), -maxExponent)
	rawScale := int64(lit.FracDigits) - exp
	sig := strings.TrimLeft(lit.Digits, "0")

	// Special case: zero
	if sig == "" {
		if rawScale < 0 {
			return Decimal{}, Error.Wrap(&OverflowError{Text: lit.String()})
		}
		return newDecimal(lit.Neg, u96{}, int(min(rawScale, MaxScale)))
	}

	// e is the position of the decimal point relative to the first
	// significant digit, the value is 0.sig * 10^e.
	e := int64(len(sig)) - rawScale
	switch {
	case e > MaxPrec:
		return Decimal{}, Error.Wrap(&OverflowError{Text: lit.String()})
	case e < -MaxScale:
		return newDecimal(lit.Neg, u96{}, MaxScale)
	}

	// Coefficient
	var coef u96
	i := 0
	for e > 0 || i < len(sig) && e > -MaxScale {
		var d byte
		if i < len(sig) {
			d = sig[i] - '0'
		}
		c, ok := coef.fma(d)
		if !ok {
			break
		}
		coef = c
		if i < len(sig) {
			i++
		}
		e--
	}

	// Rounding
	if i < len(sig) {
		half := cmpDigit(sig[i], '5')
		if half == 0 {
			tail := sig[i+1 : min(i+1+stickyDigits, len(sig))]
			if strings.TrimRight(tail, "0") != "" {
				half = 1
			}
		}
		if halfEven(half, coef.isOdd()) {
			c, ok := coef.inc()
			if ok {
				coef = c
			} else {
				coef = roundedMaxCoef
				e++
			}
		}
	}

	if e > 0 {
		return Decimal{}, Error.Wrap(&OverflowError{Text: lit.String()})
	}
	return newDecimal(lit.Neg, coef, int(-e))
}

func cmpDigit(c, d byte) int {
	switch {
	case c < d:
		return -1
	case c > d:
		return 1
	}
	return 0
}

// Parse converts a string to a decimal.
// The string is split with [Scan] and evaluated with [Evaluate],
// for example "1.712", "-0.00", "7.9228162514264337593543950335E28"
// or "1e-28m".
//
// Parse returns an error of class [MalformedError] if the string is not a
// decimal literal, or an [*OverflowError] if its value is out of range.
func Parse(s string) (Decimal, error) {
	lit, err := Scan(s)
	if err != nil {
		return Decimal{}, err
	}
	return Evaluate(lit)
}
