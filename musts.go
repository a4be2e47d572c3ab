package decimal96

import "fmt"

// MustNew is like [New] but panics if the scale is out of range.
func MustNew(coef int64, scale int) Decimal {
	d, err := New(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", coef, scale, err))
	}
	return d
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// MustAdd is like [Decimal.Add] but panics if computing error.
func (d Decimal) MustAdd(e Decimal) Decimal {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", d, err))
	}
	return f
}

// MustSub is like [Decimal.Sub] but panics if computing error.
func (d Decimal) MustSub(e Decimal) Decimal {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", d, err))
	}
	return f
}

// MustMul is like [Decimal.Mul] but panics if computing error.
func (d Decimal) MustMul(e Decimal) Decimal {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", d, err))
	}
	return f
}

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d Decimal) MustQuo(e Decimal) Decimal {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", d, err))
	}
	return f
}

// MustRem is like [Decimal.Rem] but panics if computing error.
func (d Decimal) MustRem(e Decimal) Decimal {
	f, err := d.Rem(e)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", d, err))
	}
	return f
}
