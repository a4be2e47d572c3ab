package decimal96

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strconv"
	"sync"
)

// fint (Fast INTeger) is a wrapper around uint64.
type fint uint64

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]fint{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// add calculates x + y and checks overflow.
func (x fint) add(y fint) (z fint, ok bool) {
	s, carry := bits.Add64(uint64(x), uint64(y), 0)
	if carry != 0 {
		return 0, false
	}
	return fint(s), true
}

// mul calculates x * y and checks overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	if hi != 0 {
		return 0, false
	}
	return fint(lo), true
}

// mul96 calculates x * y, which always fits in 128 bits,
// and checks that the product fits in 96 bits.
func (x fint) mul96(y fint) (z u96, ok bool) {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	if hi > math.MaxUint32 {
		return u96{}, false
	}
	return u96{hi: uint32(hi), lo: lo}, true
}

// add96 calculates x + y, which always fits in 96 bits.
func (x fint) add96(y fint) u96 {
	s, carry := bits.Add64(uint64(x), uint64(y), 0)
	return u96{hi: uint32(carry), lo: s}
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q.
func (x fint) quoRem(y fint) (q, r fint, ok bool) {
	if y == 0 {
		return 0, 0, false
	}
	q = x / y
	r = x - q*y
	return q, r, true
}

// dist calculates |x - y|.
func (x fint) dist(y fint) fint {
	if x > y {
		return x - y
	}
	return y - x
}

// lsh (Left Shift) calculates x * 10^shift and checks overflow.
func (x fint) lsh(shift int) (z fint, ok bool) {
	// Special cases
	switch {
	case shift <= 0:
		return x, true
	case x == 0:
		return 0, true
	case shift >= len(pow10):
		return 0, false
	}
	// General case
	return x.mul(pow10[shift])
}

// fsa (Fused Shift and Addition) calculates x * 10^shift + b and checks overflow.
func (x fint) fsa(shift int, b byte) (z fint, ok bool) {
	z, ok = x.lsh(shift)
	if !ok {
		return 0, false
	}
	return z.add(fint(b))
}

func (x fint) isOdd() bool {
	return x&1 != 0
}

// u96 is an unsigned 96-bit integer, the coefficient of a decimal.
// It is a value type, so decimals holding it can be compared with ==.
type u96 struct {
	hi uint32 // bits 64..95
	lo uint64 // bits 0..63
}

// maxU96 is 2^96 - 1, the largest coefficient of a decimal.
var maxU96 = u96{hi: math.MaxUint32, lo: math.MaxUint64}

func newU96(hi, mid, lo uint32) u96 {
	return u96{hi: hi, lo: uint64(mid)<<32 | uint64(lo)}
}

// words returns x as three 32-bit words, most significant first.
func (x u96) words() (hi, mid, lo uint32) {
	return x.hi, uint32(x.lo >> 32), uint32(x.lo)
}

func (x u96) isZero() bool {
	return x.hi == 0 && x.lo == 0
}

func (x u96) isOdd() bool {
	return x.lo&1 != 0
}

// fint returns x as fint if it fits in 64 bits.
func (x u96) fint() (fint, bool) {
	if x.hi != 0 {
		return 0, false
	}
	return fint(x.lo), true
}

func (x u96) cmp(y u96) int {
	switch {
	case x.hi < y.hi:
		return -1
	case x.hi > y.hi:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	}
	return 0
}

// fma calculates x * 10 + d and checks that the result fits in 96 bits.
func (x u96) fma(d byte) (z u96, ok bool) {
	hi, lo := bits.Mul64(x.lo, 10)
	lo, carry := bits.Add64(lo, uint64(d), 0)
	hi += carry + uint64(x.hi)*10
	if hi > math.MaxUint32 {
		return u96{}, false
	}
	return u96{hi: uint32(hi), lo: lo}, true
}

// inc calculates x + 1 and checks that the result fits in 96 bits.
func (x u96) inc() (z u96, ok bool) {
	if x == maxU96 {
		return u96{}, false
	}
	lo, carry := bits.Add64(x.lo, 1, 0)
	return u96{hi: x.hi + uint32(carry), lo: lo}, true
}

func (x u96) string() string {
	if x.hi == 0 {
		return strconv.FormatUint(x.lo, 10)
	}
	b := getBint()
	defer putBint(b)
	b.setU96(x)
	return b.string()
}

// bint (Big INTeger) is a wrapper around big.Int.
type bint big.Int

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
// The largest entry covers the widest intermediate: a product of two
// coefficients at scale 56 plus one guard digit.
var bpow10 = func() [90]*bint {
	var t [90]*bint
	p := big.NewInt(1)
	for i := range t {
		t[i] = (*bint)(new(big.Int).Set(p))
		p.Mul(p, big.NewInt(10))
	}
	return t
}()

var (
	// bmaxCoef is 2^96 - 1.
	bmaxCoef = mustParseBint("79228162514264337593543950335")
	// bmaxCoefPlusOne is 2^96.
	bmaxCoefPlusOne = mustParseBint("79228162514264337593543950336")
)

// mustParseBint converts a string to *big.Int, panicking on error.
// Use only for package variable initialization and test code!
func mustParseBint(s string) *bint {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Errorf("mustParseBint(%q) failed: parsing error", s))
	}
	if z.Sign() < 0 {
		panic(fmt.Errorf("mustParseBint(%q) failed: negative number", s))
	}
	return (*bint)(z)
}

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) string() string {
	return (*big.Int)(z).String()
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setFint(x fint) {
	(*big.Int)(z).SetUint64(uint64(x))
}

func (z *bint) setU96(x u96) {
	b := (*big.Int)(z)
	b.SetUint64(uint64(x.hi))
	b.Lsh(b, 64)
	if x.lo != 0 {
		l := getBint()
		defer putBint(l)
		l.setFint(fint(x.lo))
		b.Or(b, (*big.Int)(l))
	}
}

// u96 converts z to u96 if it is non-negative and fits in 96 bits.
func (z *bint) u96() (u96, bool) {
	b := (*big.Int)(z)
	if b.Sign() < 0 || b.BitLen() > 96 {
		return u96{}, false
	}
	words := b.Bits()
	var x u96
	switch bits.UintSize {
	case 64:
		if len(words) > 0 {
			x.lo = uint64(words[0])
		}
		if len(words) > 1 {
			x.hi = uint32(words[1])
		}
	default:
		for i, w := range words {
			switch i {
			case 0:
				x.lo |= uint64(w)
			case 1:
				x.lo |= uint64(w) << 32
			case 2:
				x.hi = uint32(w)
			}
		}
	}
	return x, true
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// inc calculates z = x + 1.
func (z *bint) inc(x *bint) {
	z.add(x, bpow10[0])
}

// sub calculates z = x - y.
func (z *bint) sub(x, y *bint) {
	(*big.Int)(z).Sub((*big.Int)(x), (*big.Int)(y))
}

// dist calculates z = |x - y|.
func (z *bint) dist(x, y *bint) {
	switch x.cmp(y) {
	case 1:
		z.sub(x, y)
	default:
		z.sub(y, x)
	}
}

// dbl (Double) calculates z = x * 2.
func (z *bint) dbl(x *bint) {
	(*big.Int)(z).Lsh((*big.Int)(x), 1)
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// quoRem calculates z = ⌊x / y⌋, r = x - y * z.
func (z *bint) quoRem(x, y, r *bint) {
	(*big.Int)(z).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
}

func (z *bint) isOdd() bool {
	return (*big.Int)(z).Bit(0) != 0
}

// pow10 returns 10^power.
// Powers outside of bpow10 are computed and not cached.
func (z *bint) pow10(power int) *bint {
	switch {
	case power < 0:
		panic(fmt.Sprintf("pow10(%v) failed: negative power", power))
	case power < len(bpow10):
		return bpow10[power]
	}
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(power)), nil)
	return (*bint)(p)
}

// lsh (Left Shift) calculates z = x * 10^shift.
func (z *bint) lsh(x *bint, shift int) {
	if shift <= 0 {
		z.setBint(x)
		return
	}
	z.mul(x, z.pow10(shift))
}

// rshHalfEven (Right Shift) calculates z = round(x / 10^shift) and
// rounds result using "half to even" rule.
func (z *bint) rshHalfEven(x *bint, shift int) {
	// Special cases
	switch {
	case x.sign() == 0:
		z.setFint(0)
		return
	case shift <= 0:
		z.setBint(x)
		return
	}
	// General case
	y := z.pow10(shift)
	r := getBint()
	defer putBint(r)
	z.quoRem(x, y, r)
	r.dbl(r) // r = r * 2
	if halfEven(r.cmp(y), z.isOdd()) {
		z.inc(z)
	}
}

// bpool is a cache of reusable *big.Int instances.
var bpool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return bpool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	bpool.Put(b)
}
