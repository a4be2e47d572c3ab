package decimal96

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// Bits is the packed form of a decimal: four 32-bit words with the same
// layout as the decimal type of the .NET runtime.
//
// Flags holds the scale in bits 16 to 23 and the sign in bit 31, all
// other bits are reserved and must be zero.
// The coefficient is Hi * 2^64 + Mid * 2^32 + Lo.
//
// The layout is a stable interchange format between compiled output and
// the executing program and must not change.
type Bits struct {
	Flags uint32
	Hi    uint32
	Mid   uint32
	Lo    uint32
}

const (
	signMask  = 0x8000_0000
	scaleMask = 0x00FF_0000
	scaleBit  = 16

	// BinarySize is the length of the binary form of a decimal.
	BinarySize = 16
)

// Bits returns the packed form of d.
func (d Decimal) Bits() Bits {
	hi, mid, lo := d.coef.words()
	flags := uint32(d.scale) << scaleBit
	if d.neg {
		flags |= signMask
	}
	return Bits{Flags: flags, Hi: hi, Mid: mid, Lo: lo}
}

// NewFromBits returns the decimal packed in b.
// NewFromBits returns an error of class [MalformedError] if the scale is
// greater than [MaxScale] or any reserved bit of Flags is set.
func NewFromBits(b Bits) (Decimal, error) {
	if b.Flags&^(signMask|scaleMask) != 0 {
		return Decimal{}, Error.Wrap(MalformedError.New("flags %08x: reserved bits are set", b.Flags))
	}
	scale := int(b.Flags&scaleMask) >> scaleBit
	d, err := newDecimal(b.Flags&signMask != 0, newU96(b.Hi, b.Mid, b.Lo), scale)
	if err != nil {
		return Decimal{}, Error.Wrap(MalformedError.New("flags %08x: scale %v: %w", b.Flags, scale, err))
	}
	return d, nil
}

// Scale returns the scale field of b, without validation.
func (b Bits) Scale() int {
	return int(b.Flags&scaleMask) >> scaleBit
}

// IsNeg returns the sign bit of b.
func (b Bits) IsNeg() bool {
	return b.Flags&signMask != 0
}

// String returns the four words as 32 lowercase hex digits in the order
// the runtime's GetBits method returns them: Lo, Mid, Hi, Flags.
// For example, 1.712 is "000006b0000000000000000000030000".
func (b Bits) String() string {
	return fmt.Sprintf("%08x%08x%08x%08x", b.Lo, b.Mid, b.Hi, b.Flags)
}

// ParseBits is the inverse of [Bits.String].
// The words are not validated, see [NewFromBits].
func ParseBits(s string) (Bits, error) {
	if len(s) != 2*BinarySize {
		return Bits{}, Error.Wrap(MalformedError.New("packed decimal %q: want %v hex digits, got %v", s, 2*BinarySize, len(s)))
	}
	var words [4]uint32
	for i := range words {
		var w [4]byte
		if _, err := hex.Decode(w[:], []byte(s[8*i:8*i+8])); err != nil {
			return Bits{}, Error.Wrap(MalformedError.New("packed decimal %q: %w", s, err))
		}
		words[i] = binary.BigEndian.Uint32(w[:])
	}
	return Bits{Lo: words[0], Mid: words[1], Hi: words[2], Flags: words[3]}, nil
}

// AppendBinary appends the binary form of d to buf: the words Lo, Mid, Hi
// and Flags, each in little-endian byte order.
// This is the form written by the runtime's BinaryWriter.
func (d Decimal) AppendBinary(buf []byte) []byte {
	b := d.Bits()
	buf = binary.LittleEndian.AppendUint32(buf, b.Lo)
	buf = binary.LittleEndian.AppendUint32(buf, b.Mid)
	buf = binary.LittleEndian.AppendUint32(buf, b.Hi)
	buf = binary.LittleEndian.AppendUint32(buf, b.Flags)
	return buf
}

// MarshalBinary implements [encoding.BinaryMarshaler] interface.
// Also see method [Decimal.AppendBinary].
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (d Decimal) MarshalBinary() ([]byte, error) {
	return d.AppendBinary(make([]byte, 0, BinarySize)), nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler] interface.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (d *Decimal) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)
	if len(data) != BinarySize {
		return MalformedError.New("binary decimal: want %v bytes, got %v", BinarySize, len(data))
	}
	b := Bits{
		Lo:    binary.LittleEndian.Uint32(data[0:]),
		Mid:   binary.LittleEndian.Uint32(data[4:]),
		Hi:    binary.LittleEndian.Uint32(data[8:]),
		Flags: binary.LittleEndian.Uint32(data[12:]),
	}
	*d, err = NewFromBits(b)
	return err
}
