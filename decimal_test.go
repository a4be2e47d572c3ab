package decimal96

import (
	"encoding"
	"fmt"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimal_ZeroValue(t *testing.T) {
	got := Decimal{}
	want := MustNew(0, 0)
	if got != want {
		t.Errorf("Decimal{} = %q, want %q", got, want)
	}
	if got != Zero {
		t.Errorf("Decimal{} = %q, want %q", got, Zero)
	}
}

func TestDecimal_Interfaces(t *testing.T) {
	var d any

	d = Decimal{}
	_, ok := d.(fmt.Stringer)
	if !ok {
		t.Errorf("%T does not implement fmt.Stringer", d)
	}
	_, ok = d.(encoding.TextMarshaler)
	if !ok {
		t.Errorf("%T does not implement encoding.TextMarshaler", d)
	}
	_, ok = d.(encoding.BinaryMarshaler)
	if !ok {
		t.Errorf("%T does not implement encoding.BinaryMarshaler", d)
	}

	d = &Decimal{}
	_, ok = d.(encoding.TextUnmarshaler)
	if !ok {
		t.Errorf("%T does not implement encoding.TextUnmarshaler", d)
	}
	_, ok = d.(encoding.BinaryUnmarshaler)
	if !ok {
		t.Errorf("%T does not implement encoding.BinaryUnmarshaler", d)
	}
}

func TestNew(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			coef  int64
			scale int
			want  string
		}{
			{math.MinInt64, 0, "-9223372036854775808"},
			{math.MinInt64, 1, "-922337203685477580.8"},
			{math.MinInt64, 19, "-0.9223372036854775808"},
			{math.MinInt64, 28, "-0.0000000009223372036854775808"},
			{0, 0, "0"},
			{0, 1, "0.0"},
			{0, 28, "0.0000000000000000000000000000"},
			{1, 0, "1"},
			{1, 1, "0.1"},
			{1, 28, "0.0000000000000000000000000001"},
			{math.MaxInt64, 0, "9223372036854775807"},
			{math.MaxInt64, 19, "0.9223372036854775807"},
		}
		for _, tt := range tests {
			got, err := New(tt.coef, tt.scale)
			if err != nil {
				t.Errorf("New(%v, %v) failed: %v", tt.coef, tt.scale, err)
				continue
			}
			want := MustParse(tt.want)
			if got != want {
				t.Errorf("New(%v, %v) = %q, want %q", tt.coef, tt.scale, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			coef  int64
			scale int
		}{
			"scale range 1": {math.MinInt64, -1},
			"scale range 2": {math.MaxInt64, -1},
			"scale range 3": {0, -1},
			"scale range 4": {1, 29},
			"scale range 5": {0, 29},
			"scale range 6": {1, math.MaxInt},
		}
		for name, tt := range tests {
			_, err := New(tt.coef, tt.scale)
			if err == nil {
				t.Errorf("%v: New(%v, %v) did not fail", name, tt.coef, tt.scale)
			}
		}
	})
}

func TestMustNew(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNew(0, -1) did not panic")
			}
		}()
		MustNew(0, -1)
	})
}

func TestNewFromBigInt(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			coef  string
			scale int
			want  string
		}{
			{"0", 0, "0"},
			{"0", 40, "0.0000000000000000000000000000"},
			{"1712", 3, "1.712"},
			{"-1712", 3, "-1.712"},
			{"79228162514264337593543950335", 0, "79228162514264337593543950335"},
			{"792281625142643375935439503354", 1, "79228162514264337593543950335"},
			{"792281625142643375935439503355", 2, "7922816251426433759354395034"},
			{"15", 29, "0.0000000000000000000000000002"},
			{"25", 29, "0.0000000000000000000000000002"},
			{"7", -28, "70000000000000000000000000000"},
			{"1", 1000, "0.0000000000000000000000000000"},
			{"1", 1 << 30, "0.0000000000000000000000000000"},
			{"-1", 1 << 30, "-0.0000000000000000000000000000"},
			{"0", -(1 << 30), "0"},
			{"99", 30, "0.0000000000000000000000000001"},
			{"49", 30, "0.0000000000000000000000000000"},
			{"1" + strings.Repeat("0", 200), 180, "100000000000000000000.00000000"},
		}
		for _, tt := range tests {
			coef, ok := new(big.Int).SetString(tt.coef, 10)
			require.True(t, ok)
			got, err := NewFromBigInt(coef, tt.scale)
			require.NoError(t, err, "NewFromBigInt(%v, %v)", tt.coef, tt.scale)
			assert.Equal(t, tt.want, got.String(), "NewFromBigInt(%v, %v)", tt.coef, tt.scale)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			coef  string
			scale int
		}{
			{"79228162514264337593543950336", 0},
			{"792281625142643375935439503355", 1},
			{"8", -28},
			{"1", -(1 << 30)},
			{"-1", -(1 << 30)},
		}
		for _, tt := range tests {
			coef, ok := new(big.Int).SetString(tt.coef, 10)
			require.True(t, ok)
			_, err := NewFromBigInt(coef, tt.scale)
			assert.ErrorIs(t, err, ErrOverflow, "NewFromBigInt(%v, %v)", tt.coef, tt.scale)
		}
	})
}

func TestDecimal_String(t *testing.T) {
	tests := []struct {
		d    Decimal
		want string
	}{
		{Zero, "0"},
		{Zero.Neg(), "-0"},
		{MustNew(0, 3), "0.000"},
		{MustNew(0, 3).Neg(), "-0.000"},
		{One, "1"},
		{MinusOne, "-1"},
		{MustNew(1712, 3), "1.712"},
		{MustNew(-5, 5), "-0.00005"},
		{MaxValue, "79228162514264337593543950335"},
		{MinValue, "-79228162514264337593543950335"},
		{Epsilon, "0.0000000000000000000000000001"},
		{Decimal{scale: 28, coef: maxU96}, "7.9228162514264337593543950335"},
	}
	for _, tt := range tests {
		got := tt.d.String()
		if got != tt.want {
			t.Errorf("%v.String() = %q, want %q", spew.Sdump(tt.d), got, tt.want)
		}
	}
}

func TestDecimal_Prec(t *testing.T) {
	tests := []struct {
		d    string
		want int
	}{
		{"0", 0},
		{"-0.000", 0},
		{"0.0000000000000000000000000001", 1},
		{"1", 1},
		{"1.712", 4},
		{"-0.1000", 4},
		{"9999999999999999999", 19},
		{"18446744073709551616", 20},
		{"79228162514264337593543950335", 29},
		{"7.9228162514264337593543950335", 29},
	}
	for _, tt := range tests {
		d := MustParse(tt.d)
		got := d.Prec()
		if got != tt.want {
			t.Errorf("%q.Prec() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestDecimal_Sign(t *testing.T) {
	tests := []struct {
		d              string
		sign           int
		neg, pos, zero bool
	}{
		{"0", 0, false, false, true},
		{"-0", 0, true, false, true},
		{"-0.00", 0, true, false, true},
		{"0.0000000000000000000000000001", 1, false, true, false},
		{"-0.0000000000000000000000000001", -1, true, false, false},
		{"79228162514264337593543950335", 1, false, true, false},
		{"-79228162514264337593543950335", -1, true, false, false},
	}
	for _, tt := range tests {
		d := MustParse(tt.d)
		assert.Equal(t, tt.sign, d.Sign(), "%q.Sign()", tt.d)
		assert.Equal(t, tt.neg, d.IsNeg(), "%q.IsNeg()", tt.d)
		assert.Equal(t, tt.pos, d.IsPos(), "%q.IsPos()", tt.d)
		assert.Equal(t, tt.zero, d.IsZero(), "%q.IsZero()", tt.d)
	}
}

func TestDecimal_IsInt(t *testing.T) {
	tests := []struct {
		d    string
		want bool
	}{
		{"0", true},
		{"0.000", true},
		{"1.000", true},
		{"-5.00", true},
		{"1.001", false},
		{"0.0000000000000000000000000001", false},
		{"7922816251426433759354395033.0", true},
		{"7922816251426433759354395033.5", false},
	}
	for _, tt := range tests {
		d := MustParse(tt.d)
		assert.Equal(t, tt.want, d.IsInt(), "%q.IsInt()", tt.d)
	}
}

func TestDecimal_Coef(t *testing.T) {
	tests := []struct {
		d, want string
	}{
		{"0", "0"},
		{"-1.712", "1712"},
		{"7.9228162514264337593543950335", "79228162514264337593543950335"},
		{"18446744073709551616", "18446744073709551616"},
	}
	for _, tt := range tests {
		d := MustParse(tt.d)
		assert.Equal(t, tt.want, d.Coef().String(), "%q.Coef()", tt.d)
	}
}

func TestDecimal_Abs(t *testing.T) {
	tests := []struct {
		d, want string
	}{
		{"0", "0"},
		{"-0.0", "0.0"},
		{"-1.712", "1.712"},
		{"1.712", "1.712"},
	}
	for _, tt := range tests {
		got := MustParse(tt.d).Abs()
		want := MustParse(tt.want)
		if got != want {
			t.Errorf("%q.Abs() = %q, want %q", tt.d, got, want)
		}
	}
}

func TestDecimal_zeros(t *testing.T) {
	zeros := []string{"0", "-0", "0.0", "-0.0", "0.00", "0.0000000000000000000000000000", "-0.0000000000000000000000000000"}
	seen := make(map[Bits]string)
	for _, z := range zeros {
		d := MustParse(z)
		b := d.Bits()
		if prev, ok := seen[b]; ok {
			t.Errorf("%q and %q have the same bits %v", z, prev, b)
		}
		seen[b] = z
		for _, y := range zeros {
			if c := d.Cmp(MustParse(y)); c != 0 {
				t.Errorf("%q.Cmp(%q) = %v, want 0", z, y, c)
			}
		}
	}
}

func TestDecimal_WellKnown(t *testing.T) {
	tests := []struct {
		d    string
		want WellKnown
		ok   bool
	}{
		{"0", WellKnownZero, true},
		{"1", WellKnownOne, true},
		{"-1", WellKnownMinusOne, true},
		{"-0", 0, false},
		{"0.0", 0, false},
		{"1.0", 0, false},
		{"-1.00", 0, false},
		{"2", 0, false},
	}
	for _, tt := range tests {
		got, ok := MustParse(tt.d).WellKnown()
		assert.Equal(t, tt.ok, ok, "%q.WellKnown()", tt.d)
		assert.Equal(t, tt.want, got, "%q.WellKnown()", tt.d)
		if ok {
			assert.Equal(t, MustParse(tt.d), got.Decimal())
		}
	}

	names := map[WellKnown]string{
		WellKnownZero:     "Zero",
		WellKnownOne:      "One",
		WellKnownMinusOne: "MinusOne",
		WellKnown(9):      "WellKnown(9)",
	}
	for w, want := range names {
		assert.Equal(t, want, w.String())
	}
}

func TestDecimal_Text(t *testing.T) {
	tests := []string{"0", "-0.00", "1.712", "-79228162514264337593543950335", "0.0000000000000000000000000001"}
	for _, tt := range tests {
		d := MustParse(tt)
		text, err := d.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, tt, string(text))

		var got Decimal
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, d, got)
	}

	var d Decimal
	err := d.UnmarshalText([]byte("1.2.3"))
	assert.True(t, MalformedError.Has(err), "UnmarshalText(\"1.2.3\") = %v", err)
}

/******************************************************
* Fuzzing
******************************************************/

func newSafe(neg bool, hi uint32, lo uint64, scale int) (Decimal, error) {
	return newDecimal(neg, u96{hi: hi, lo: lo}, scale)
}

var corpus = []Decimal{
	// zero
	{},
	{neg: true},
	{scale: 28},

	// positive
	{coef: u96{lo: 1}},
	{coef: u96{lo: 3}},
	{coef: u96{lo: 9999999999999999999}},
	{scale: 19, coef: u96{lo: 3}},
	{scale: 19, coef: u96{lo: 9999999999999999999}},
	{scale: 28, coef: u96{lo: 1}},
	{scale: 0, coef: maxU96},
	{scale: 14, coef: maxU96},
	{scale: 28, coef: maxU96},
	{scale: 2, coef: u96{hi: 1}},

	// negative
	{neg: true, coef: u96{lo: 1}},
	{neg: true, coef: u96{lo: 3}},
	{neg: true, scale: 19, coef: u96{lo: 1}},
	{neg: true, scale: 19, coef: u96{lo: 9999999999999999999}},
	{neg: true, scale: 0, coef: maxU96},
	{neg: true, scale: 28, coef: maxU96},
	{neg: true, scale: 7, coef: u96{hi: 0x1999, lo: 0x9999999999999999}},
}
