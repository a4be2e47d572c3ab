package decimal96

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			text string
			want Literal
		}{
			{"0", Literal{Digits: "0"}},
			{"1.712", Literal{Digits: "1712", FracDigits: 3}},
			{"1.712m", Literal{Digits: "1712", FracDigits: 3}},
			{"-0.00", Literal{Neg: true, Digits: "000", FracDigits: 2}},
			{"+7E28M", Literal{Digits: "7", Exp: 28}},
			{".5e-3", Literal{Digits: "5", FracDigits: 1, Exp: -3}},
			{"12.", Literal{Digits: "12"}},
			{"1e+3", Literal{Digits: "1", Exp: 3}},
			{"007.100", Literal{Digits: "007100", FracDigits: 3}},
			{"1e99999999999999999999999", Literal{Digits: "1", Exp: maxExponent}},
			{"1e-99999999999999999999999", Literal{Digits: "1", Exp: -maxExponent}},
		}
		for _, tt := range tests {
			got, err := Scan(tt.text)
			require.NoError(t, err, "Scan(%q)", tt.text)
			tt.want.Text = tt.text
			assert.Equal(t, tt.want, got, "Scan(%q)", tt.text)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"empty":           "",
			"sign only":       "-",
			"point only":      ".",
			"exponent only":   "e5",
			"no exp digits 1": "1e",
			"no exp digits 2": "1e+",
			"two points":      "1.2.3",
			"inner suffix":    "1m2",
			"hex":             "0x10",
			"leading space":   " 1",
			"underscore":      "1_000",
			"double sign":     "--1",
			"suffix only":     "m",
			"double suffix":   "1mm",
		}
		for name, text := range tests {
			_, err := Scan(text)
			require.Error(t, err, "%v: Scan(%q)", name, text)
			assert.True(t, MalformedError.Has(err), "%v: Scan(%q) = %v, want malformed", name, text, err)
			assert.True(t, Error.Has(err), "%v: Scan(%q) = %v, want class %v", name, text, err, Error)
		}
	})
}

func TestLiteral_String(t *testing.T) {
	tests := []struct {
		lit  Literal
		want string
	}{
		{Literal{Digits: "1712", FracDigits: 3}, "1.712"},
		{Literal{Neg: true, Digits: "000", FracDigits: 2}, "-0.00"},
		{Literal{Digits: "5", FracDigits: 1, Exp: -3}, "0.5e-3"},
		{Literal{Digits: "7", Exp: 28}, "7e28"},
		{Literal{Digits: "7", Exp: 28, Text: "7E28m"}, "7E28m"},
	}
	for _, tt := range tests {
		got := tt.lit.String()
		if got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.lit, got, tt.want)
		}
	}
}

// The values below were produced by the runtime's own lexer and are
// written in the order of GetBits: Lo, Mid, Hi, Flags.
func TestParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			text, want string
		}{
			// Simple cases
			{"0", "00000000000000000000000000000000"},
			{"1", "00000001000000000000000000000000"},
			{"1.712", "000006b0000000000000000000030000"},
			{"1.1E-1", "0000000b000000000000000000020000"},
			{".5", "00000005000000000000000000010000"},
			{"5.", "00000005000000000000000000000000"},
			{"1E+3", "000003e8000000000000000000000000"},
			{"1e-28m", "000000010000000000000000001c0000"},
			{"-7.9e28M", "98000000515792cbff4344b580000000"},

			// Zeros
			{"0.000", "00000000000000000000000000030000"},
			{"-0.00", "00000000000000000000000080020000"},
			{"-0e-1", "00000000000000000000000080010000"},
			{"0e-27", "000000000000000000000000001b0000"},
			{"0e-29", "000000000000000000000000001c0000"},
			{"1e-29", "000000000000000000000000001c0000"},
			{"1e-9999", "000000000000000000000000001c0000"},
			{"0.5e-28", "000000000000000000000000001c0000"},

			// Large values
			{"7e28", "70000000b30310a7e22ea49300000000"},
			{"792E26", "600000000ae7ac71ffe8b45b00000000"},
			{"1e28", "100000003e250261204fce5e00000000"},
			{"7922816251426433759354395033E1", "fffffffaffffffffffffffff00000000"},
			{"79228162514264337593543950335E0", "ffffffffffffffffffffffff00000000"},
			{"7922816251426433759354395033.5E1", "ffffffffffffffffffffffff00000000"},
			{"7.9228162514264337593543950335E28", "ffffffffffffffffffffffff00000000"},
			{"792281625142643375935439503350E-1", "ffffffffffffffffffffffff00000000"},
			{"792281625142643375935439503354E-1", "ffffffffffffffffffffffff00000000"},
			{"7922816251426433759354395033500000E-5", "ffffffffffffffffffffffff00000000"},
			{"7922816251426433759354395033549999E-5", "ffffffffffffffffffffffff00000000"},
			{"79228162514264337593543950334.5", "fffffffeffffffffffffffff00000000"},

			// Small values
			{"1e-27", "000000010000000000000000001b0000"},
			{"1e-28", "000000010000000000000000001c0000"},
			{"0.6e-28", "000000010000000000000000001c0000"},
			{"0.15e-27", "000000020000000000000000001c0000"},
			{"0.25e-27", "000000020000000000000000001c0000"},
			{"0.35e-27", "000000040000000000000000001c0000"},
			{"123.456e-30", "000000010000000000000000001c0000"},
			{"7.9228162514264337593543950335", "ffffffffffffffffffffffff001c0000"},
			{"79228162514264337593543950335e-28", "ffffffffffffffffffffffff001c0000"},

			// Rounding
			{"7.92281625142643375935439503345", "fffffffeffffffffffffffff001c0000"},
			{"7.92281625142643375935439503355", "9999999a9999999919999999001b0000"},
			{"7922816251426433759354395033.45", "fffffffeffffffffffffffff00010000"},
			{"0.99999999999999999999999999999", "100000003e250261204fce5e001c0000"},
			{"9.99999999999999999999999999999", "100000003e250261204fce5e001b0000"},

			// Sticky digits
			{"3.05e-27", "0000001e0000000000000000001c0000"},
			{"0.0000000000000000000000000030500000000000000000001", "0000001f0000000000000000001c0000"},
			{"0.00000000000000000000000000305000000000000000000001", "0000001e0000000000000000001c0000"},
			{"0.000000000000000000000000000250000000000000000001", "000000030000000000000000001c0000"},
			{"0.000000000000000000000000000250000000000000000000001", "000000020000000000000000001c0000"},

			// Many digits
			{"1.23456789012345678901234567890123456789e28", "6e39811546bec9b127e41b3200000000"},
			{"123456789012345678901234567890.123456789e-1", "6e39811546bec9b127e41b3200000000"},
			{"12345678901234567890123456789012345678901234567890e-21", "6e39811546bec9b127e41b3200000000"},
			{"0.000000000000000000000000000012345678901234567890123456789e31", "6e39811546bec9b127e41b32001a0000"},
		}
		for _, tt := range tests {
			got, err := Parse(tt.text)
			require.NoError(t, err, "Parse(%q)", tt.text)
			assert.Equal(t, tt.want, got.Bits().String(), "Parse(%q) = %v", tt.text, got)
		}
	})

	t.Run("overflow", func(t *testing.T) {
		tests := []string{
			"8e28",
			"793E26",
			"7922816251426433759354395034E1",
			"79228162514264337593543950336",
			"79228162514264337593543950346E0",
			"7922816251426433759354395034.6E1",
			"7.9228162514264337593543950346E28",
			"79228162514264337593543950335.5",
			"99999999999999999999999999999.9",
			"1.23456789012345678901234567890123456789e29",
			"1e9999",
			"1.0e9999",
			"-1e99999999999999999999999",
			"0e1",
			"-0.0e2",
		}
		for _, text := range tests {
			_, err := Parse(text)
			require.Error(t, err, "Parse(%q)", text)
			assert.ErrorIs(t, err, ErrOverflow, "Parse(%q)", text)
			var oe *OverflowError
			require.True(t, errors.As(err, &oe), "Parse(%q) = %T", text, err)
			assert.Equal(t, text, oe.Text)
			assert.True(t, Error.Has(err))
			assert.False(t, MalformedError.Has(err))
		}
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			lit  Literal
			want string
		}{
			{Literal{Digits: "1712", FracDigits: 3}, "1.712"},
			{Literal{Neg: true, Digits: "0", FracDigits: 0, Exp: -5}, "-0.00000"},
			{Literal{Digits: "1", Exp: -maxExponent}, "0.0000000000000000000000000000"},
			{Literal{Digits: "1", Exp: -1 << 62}, "0.0000000000000000000000000000"},
			{Literal{Digits: "25", Exp: -29}, "0.0000000000000000000000000002"},
		}
		for _, tt := range tests {
			got, err := Evaluate(tt.lit)
			require.NoError(t, err, "Evaluate(%v)", tt.lit)
			assert.Equal(t, tt.want, got.String(), "Evaluate(%v)", tt.lit)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]Literal{
			"empty digits":    {},
			"invalid digit":   {Digits: "1a"},
			"negative frac":   {Digits: "1", FracDigits: -1},
			"frac too long":   {Digits: "1", FracDigits: 2},
			"saturated large": {Digits: "1", Exp: 1 << 62},
		}
		for name, lit := range tests {
			_, err := Evaluate(lit)
			require.Error(t, err, "%v: Evaluate(%#v)", name, lit)
			assert.True(t, Error.Has(err), "%v: Evaluate(%#v) = %v", name, lit, err)
		}
	})
}

func TestParse_boundary(t *testing.T) {
	// The largest value at every scale, and the next literal after it
	for s := 0; s <= MaxScale; s++ {
		text := MaxCoefficient
		if s > 0 {
			text = text[:len(text)-s] + "." + text[len(text)-s:]
		}
		d, err := Parse(text)
		require.NoError(t, err, "Parse(%q)", text)
		assert.Equal(t, maxU96, d.coef, "Parse(%q)", text)
		assert.Equal(t, s, d.Scale(), "Parse(%q)", text)
		assert.Equal(t, text, d.String())
	}

	_, err := Parse(MaxCoefficient + ".5")
	assert.ErrorIs(t, err, ErrOverflow)
	d, err := Parse(MaxCoefficient + ".4999999999")
	require.NoError(t, err)
	assert.Equal(t, MaxValue, d)
}

func TestParse_sticky(t *testing.T) {
	base := "0.00000000000000000000000000305"
	for n := 0; n < 30; n++ {
		text := base + strings.Repeat("0", n) + "1"
		d, err := Parse(text)
		require.NoError(t, err, "Parse(%q)", text)
		want := "0.0000000000000000000000000031"
		if n >= stickyDigits {
			want = "0.0000000000000000000000000030"
		}
		assert.Equal(t, want, d.String(), "Parse(%q)", text)
	}
}

func TestMustParse(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParse(\".\") did not panic")
			}
		}()
		MustParse(".")
	})
}

func FuzzParse(f *testing.F) {
	for _, d := range corpus {
		for s := 0; s <= MaxScale; s++ {
			f.Add(d.String(), s)
		}
	}

	f.Fuzz(
		func(t *testing.T, text string, _ int) {
			d, err := Parse(text)
			if err != nil {
				if !MalformedError.Has(err) && !errors.Is(err, ErrOverflow) {
					t.Errorf("Parse(%q) failed with unexpected error: %v", text, err)
				}
				return
			}
			e, err := Parse(d.String())
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", d.String(), err)
				return
			}
			if d != e {
				t.Errorf("Parse(%q) = %v, whereas Parse(%q) = %v", d.String(), e, text, d)
			}
		},
	)
}
