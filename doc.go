/*
Package decimal96 implements compile-time constants of the 96-bit fixed-point
decimal type used by the .NET runtime.
It evaluates decimal literals, folds arithmetic on constant decimals, and
packs decimals into the runtime's binary layout, so that a compiler can embed
results that are bit-identical to what the executing program would compute.

# Representation

[Decimal] is a struct with three fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Coefficient: an unsigned 96-bit integer representing the numeric value
    of the decimal without the decimal point.
  - Scale: a non-negative integer indicating the position of the decimal point
    within the coefficient.
    For example, a decimal with a coefficient of 1712 and a scale of 3
    represents the value 1.712.
    The range of allowed values for the scale is from 0 to 28.

The numerical value of a decimal is calculated as:

  - -Coefficient / 10^Scale, if Sign is true.
  - Coefficient / 10^Scale, if Sign is false.

The same numeric value can have multiple representations, and every one of
them is preserved: 1, 1.0, and 1.00 are different decimals, and so are
0, -0 and 0.000.
Representations matter, because they are observable in the packed form.

# Constraints

The largest coefficient is 2^96 - 1 = 79,228,162,514,264,337,593,543,950,335.
The range of a decimal is therefore determined by its scale:

	| Scale | Minimum                               | Maximum                              |
	| ----- | ------------------------------------- | ------------------------------------ |
	| 0     | -79228162514264337593543950335        | 79228162514264337593543950335        |
	| 2     | -792281625142643375935439503.35       | 792281625142643375935439503.35       |
	| 28    | -7.9228162514264337593543950335       | 7.9228162514264337593543950335       |

The smallest positive decimal is 0.0000000000000000000000000001 ([Epsilon]).

# Packed form

[Bits] is the runtime's layout: a flags word carrying the scale in bits 16
to 23 and the sign in bit 31, and three words Hi, Mid and Lo carrying the
coefficient.
[Decimal.Bits] and [NewFromBits] convert between the two forms without rounding.
[Bits.String] prints the words in the order of the runtime's GetBits method.

[Decimal.WellKnown] reports whether a decimal is exactly one of
[Zero], [One] or [MinusOne], which the runtime exposes as static fields.

# Literals

[Evaluate] converts a [Literal], the lexical parts of a literal such as 1.5e-3m,
to a decimal.
[Scan] produces literals from text, and [Parse] does both.

# Operations

[Fold] applies an [Op] to constant operands.
Each arithmetic operation is carried out in two steps:

 1. The operation is initially performed using uint64 arithmetic.
    If no overflow occurs, the exact result is immediately returned.
    If an overflow does occur, the operation proceeds to step 2.

 2. The operation is repeated with [big.Int] arithmetic.
    The exact result is then reduced to scale 28 and 96 bits.

# Rounding

Implicit rounding is applied when a result has more than 28 digits after the
decimal point or its coefficient exceeds 96 bits.
Digits after the decimal point are dropped and the result is rounded a single
time using half-to-even rounding.
Literals follow the same rule, except that only 20 digits past a rounding
digit of 5 are inspected to break the tie.

# Errors

All errors returned by this package belong to the [Error] class.

  - [*OverflowError]: the integer part of a result does not fit in 96 bits.
    It carries the literal text or the operator and its operands.
  - [*DivideByZeroError]: the divisor of a constant division or remainder is zero.
  - [MalformedError]: input violates a documented contract, for example
    packed words with reserved bits set.

Errors are returned, never panicked, except by the Must functions.
*/
package decimal96
