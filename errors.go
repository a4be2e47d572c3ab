package decimal96

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

var (
	// Error is the class of every error returned by this package.
	Error = errs.Class("decimal96")

	// MalformedError is the class of errors caused by foreign input that
	// breaks a documented contract: literal text that is not a number,
	// packed words with reserved bits set, NaN or infinite floats.
	MalformedError = errs.Class("malformed decimal")
)

var (
	// ErrOverflow is matched by every [*OverflowError].
	ErrOverflow = errors.New("value was either too large or too small for a decimal")

	// ErrDivisionByZero is matched by every [*DivideByZeroError].
	ErrDivisionByZero = errors.New("division by constant zero")
)

var (
	errCoefficientOverflow = errors.New("coefficient overflow")
	errScaleRange          = errors.New("scale out of range")
)

// OverflowError reports a literal or a folded constant whose magnitude
// cannot be represented at any scale in range [0, MaxScale].
//
// For literals Text holds the literal as written.
// For folded constants Op holds the operator and X, Y its operands,
// Y is the zero value for unary operators.
type OverflowError struct {
	Text string
	Op   Op
	X, Y Decimal
}

func (e *OverflowError) Error() string {
	switch {
	case e.Op == 0:
		return fmt.Sprintf("constant value '%v' is out of range: %v", e.Text, ErrOverflow)
	case e.Op.Arity() == 1:
		return fmt.Sprintf("constant %v(%v): %v", e.Op.Symbol(), e.X, ErrOverflow)
	default:
		return fmt.Sprintf("constant %v %v %v: %v", e.X, e.Op.Symbol(), e.Y, ErrOverflow)
	}
}

// Is makes errors.Is(err, ErrOverflow) true.
func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}

// DivideByZeroError reports a constant division or remainder with a zero
// divisor.
type DivideByZeroError struct {
	Op   Op
	X, Y Decimal
}

func (e *DivideByZeroError) Error() string {
	return fmt.Sprintf("constant %v %v %v: %v", e.X, e.Op.Symbol(), e.Y, ErrDivisionByZero)
}

// Is makes errors.Is(err, ErrDivisionByZero) true.
func (e *DivideByZeroError) Is(target error) bool {
	return target == ErrDivisionByZero
}

func overflow(op Op, d, e Decimal) error {
	return Error.Wrap(&OverflowError{Op: op, X: d, Y: e})
}
