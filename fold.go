package decimal96

import "fmt"

// Op is an operator that can be folded over constant decimals.
type Op uint8

const (
	OpNegate    Op = iota + 1 // -x
	OpPlus                    // +x
	OpIncrement               // x + 1
	OpDecrement               // x - 1
	OpAdd                     // x + y
	OpSubtract                // x - y
	OpMultiply                // x * y
	OpDivide                  // x / y
	OpRemainder               // x % y
)

var opNames = [...]string{
	OpNegate:    "Negate",
	OpPlus:      "Plus",
	OpIncrement: "Increment",
	OpDecrement: "Decrement",
	OpAdd:       "Add",
	OpSubtract:  "Subtract",
	OpMultiply:  "Multiply",
	OpDivide:    "Divide",
	OpRemainder: "Remainder",
}

var opSymbols = [...]string{
	OpNegate:    "-",
	OpPlus:      "+",
	OpIncrement: "++",
	OpDecrement: "--",
	OpAdd:       "+",
	OpSubtract:  "-",
	OpMultiply:  "*",
	OpDivide:    "/",
	OpRemainder: "%",
}

func (op Op) valid() bool {
	return op >= OpNegate && op <= OpRemainder
}

// String returns the name of the operator, such as "Add".
func (op Op) String() string {
	if !op.valid() {
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
	return opNames[op]
}

// Symbol returns the operator as written in source code, such as "+".
// Unary and binary minus share a symbol.
func (op Op) Symbol() string {
	if !op.valid() {
		return "?"
	}
	return opSymbols[op]
}

// Arity returns the number of operands of the operator, 1 or 2.
func (op Op) Arity() int {
	switch op {
	case OpNegate, OpPlus, OpIncrement, OpDecrement:
		return 1
	}
	return 2
}

// Fold applies op to constant operands and returns the result with the
// same rounding and range as the runtime would.
// For unary operators y is ignored.
// Comparisons are folded by [Compare] and [FoldRelation].
//
// Fold returns an [*OverflowError] if the result is out of range and a
// [*DivideByZeroError] if op is [OpDivide] or [OpRemainder] and y is zero.
func Fold(op Op, x, y Decimal) (Decimal, error) {
	switch op {
	case OpNegate:
		return x.Neg(), nil
	case OpPlus:
		return x.Plus(), nil
	case OpIncrement:
		return x.Inc()
	case OpDecrement:
		return x.Dec()
	case OpAdd:
		return x.Add(y)
	case OpSubtract:
		return x.Sub(y)
	case OpMultiply:
		return x.Mul(y)
	case OpDivide:
		return x.Quo(y)
	case OpRemainder:
		return x.Rem(y)
	}
	return Decimal{}, Error.New("fold: unknown operator %v", op)
}

// Compare returns x.Cmp(y), see [Decimal.Cmp].
// It has the signature expected by [slices.SortFunc].
func Compare(x, y Decimal) int {
	return x.Cmp(y)
}

// Relation is a comparison operator that can be folded over constant decimals.
type Relation uint8

const (
	Equal          Relation = iota + 1 // x == y
	NotEqual                           // x != y
	Less                               // x < y
	LessOrEqual                        // x <= y
	Greater                            // x > y
	GreaterOrEqual                     // x >= y
)

func (r Relation) String() string {
	switch r {
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	case Less:
		return "<"
	case LessOrEqual:
		return "<="
	case Greater:
		return ">"
	case GreaterOrEqual:
		return ">="
	}
	return fmt.Sprintf("Relation(%d)", uint8(r))
}

// FoldRelation compares constant operands numerically, so 0 == -0 and
// 1.0 == 1.00 hold.
func FoldRelation(r Relation, x, y Decimal) (bool, error) {
	c := x.Cmp(y)
	switch r {
	case Equal:
		return c == 0, nil
	case NotEqual:
		return c != 0, nil
	case Less:
		return c < 0, nil
	case LessOrEqual:
		return c <= 0, nil
	case Greater:
		return c > 0, nil
	case GreaterOrEqual:
		return c >= 0, nil
	}
	return false, Error.New("fold: unknown relation %v", r)
}
