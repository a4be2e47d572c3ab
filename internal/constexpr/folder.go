// Package constexpr folds constant decimal expressions written in prefix
// notation, such as "* 10 + 1.23 4.56" or "< 1.0 / 1 3".
//
// Folding is error tolerant in the way a compiler is: a literal that does
// not evaluate or an operation that fails produces a [Diagnostic], zero is
// used in place of the failed value and folding goes on, so one pass reports
// every problem of the expression.
package constexpr

import (
	"fmt"
	"strings"

	"github.com/govalues/decimal96"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/zeebo/errs"
)

// Error is the class of errors that stop folding altogether, such as an
// expression with too few operands.
var Error = errs.Class("constexpr")

var operators = map[string]decimal96.Op{
	"neg":  decimal96.OpNegate,
	"plus": decimal96.OpPlus,
	"++":   decimal96.OpIncrement,
	"inc":  decimal96.OpIncrement,
	"--":   decimal96.OpDecrement,
	"dec":  decimal96.OpDecrement,
	"+":    decimal96.OpAdd,
	"-":    decimal96.OpSubtract,
	"*":    decimal96.OpMultiply,
	"/":    decimal96.OpDivide,
	"%":    decimal96.OpRemainder,
}

var relations = map[string]decimal96.Relation{
	"==": decimal96.Equal,
	"!=": decimal96.NotEqual,
	"<":  decimal96.Less,
	"<=": decimal96.LessOrEqual,
	">":  decimal96.Greater,
	">=": decimal96.GreaterOrEqual,
}

// Diagnostic is a failure at one token of an expression.
type Diagnostic struct {
	Pos   int    // index of the token, starting at 0
	Token string // token as written
	Err   error
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("token %d %q: %v", d.Pos, d.Token, d.Err)
}

func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// Step is one operation carried out while folding.
type Step struct {
	Pos    int
	Op     decimal96.Op
	X, Y   decimal96.Decimal
	Result decimal96.Decimal
}

func (s Step) String() string {
	if s.Op.Arity() == 1 {
		return fmt.Sprintf("%v(%v) = %v", s.Op.Symbol(), s.X, s.Result)
	}
	return fmt.Sprintf("%v %v %v = %v", s.X, s.Op.Symbol(), s.Y, s.Result)
}

// Result is a folded expression.
type Result struct {
	// Value is the folded value. It is zero for relational expressions.
	Value decimal96.Decimal

	// Relation is set if the expression starts with a relational operator,
	// Truth then holds the outcome of the comparison.
	Relation decimal96.Relation
	Truth    bool

	// Steps lists the operations in the order they were applied.
	Steps []Step
}

// IsRelation reports whether the expression was a comparison.
func (r *Result) IsRelation() bool {
	return r.Relation != 0
}

// Folder folds constant expressions.
// A Folder has no mutable state and may be used concurrently.
type Folder struct {
	logger hclog.Logger
}

// NewFolder returns a folder that traces every step to logger.
// A nil logger discards the trace.
func NewFolder(logger hclog.Logger) *Folder {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Folder{logger: logger}
}

// Fold evaluates the prefix expression expr.
//
// If some tokens fail, Fold returns the result computed with zero in place
// of the failed values together with a [*multierror.Error] of
// [*Diagnostic] entries, one per failure.
// If the expression is not well formed, Fold returns a nil result and an
// error of class [Error].
func (f *Folder) Fold(expr string) (*Result, error) {
	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return nil, Error.New("empty expression")
	}

	res := &Result{}
	start := 0
	if r, ok := relations[tokens[0]]; ok {
		res.Relation = r
		start = 1
	}

	var diags *multierror.Error
	stack := make([]decimal96.Decimal, 0, len(tokens))
	for pos := len(tokens) - 1; pos >= start; pos-- {
		token := tokens[pos]
		if _, ok := relations[token]; ok {
			return nil, Error.New("token %d %q: relational operator inside an expression", pos, token)
		}

		op, ok := operators[token]
		if !ok {
			d, err := decimal96.Parse(token)
			if err != nil {
				diags = f.diagnose(diags, pos, token, err)
				d = decimal96.Zero
			}
			stack = append(stack, d)
			continue
		}

		if len(stack) < op.Arity() {
			return nil, Error.New("token %d %q: not enough operands", pos, token)
		}
		x := stack[len(stack)-1]
		var y decimal96.Decimal
		if op.Arity() == 2 {
			y = stack[len(stack)-2]
		}
		stack = stack[:len(stack)-op.Arity()]

		z, err := decimal96.Fold(op, x, y)
		if err != nil {
			diags = f.diagnose(diags, pos, token, err)
			z = decimal96.Zero
		} else if op.Arity() == 1 {
			f.logger.Trace("fold", "op", op, "x", x, "result", z)
		} else {
			f.logger.Trace("fold", "op", op, "x", x, "y", y, "result", z)
		}
		res.Steps = append(res.Steps, Step{Pos: pos, Op: op, X: x, Y: y, Result: z})
		stack = append(stack, z)
	}

	switch {
	case res.IsRelation():
		if len(stack) != 2 {
			return nil, Error.New("relation %v needs exactly two operands, got %d", res.Relation, len(stack))
		}
		x, y := stack[1], stack[0]
		truth, err := decimal96.FoldRelation(res.Relation, x, y)
		if err != nil {
			return nil, Error.Wrap(err)
		}
		f.logger.Trace("compare", "relation", res.Relation, "x", x, "y", y, "result", truth)
		res.Truth = truth
	case len(stack) != 1:
		return nil, Error.New("expression leaves %d values, expected exactly one", len(stack))
	default:
		res.Value = stack[0]
	}

	return res, diags.ErrorOrNil()
}

func (f *Folder) diagnose(diags *multierror.Error, pos int, token string, err error) *multierror.Error {
	f.logger.Debug("diagnostic", "pos", pos, "token", token, "error", err)
	return multierror.Append(diags, &Diagnostic{Pos: pos, Token: token, Err: err})
}

// Diagnostics returns the diagnostics carried by an error returned from
// [Folder.Fold], or nil if there are none.
func Diagnostics(err error) []*Diagnostic {
	merr, ok := err.(*multierror.Error)
	if !ok {
		return nil
	}
	diags := make([]*Diagnostic, 0, len(merr.Errors))
	for _, e := range merr.Errors {
		if d, ok := e.(*Diagnostic); ok {
			diags = append(diags, d)
		}
	}
	return diags
}
