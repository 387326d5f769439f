package expr

import (
	"math"
	"strconv"
)

// Eval reduces e to a number. Children are evaluated depth-first, left to
// right. The first unresolved symbol encountered aborts evaluation with an
// *UnresolvedError. Numeric edge cases follow the arithmetic of the operands:
// real division by zero is infinite, the logarithm of a negative number is
// NaN, and integer division by zero panics.
func (e *Expr) Eval() (Value, error) {
	switch e.kind {
	case KindNum:
		return e.val, nil
	case KindVar, KindSubscript:
		return Value{}, &UnresolvedError{Name: e.LaTeX()}
	case KindValued, KindParen:
		return e.left.Eval()
	case KindAdd, KindSub, KindMul, KindFrac, KindPow, KindRoot, KindLog:
		l, err := e.left.Eval()
		if err != nil {
			return Value{}, err
		}
		r, err := e.right.Eval()
		if err != nil {
			return Value{}, err
		}
		return binop(e.kind, l, r), nil
	case KindLn, KindExp, KindSin, KindCos, KindTan:
		x, err := e.left.Eval()
		if err != nil {
			return Value{}, err
		}
		return Float(monadic[e.kind](x.Float64())), nil
	default:
		panic("expr: invalid node kind " + e.kind.String())
	}
}

func binop(k Kind, l, r Value) Value {
	switch k {
	case KindAdd:
		return add(l, r)
	case KindSub:
		return sub(l, r)
	case KindMul:
		return mul(l, r)
	case KindFrac:
		return quo(l, r)
	case KindPow:
		return pow(l, r)
	case KindRoot:
		return Float(math.Pow(l.Float64(), 1/r.Float64()))
	case KindLog:
		return Float(math.Log(l.Float64()) / math.Log(r.Float64()))
	default:
		panic("expr: not a binary operation: " + k.String())
	}
}

var monadic = map[Kind]func(float64) float64{
	KindLn:  math.Log,
	KindExp: math.Exp,
	KindSin: math.Sin,
	KindCos: math.Cos,
	KindTan: math.Tan,
}

// UnresolvedError is the error from evaluating an expression containing an
// unresolved symbol.
type UnresolvedError struct {
	// Name is the rendered name of the symbol.
	Name string
}

func (err *UnresolvedError) Error() string {
	return "cannot evaluate expression containing variable " + strconv.Quote(err.Name)
}
