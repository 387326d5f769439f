package expr

import (
	"math"
	"math/big"
	"strconv"
)

// Context evaluates expressions in arbitrary precision. Integer literals stay
// exact through addition, subtraction, multiplication, and truncating
// division; everything else is computed as a big.Float with the context's
// precision. A Context is not safe to use concurrently.
type Context struct {
	prec uint
	err  error
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision of calculations in bits.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{prec: 64}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			// do nothing
		case precopt:
			ctx.prec = uint(opt)
		default:
			panic("expr: unknown option type")
		}
	}
	if ctx.prec == 0 {
		panic("expr: zero precision")
	}
	return &ctx
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Err returns the error from the last evaluation, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// Eval evaluates an expression and returns the result. If an error occurs,
// e.g. an unresolved symbol or an argument outside a function's domain, then
// the result is nil and ctx.Err returns the error.
func (ctx *Context) Eval(e *Expr) *big.Float {
	r, err := ctx.eval(e)
	ctx.err = err
	if err != nil {
		return nil
	}
	return ctx.float(r)
}

// bignum is an exact integer or a real. Exactly one field is non-nil.
type bignum struct {
	i *big.Int
	f *big.Float
}

func (ctx *Context) newFloat() *big.Float {
	return new(big.Float).SetPrec(ctx.prec)
}

// float gets a number as a real. Reals are returned as-is.
func (ctx *Context) float(v bignum) *big.Float {
	if v.f != nil {
		return v.f
	}
	return ctx.newFloat().SetInt(v.i)
}

func (ctx *Context) eval(e *Expr) (bignum, error) {
	switch e.kind {
	case KindNum:
		if e.val.IsInt() {
			return bignum{i: big.NewInt(e.val.Int64())}, nil
		}
		f := e.val.Float64()
		if math.IsNaN(f) {
			return bignum{}, &DomainError{X: f, Func: "literal"}
		}
		return bignum{f: ctx.newFloat().SetFloat64(f)}, nil
	case KindVar, KindSubscript:
		return bignum{}, &UnresolvedError{Name: e.LaTeX()}
	case KindValued:
		if e.konst != "" {
			return bignum{f: constants[e.konst](ctx.newFloat())}, nil
		}
		return ctx.eval(e.left)
	case KindParen:
		return ctx.eval(e.left)
	case KindAdd, KindSub, KindMul, KindFrac, KindPow, KindRoot, KindLog:
		l, err := ctx.eval(e.left)
		if err != nil {
			return bignum{}, err
		}
		r, err := ctx.eval(e.right)
		if err != nil {
			return bignum{}, err
		}
		return ctx.binop(e.kind, l, r)
	case KindLn, KindExp, KindSin, KindCos, KindTan:
		x, err := ctx.eval(e.left)
		if err != nil {
			return bignum{}, err
		}
		f, err := ctx.call(e.kind, ctx.float(x))
		if err != nil {
			return bignum{}, err
		}
		return bignum{f: f}, nil
	default:
		panic("expr: invalid node kind " + e.kind.String())
	}
}

func (ctx *Context) binop(k Kind, l, r bignum) (bignum, error) {
	if l.i != nil && r.i != nil {
		switch k {
		case KindAdd:
			return bignum{i: new(big.Int).Add(l.i, r.i)}, nil
		case KindSub:
			return bignum{i: new(big.Int).Sub(l.i, r.i)}, nil
		case KindMul:
			return bignum{i: new(big.Int).Mul(l.i, r.i)}, nil
		case KindFrac:
			// Quo truncates toward zero and panics on a zero divisor, the
			// same as native integer division.
			return bignum{i: new(big.Int).Quo(l.i, r.i)}, nil
		}
	}
	x, y := ctx.float(l), ctx.float(r)
	z := ctx.newFloat()
	var err error
	switch k {
	case KindAdd:
		err = try("+", y, func() { z.Add(x, y) })
	case KindSub:
		err = try("-", y, func() { z.Sub(x, y) })
	case KindMul:
		err = try("*", y, func() { z.Mul(x, y) })
	case KindFrac:
		err = try("/", y, func() { z.Quo(x, y) })
	case KindPow:
		err = ctx.pow(z, x, y)
	case KindRoot:
		if y.Cmp(big.NewFloat(2)) == 0 {
			err = try("sqrt", x, func() { z.Sqrt(x) })
			break
		}
		inv := ctx.newFloat()
		if err = try("root", y, func() { inv.Quo(big.NewFloat(1), y) }); err != nil {
			break
		}
		err = ctx.pow(z, x, inv)
	case KindLog:
		var lx, lb *big.Float
		if lx, err = ctx.call(KindLn, x); err != nil {
			break
		}
		if lb, err = ctx.call(KindLn, y); err != nil {
			break
		}
		err = try("log", y, func() { z.Quo(lx, lb) })
	default:
		panic("expr: not a binary operation: " + k.String())
	}
	if err != nil {
		return bignum{}, err
	}
	return bignum{f: z}, nil
}

// DomainError is an error returned when an operation is applied to an
// argument whose result a big.Float cannot represent.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is a name identifying the operation.
	Func string
}

func (err *DomainError) Error() string {
	s := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		s += " of " + err.Func
	}
	return s
}
