package expr

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

var funcnames = map[Kind]string{
	KindPow:  "^",
	KindRoot: "root",
	KindLog:  "log",
	KindLn:   "ln",
	KindExp:  "exp",
	KindSin:  "sin",
	KindCos:  "cos",
	KindTan:  "tan",
}

// constants computes named constants to the precision of out.
var constants = map[string]func(out *big.Float) *big.Float{
	"pi": bigfloat.Pi,
	"e": func(out *big.Float) *big.Float {
		one := new(big.Float).SetPrec(out.Prec()).SetInt64(1)
		return bigfloat.Exp(out, one)
	},
}

// try runs f, converting a big.ErrNaN panic into a DomainError for x.
func try(op string, x *big.Float, f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(big.ErrNaN); !ok {
			panic(r)
		}
		v, _ := x.Float64()
		err = &DomainError{X: v, Func: op}
	}()
	f()
	return nil
}

// call computes a function of one real.
func (ctx *Context) call(k Kind, x *big.Float) (*big.Float, error) {
	z := ctx.newFloat()
	switch k {
	case KindLn:
		switch {
		case x.Sign() < 0:
			v, _ := x.Float64()
			return nil, &DomainError{X: v, Func: funcnames[k]}
		case x.Sign() == 0:
			return z.SetInf(true), nil
		case x.IsInf():
			return z.SetInf(false), nil
		}
		return z, try(funcnames[k], x, func() { bigfloat.Log(z, x) })
	case KindExp:
		if x.IsInf() {
			if x.Signbit() {
				return z.SetInt64(0), nil
			}
			return z.SetInf(false), nil
		}
		return z, try(funcnames[k], x, func() { bigfloat.Exp(z, x) })
	case KindSin, KindCos, KindTan:
		// There is no arbitrary-precision trigonometry available, so these
		// go through float64.
		v, _ := x.Float64()
		r := monadic[k](v)
		if math.IsNaN(r) {
			return nil, &DomainError{X: v, Func: funcnames[k]}
		}
		return z.SetFloat64(r), nil
	default:
		panic("expr: not a function: " + k.String())
	}
}

// pow sets z to x^y.
func (ctx *Context) pow(z, x, y *big.Float) error {
	if y.IsInt() {
		if n, acc := y.Int64(); acc == big.Exact {
			return ctx.powi(z, x, n)
		}
	}
	switch {
	case x.Sign() < 0:
		v, _ := x.Float64()
		return &DomainError{X: v, Func: funcnames[KindPow]}
	case x.Sign() == 0:
		switch y.Sign() {
		case 1:
			z.SetInt64(0)
		case -1:
			z.SetInf(false)
		default:
			z.SetInt64(1)
		}
		return nil
	}
	return try(funcnames[KindPow], x, func() { bigfloat.Pow(z, x, y) })
}

// powi sets z to x^n by repeated squaring.
func (ctx *Context) powi(z, x *big.Float, n int64) error {
	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	r := ctx.newFloat().SetInt64(1)
	b := ctx.newFloat().Set(x)
	return try(funcnames[KindPow], x, func() {
		for u > 0 {
			if u&1 == 1 {
				r.Mul(r, b)
			}
			u >>= 1
			if u > 0 {
				b.Mul(b, b)
			}
		}
		if neg {
			r.Quo(big.NewFloat(1), r)
		}
		z.Set(r)
	})
}
