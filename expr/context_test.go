package expr_test

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/zephyrtronium/latex"
	"github.com/zephyrtronium/latex/expr"
)

func TestContextExact(t *testing.T) {
	two100 := new(big.Float).SetInt(new(big.Int).Lsh(big.NewInt(1), 100))
	sqrt2 := new(big.Float).SetPrec(128).Sqrt(new(big.Float).SetPrec(128).SetInt64(2))
	cases := []struct {
		name string
		e    *expr.Expr
		want *big.Float
	}{
		{"int", expr.Lit(7), big.NewFloat(7)},
		{"add", expr.Add(1, 2), big.NewFloat(3)},
		{"trunc", expr.Frac(7, 2), big.NewFloat(3)},
		{"truncneg", expr.Frac(-7, 2), big.NewFloat(-3)},
		{"third", expr.Frac(1, 3), big.NewFloat(0)},
		{"half", expr.Frac(1.0, 2), big.NewFloat(0.5)},
		{"pow", expr.Pow(2, 100), two100},
		{"negpow", expr.Pow(-2, 3), big.NewFloat(-8)},
		{"recip", expr.Pow(2, -2), big.NewFloat(0.25)},
		{"zeropow", expr.Pow(0, 0.5), big.NewFloat(0)},
		{"sqrt", expr.Sqrt(2), sqrt2},
		{"paren", expr.Paren(expr.Mul(6, 7)), big.NewFloat(42)},
		{"valued", expr.Mul(expr.Valued(latex.Plain("a"), 3), 2), big.NewFloat(6)},
		{"lnzero", expr.Ln(0), new(big.Float).SetInf(true)},
		{"expneginf", expr.Exp(math.Inf(-1)), big.NewFloat(0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := expr.NewContext(expr.Prec(128))
			got := ctx.Eval(c.e)
			if err := ctx.Err(); err != nil {
				t.Fatalf("%v failed to evaluate: %v", c.e, err)
			}
			if got.Cmp(c.want) != 0 {
				t.Errorf("%v has wrong value: want %v, got %v", c.e, c.want, got)
			}
		})
	}
}

func TestContextApprox(t *testing.T) {
	cases := []struct {
		name string
		e    *expr.Expr
		want float64
	}{
		{"log", expr.Log(16, 2), 4},
		{"root", expr.Root(16, 4), 2},
		{"pi", expr.Pi(), math.Pi},
		{"e", expr.E(), math.E},
		{"lne", expr.Ln(expr.E()), 1},
		{"exp", expr.Exp(1), math.E},
		{"third", expr.Frac(1.0, 3), 1.0 / 3},
		{"cos", expr.Cos(expr.Pi()), -1},
		{"realpow", expr.Pow(2, 0.5), math.Sqrt2},
		{"order", expr.Add(expr.Pow(expr.Mul(expr.Frac(1.0, 2.0), 2), 3), expr.Mul(5, 4)), 21},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := expr.NewContext(expr.Prec(100))
			got := ctx.Eval(c.e)
			if err := ctx.Err(); err != nil {
				t.Fatalf("%v failed to evaluate: %v", c.e, err)
			}
			f, _ := got.Float64()
			if math.Abs(f-c.want) > 1e-12 {
				t.Errorf("%v has wrong value: want %g, got %g", c.e, c.want, f)
			}
		})
	}
}

func TestContextPrec(t *testing.T) {
	ctx := expr.NewContext(expr.Prec(200))
	got := ctx.Eval(expr.Frac(1.0, 3))
	if err := ctx.Err(); err != nil {
		t.Fatalf("failed to evaluate: %v", err)
	}
	if got.Prec() != 200 {
		t.Errorf("wrong result precision: want 200, got %d", got.Prec())
	}
	want := new(big.Float).SetPrec(200).Quo(big.NewFloat(1), big.NewFloat(3))
	if got.Cmp(want) != 0 {
		t.Errorf("wrong value: want %v, got %v", want, got)
	}
}

func TestContextErrors(t *testing.T) {
	cases := []struct {
		name string
		e    *expr.Expr
		err  any
	}{
		{"var", expr.Add(1, expr.Var("x")), new(*expr.UnresolvedError)},
		{"lnneg", expr.Ln(-1), new(*expr.DomainError)},
		{"lognegbase", expr.Log(8, -2), new(*expr.DomainError)},
		{"negbase", expr.Pow(-8, 0.5), new(*expr.DomainError)},
		{"infsub", expr.Sub(math.Inf(1), math.Inf(1)), new(*expr.DomainError)},
		{"nan", expr.Lit(math.NaN()), new(*expr.DomainError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := expr.NewContext()
			if got := ctx.Eval(c.e); got != nil {
				t.Errorf("%v evaluated to %v despite error", c.e, got)
			}
			err := ctx.Err()
			if err == nil {
				t.Fatalf("%v evaluated with no error", c.e)
			}
			if !errors.As(err, c.err) {
				t.Errorf("wrong error type: want %T, got %T (%v)", c.err, err, err)
			}
		})
	}
}

func TestContextErrReset(t *testing.T) {
	ctx := expr.NewContext()
	ctx.Eval(expr.Var("x"))
	if ctx.Err() == nil {
		t.Fatal("no error for unresolved symbol")
	}
	ctx.Eval(expr.Lit(1))
	if err := ctx.Err(); err != nil {
		t.Errorf("error persisted after successful evaluation: %v", err)
	}
}

func TestNewContext(t *testing.T) {
	if p := expr.NewContext().Prec(); p != 64 {
		t.Errorf("wrong default precision: want 64, got %d", p)
	}
	if p := expr.NewContext(expr.Prec(256)).Prec(); p != 256 {
		t.Errorf("wrong precision: want 256, got %d", p)
	}
	if p := expr.NewContext(nil).Prec(); p != 64 {
		t.Errorf("nil option changed precision to %d", p)
	}
	t.Run("zero", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("no panic")
			}
		}()
		expr.NewContext(expr.Prec(0))
	})
}
