package expr

import (
	"math"
	"slices"
	"strings"

	"github.com/zephyrtronium/latex"
)

// Expr is a node in an expression tree. Every Expr can be rendered to LaTeX,
// and every Expr can be evaluated, although evaluating one which contains an
// unresolved symbol fails. An Expr is immutable once created; the zero value
// is not a valid expression.
type Expr struct {
	kind Kind

	// val is the literal value of a Num.
	val Value
	// name is the rendered name of a Var or Valued, or the upper part of a
	// Subscript.
	name latex.Renderer
	// lower is the lower part of a Subscript.
	lower latex.Renderer
	// literal tells a Valued to render its value instead of its name.
	literal bool
	// konst names a mathematical constant so that a precision context can
	// compute it exactly rather than use the stored approximation.
	konst string

	// left is the first operand, or the only operand of unary nodes and
	// the backing value of a Valued. right is the second operand: the
	// denominator of Frac, the exponent of Pow, the index of Root, the base
	// of Log.
	left  *Expr
	right *Expr
}

// Kind identifies the operation an Expr performs.
type Kind int8

const (
	KindNone Kind = iota

	KindNum       // literal value
	KindVar       // unresolved symbol
	KindValued    // named value
	KindSubscript // decorated unresolved symbol

	KindAdd  // left + right
	KindSub  // left - right
	KindMul  // left * right
	KindFrac // left / right
	KindPow  // left ^ right
	KindRoot // left ^ (1/right)
	KindLog  // ln(left) / ln(right)
	KindLn   // ln(left)
	KindExp  // e ^ left
	KindSin  // sin(left)
	KindCos  // cos(left)
	KindTan  // tan(left)

	KindParen // explicit grouping of left
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind
//go:generate go mod tidy

// Kind returns the operation e performs.
func (e *Expr) Kind() Kind {
	return e.kind
}

// Number is the set of primitive values that lift to a literal node.
type Number interface {
	int | int64 | float64 | Value
}

// Operand is anything an operation accepts as a child. Primitives become
// literal nodes.
type Operand interface {
	Number | *Expr
}

// lift converts an operand to a node.
func lift[T Operand](x T) *Expr {
	switch x := any(x).(type) {
	case int:
		return &Expr{kind: KindNum, val: Int(int64(x))}
	case int64:
		return &Expr{kind: KindNum, val: Int(x)}
	case float64:
		return &Expr{kind: KindNum, val: Float(x)}
	case Value:
		return &Expr{kind: KindNum, val: x}
	case *Expr:
		if x == nil || x.kind == KindNone {
			panic("expr: nil or invalid operand")
		}
		return x
	default:
		panic("expr: unreachable operand type")
	}
}

// Lit creates a literal number.
func Lit[T Number](v T) *Expr {
	return lift(v)
}

// Neg creates a literal number with the opposite sign of v.
func Neg[T Number](v T) *Expr {
	n := lift(v)
	return &Expr{kind: KindNum, val: sub(Int(0), n.val)}
}

// Var creates an unresolved symbol. Evaluating any expression containing it
// fails with an *UnresolvedError.
func Var(name string) *Expr {
	return Symbol(latex.Plain(name))
}

// Symbol is like Var, but the name is arbitrary markup such as styled text.
func Symbol(name latex.Renderer) *Expr {
	return &Expr{kind: KindVar, name: markup(name, "symbol name")}
}

// Subscript creates an unresolved symbol rendered as upper_{lower}.
func Subscript(upper, lower latex.Renderer) *Expr {
	return &Expr{kind: KindSubscript, name: markup(upper, "subscript upper part"), lower: markup(lower, "subscript lower part")}
}

// Valued creates a named value. It renders as its name and evaluates to v.
func Valued[T Operand](name latex.Renderer, v T) *Expr {
	return &Expr{kind: KindValued, name: markup(name, "value name"), left: lift(v)}
}

// ValuedLiteral is like Valued, but the node renders as its value instead of
// its name.
func ValuedLiteral[T Operand](name latex.Renderer, v T) *Expr {
	return &Expr{kind: KindValued, name: markup(name, "value name"), left: lift(v), literal: true}
}

// markup panics if r is nil, including a nil *Expr.
func markup(r latex.Renderer, what string) latex.Renderer {
	if r == nil {
		panic("expr: nil " + what)
	}
	if x, ok := r.(*Expr); ok && x == nil {
		panic("expr: nil " + what)
	}
	return r
}

// Pi is the circle constant, rendered as \pi.
func Pi() *Expr {
	n := Valued(latex.Plain(`\pi`), math.Pi)
	n.konst = "pi"
	return n
}

// E is Euler's number, rendered as e.
func E() *Expr {
	n := Valued(latex.Plain("e"), math.E)
	n.konst = "e"
	return n
}

func binary[L, R Operand](k Kind, l L, r R) *Expr {
	return &Expr{kind: k, left: lift(l), right: lift(r)}
}

func unary[T Operand](k Kind, x T) *Expr {
	return &Expr{kind: k, left: lift(x)}
}

// Add creates l + r.
func Add[L, R Operand](l L, r R) *Expr { return binary(KindAdd, l, r) }

// Sub creates l - r.
func Sub[L, R Operand](l L, r R) *Expr { return binary(KindSub, l, r) }

// Mul creates l * r.
func Mul[L, R Operand](l L, r R) *Expr { return binary(KindMul, l, r) }

// Frac creates the fraction num/den. Integer operands divide with truncation.
func Frac[N, D Operand](num N, den D) *Expr { return binary(KindFrac, num, den) }

// Pow creates base raised to exp.
func Pow[B, X Operand](base B, exp X) *Expr { return binary(KindPow, base, exp) }

// Root creates the index-th root of v.
func Root[V, N Operand](v V, index N) *Expr { return binary(KindRoot, v, index) }

// Sqrt creates the square root of v.
func Sqrt[V Operand](v V) *Expr { return binary(KindRoot, v, 2) }

// Log creates the logarithm of v in the given base.
func Log[V, B Operand](v V, base B) *Expr { return binary(KindLog, v, base) }

// Ln creates the natural logarithm of v.
func Ln[V Operand](v V) *Expr { return unary(KindLn, v) }

// Exp creates e raised to x.
func Exp[X Operand](x X) *Expr { return unary(KindExp, x) }

// Sin creates the sine of x radians.
func Sin[X Operand](x X) *Expr { return unary(KindSin, x) }

// Cos creates the cosine of x radians.
func Cos[X Operand](x X) *Expr { return unary(KindCos, x) }

// Tan creates the tangent of x radians.
func Tan[X Operand](x X) *Expr { return unary(KindTan, x) }

// Paren wraps x in parentheses. It evaluates to the value of x.
func Paren[X Operand](x X) *Expr { return unary(KindParen, x) }

// Sqrt is shorthand for Sqrt(e).
func (e *Expr) Sqrt() *Expr { return Sqrt(e) }

// Ln is shorthand for Ln(e).
func (e *Expr) Ln() *Expr { return Ln(e) }

// Pow is shorthand for Pow(e, exp).
func (e *Expr) Pow(exp *Expr) *Expr { return Pow(e, exp) }

// Log is shorthand for Log(e, base).
func (e *Expr) Log(base *Expr) *Expr { return Log(e, base) }

// Paren is shorthand for Paren(e).
func (e *Expr) Paren() *Expr { return Paren(e) }

// Vars returns the sorted rendered names of the unresolved symbols in e.
func (e *Expr) Vars() []string {
	seen := make(map[string]bool)
	e.vars(seen)
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

func (e *Expr) vars(seen map[string]bool) {
	if e == nil {
		return
	}
	switch e.kind {
	case KindVar, KindSubscript:
		seen[e.LaTeX()] = true
	default:
		e.left.vars(seen)
		e.right.vars(seen)
	}
}

// LaTeX renders e. Rendering never evaluates e except to decide whether the
// index of a root is 2.
func (e *Expr) LaTeX() string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

// String is the same as LaTeX.
func (e *Expr) String() string {
	return e.LaTeX()
}

const (
	oparen = `\left(`
	cparen = `\right)`
)

func (e *Expr) fmt(b *strings.Builder) {
	switch e.kind {
	case KindNum:
		b.WriteString(e.val.String())
	case KindVar:
		b.WriteString(e.name.LaTeX())
	case KindValued:
		if e.literal {
			e.left.fmt(b)
		} else {
			b.WriteString(e.name.LaTeX())
		}
	case KindSubscript:
		b.WriteString(e.name.LaTeX())
		b.WriteString("_{")
		b.WriteString(e.lower.LaTeX())
		b.WriteByte('}')
	case KindAdd:
		e.left.fmt(b)
		b.WriteString(" + ")
		e.right.fmt(b)
	case KindSub:
		e.left.fmt(b)
		b.WriteString(" - ")
		e.right.fmt(b)
	case KindMul:
		e.left.fmt(b)
		b.WriteString(" * ")
		e.right.fmt(b)
	case KindFrac:
		b.WriteString(`\frac{`)
		e.left.fmt(b)
		b.WriteString("}{")
		e.right.fmt(b)
		b.WriteByte('}')
	case KindPow:
		b.WriteString("{" + oparen)
		e.left.fmt(b)
		b.WriteString(cparen + "}^{")
		e.right.fmt(b)
		b.WriteByte('}')
	case KindRoot:
		b.WriteString(`\sqrt`)
		if !e.right.isTwo() {
			b.WriteByte('[')
			e.right.fmt(b)
			b.WriteByte(']')
		}
		b.WriteByte('{')
		e.left.fmt(b)
		b.WriteByte('}')
	case KindLog:
		b.WriteString(`\log_{`)
		e.right.fmt(b)
		b.WriteString("}{" + oparen)
		e.left.fmt(b)
		b.WriteString(cparen + "}")
	case KindLn:
		b.WriteString(`\ln{`)
		e.left.fmt(b)
		b.WriteByte('}')
	case KindExp:
		b.WriteString(`\mathit{e}^{` + oparen)
		e.left.fmt(b)
		b.WriteString(cparen + "}")
	case KindSin, KindCos, KindTan:
		b.WriteString(trigmacro[e.kind])
		b.WriteString("{" + oparen)
		e.left.fmt(b)
		b.WriteString(cparen + "}")
	case KindParen:
		b.WriteString(oparen)
		e.left.fmt(b)
		b.WriteString(cparen)
	default:
		panic("expr: invalid node kind " + e.kind.String() + " after writing " + b.String())
	}
}

var trigmacro = map[Kind]string{
	KindSin: `\sin`,
	KindCos: `\cos`,
	KindTan: `\tan`,
}

// isTwo reports whether e evaluates to exactly 2. Expressions that cannot be
// evaluated are not 2, including those that divide an integer by zero.
func (e *Expr) isTwo() (two bool) {
	defer func() {
		if recover() != nil {
			two = false
		}
	}()
	v, err := e.Eval()
	return err == nil && v.Float64() == 2
}
