package expr

import (
	"strings"

	"github.com/zephyrtronium/latex"
)

// Equation is a display equation lhs = rhs. The left side is only rendered,
// so it may be any markup, e.g. the unresolved symbol being defined.
type Equation struct {
	lhs   latex.Renderer
	rhs   *Expr
	label string
}

// Eqn creates an unlabeled equation.
func Eqn(lhs latex.Renderer, rhs *Expr) *Equation {
	if rhs == nil {
		panic("expr: nil equation right side")
	}
	return &Equation{lhs: markup(lhs, "equation left side"), rhs: rhs}
}

// WithLabel returns a copy of eq with a label for cross-references. The
// label renders as \label{eq:name}.
func (eq *Equation) WithLabel(name string) *Equation {
	r := *eq
	r.label = name
	return &r
}

// Label returns the equation's label, or the empty string if it has none.
func (eq *Equation) Label() string {
	return eq.label
}

// Eval reduces the right side of the equation. It does not solve for
// anything on the left.
func (eq *Equation) Eval() (Value, error) {
	return eq.rhs.Eval()
}

// LaTeX renders the equation environment.
func (eq *Equation) LaTeX() string {
	var b strings.Builder
	b.WriteString(`\begin{equation}`)
	writelabel(&b, eq.label)
	b.WriteString(eq.lhs.LaTeX())
	b.WriteString(" = ")
	b.WriteString(eq.rhs.LaTeX())
	b.WriteString("\n\\end{equation}\n")
	return b.String()
}

func writelabel(b *strings.Builder, label string) {
	if label != "" {
		b.WriteString(`\label{eq:` + label + "}")
	}
	b.WriteByte('\n')
}

// AlignedEquation is a derivation: a left side followed by one or more
// right sides, each on its own line aligned at the equals sign.
type AlignedEquation struct {
	lhs   latex.Renderer
	steps []latex.Renderer
	label string
}

// Aligned creates a derivation with at least one step. Steps are typically
// expressions, with a computed Value as the final step.
func Aligned(lhs, first latex.Renderer, rest ...latex.Renderer) *AlignedEquation {
	steps := make([]latex.Renderer, 0, 1+len(rest))
	steps = append(steps, markup(first, "derivation step"))
	for _, s := range rest {
		steps = append(steps, markup(s, "derivation step"))
	}
	return &AlignedEquation{lhs: markup(lhs, "derivation left side"), steps: steps}
}

// WithLabel returns a copy of eq with a label for cross-references.
func (eq *AlignedEquation) WithLabel(name string) *AlignedEquation {
	r := *eq
	r.label = name
	return &r
}

// Steps returns the number of right sides in the derivation.
func (eq *AlignedEquation) Steps() int {
	return len(eq.steps)
}

// LaTeX renders the derivation as a split environment inside an equation.
func (eq *AlignedEquation) LaTeX() string {
	var b strings.Builder
	b.WriteString(`\begin{equation}`)
	writelabel(&b, eq.label)
	b.WriteString("\\begin{split}\n")
	b.WriteString(eq.lhs.LaTeX())
	for i, s := range eq.steps {
		b.WriteString(" & = ")
		b.WriteString(s.LaTeX())
		if i < len(eq.steps)-1 {
			b.WriteString(`\\`)
		}
		b.WriteByte('\n')
	}
	b.WriteString("\\end{split}\n\\end{equation}\n")
	return b.String()
}
