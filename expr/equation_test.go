package expr_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zephyrtronium/latex"
	"github.com/zephyrtronium/latex/expr"
)

func flowrate() (latex.Renderer, *expr.Expr) {
	lhs := expr.Subscript(latex.NewText("R", latex.Italic, latex.Bold), latex.Plain("flow"))
	rhs := expr.Frac(
		expr.Add(2, expr.Mul(5, expr.Pow(expr.Add(expr.Log(6.45, 2), 2), 3))),
		expr.Sqrt(expr.Mul(4, 3)),
	)
	return lhs, rhs
}

func TestEquation(t *testing.T) {
	lhs, rhs := flowrate()
	cases := []struct {
		name string
		eq   *expr.Equation
		want string
	}{
		{
			"flow",
			expr.Eqn(lhs, rhs),
			"\\begin{equation}\n" +
				`\textit{\textbf{R}}_{flow} = \frac{2 + 5 * {\left(\log_{2}{\left(6.45\right)} + 2\right)}^{3}}{\sqrt{4 * 3}}` +
				"\n\\end{equation}\n",
		},
		{
			"labeled",
			expr.Eqn(latex.Plain("y"), expr.Mul(2, expr.Var("x"))).WithLabel("line"),
			"\\begin{equation}\\label{eq:line}\ny = 2 * x\n\\end{equation}\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if diff := cmp.Diff(c.want, c.eq.LaTeX()); diff != "" {
				t.Errorf("wrong rendering (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEquationWithLabelCopies(t *testing.T) {
	eq := expr.Eqn(latex.Plain("y"), expr.Lit(1))
	l := eq.WithLabel("one")
	if eq.Label() != "" {
		t.Errorf("original equation got label %q", eq.Label())
	}
	if l.Label() != "one" {
		t.Errorf("wrong label: want %q, got %q", "one", l.Label())
	}
}

func TestEquationEval(t *testing.T) {
	eq := expr.Eqn(expr.Var("y"), expr.Add(1, 2))
	v, err := eq.Eval()
	if err != nil {
		t.Fatalf("equation failed to evaluate: %v", err)
	}
	if v != expr.Int(3) {
		t.Errorf("wrong value: want 3, got %v", v)
	}
}

func TestEqnNil(t *testing.T) {
	cases := []struct {
		name string
		f    func()
	}{
		{"rhs", func() { expr.Eqn(latex.Plain("y"), nil) }},
		{"lhs", func() { expr.Eqn(nil, expr.Lit(1)) }},
		{"lhsexpr", func() { expr.Eqn((*expr.Expr)(nil), expr.Lit(1)) }},
		{"alignedlhs", func() { expr.Aligned(nil, expr.Lit(1)) }},
		{"alignedfirst", func() { expr.Aligned(latex.Plain("y"), nil) }},
		{"alignedrest", func() { expr.Aligned(latex.Plain("y"), expr.Lit(1), nil) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("no panic")
				}
			}()
			c.f()
		})
	}
}

func TestAligned(t *testing.T) {
	lhs, rhs := flowrate()
	v, err := rhs.Eval()
	if err != nil {
		t.Fatalf("flow rate failed to evaluate: %v", err)
	}
	cases := []struct {
		name string
		eq   *expr.AlignedEquation
		want string
	}{
		{
			"flow",
			expr.Aligned(lhs, rhs, v),
			"\\begin{equation}\n\\begin{split}\n" +
				`\textit{\textbf{R}}_{flow} & = \frac{2 + 5 * {\left(\log_{2}{\left(6.45\right)} + 2\right)}^{3}}{\sqrt{4 * 3}}\\` + "\n" +
				" & = 149.412\n" +
				"\\end{split}\n\\end{equation}\n",
		},
		{
			"single",
			expr.Aligned(latex.Plain("x"), expr.Lit(1)),
			"\\begin{equation}\n\\begin{split}\nx & = 1\n\\end{split}\n\\end{equation}\n",
		},
		{
			"labeled",
			expr.Aligned(latex.Plain("x"), expr.Add(1, 1), expr.Int(2)).WithLabel("two"),
			"\\begin{equation}\\label{eq:two}\n\\begin{split}\nx & = 1 + 1\\\\\n & = 2\n\\end{split}\n\\end{equation}\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if diff := cmp.Diff(c.want, c.eq.LaTeX()); diff != "" {
				t.Errorf("wrong rendering (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAlignedSteps(t *testing.T) {
	eq := expr.Aligned(latex.Plain("x"), expr.Lit(1), expr.Lit(2), expr.Int(3))
	if eq.Steps() != 3 {
		t.Errorf("wrong number of steps: want 3, got %d", eq.Steps())
	}
}
