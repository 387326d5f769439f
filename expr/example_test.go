package expr_test

import (
	"fmt"

	"github.com/zephyrtronium/latex"
	"github.com/zephyrtronium/latex/expr"
)

func Example() {
	a := expr.Valued(latex.Plain("a"), 2)
	b := expr.Valued(latex.Plain("b"), 5)
	c := expr.Valued(latex.Plain("c"), -3)
	disc := expr.Sub(expr.Pow(b, 2), expr.Mul(expr.Mul(4, a), c))
	x := expr.Frac(expr.Sub(disc.Sqrt(), b), expr.Mul(2, a))
	v, err := x.Eval()
	if err != nil {
		panic(err)
	}
	fmt.Println(x)
	fmt.Println(v)
	// Output:
	// \frac{\sqrt{{\left(b\right)}^{2} - 4 * a * c} - b}{2 * a}
	// 0.5
}

func ExampleAligned() {
	rhs, err := expr.ParseString("(2 + 5*(log(6.45, 2) + 2)^3) / sqrt(4*3)")
	if err != nil {
		panic(err)
	}
	lhs := expr.Subscript(latex.NewText("R", latex.Italic, latex.Bold), latex.Plain("flow"))
	v, err := rhs.Eval()
	if err != nil {
		panic(err)
	}
	fmt.Print(expr.Aligned(lhs, rhs, v).LaTeX())
	// Output:
	// \begin{equation}
	// \begin{split}
	// \textit{\textbf{R}}_{flow} & = \frac{2 + 5 * {\left(\log_{2}{\left(6.45\right)} + 2\right)}^{3}}{\sqrt{4 * 3}}\\
	//  & = 149.412
	// \end{split}
	// \end{equation}
}

func ExampleContext() {
	e, err := expr.ParseString("sqrt 2")
	if err != nil {
		panic(err)
	}
	ctx := expr.NewContext(expr.Prec(200))
	fmt.Println(ctx.Eval(e).Text('g', 50))
	// Output: 1.4142135623730950488016887242096980785696718753769
}
