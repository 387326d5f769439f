package main

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strings"
	"unicode"

	"github.com/scott-cotton/cli"

	"github.com/zephyrtronium/latex/expr"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Prec < 0 {
		return fmt.Errorf("%w: precision (%d) must be positive", cli.ErrUsage, cfg.Prec)
	}
	var ins []io.RuneScanner
	if len(args) == 0 {
		ins = append(ins, bufio.NewReader(cc.In))
	}
	for _, arg := range args {
		ins = append(ins, strings.NewReader(arg))
	}
	opts, err := givenOpts(cfg.Given)
	if err != nil {
		return err
	}
	if cfg.Lines {
		opts = append(opts, expr.StopOn('\n'))
	}
	es, err := parseAll(ins, opts...)
	if err != nil {
		return err
	}
	var ctx *expr.Context
	if cfg.Prec > 0 {
		ctx = expr.NewContext(expr.Prec(uint(cfg.Prec)))
	}
	for _, e := range es {
		if _, err := io.WriteString(cc.Out, evalLine(ctx, e)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// parseAll parses every expression from each input in turn. Whitespace
// between expressions is skipped; any parse error is returned.
func parseAll(ins []io.RuneScanner, opts ...expr.ParseOption) ([]*expr.Expr, error) {
	var r []*expr.Expr
	for _, in := range ins {
		for {
			// First check whether we're done with the input.
			c, _, err := in.ReadRune()
			if err != nil {
				if err == io.EOF {
					break
				}
				return nil, err
			}
			if unicode.IsSpace(c) {
				continue
			}
			in.UnreadRune()
			e, err := expr.Parse(in, opts...)
			if err != nil {
				return nil, err
			}
			r = append(r, e)
		}
	}
	return r, nil
}

// givenOpts parses name=value definitions in order. Each value may use the
// names defined before it.
func givenOpts(defs [][2]string) ([]expr.ParseOption, error) {
	var opts []expr.ParseOption
	for _, d := range defs {
		x, err := expr.ParseString(d[1], opts...)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", d[0], err)
		}
		opts = append(opts, expr.Given(d[0], x))
	}
	return opts, nil
}

func (cfg *EvalConfig) givenOpt(_ *cli.Context, a string) (any, error) {
	name, val, ok := strings.Cut(a, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return nil, fmt.Errorf("%w: variable definitions must be \"name=value\", not %q", cli.ErrUsage, a)
	}
	cfg.Given = append(cfg.Given, [2]string{name, strings.TrimSpace(val)})
	return 0, nil
}

// evalLine formats an expression's rendering and its value. If ctx is nil,
// the expression is evaluated with float64 arithmetic.
func evalLine(ctx *expr.Context, e *expr.Expr) string {
	s := e.LaTeX()
	if ctx == nil {
		v, err := evalValue(e)
		if err != nil {
			return s + ": " + err.Error()
		}
		return s + " = " + v.String()
	}
	r, err := evalBig(ctx, e)
	if err != nil {
		return s + ": " + err.Error()
	}
	return s + " = " + r.Text('g', -1)
}

// evalValue evaluates e, converting integer division by zero into an error.
func evalValue(e *expr.Expr) (v expr.Value, err error) {
	defer catch(&err)
	return e.Eval()
}

func evalBig(ctx *expr.Context, e *expr.Expr) (r *big.Float, err error) {
	defer catch(&err)
	r = ctx.Eval(e)
	if r == nil {
		return nil, ctx.Err()
	}
	return r, nil
}

func catch(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%v", r)
	}
}
