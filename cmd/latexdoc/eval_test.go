package main

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"

	"github.com/zephyrtronium/latex/expr"
)

func TestEvalLine(t *testing.T) {
	cases := []struct {
		name string
		src  string
		prec uint
		want string
	}{
		{"int", "1 + 2", 0, "1 + 2 = 3"},
		{"frac", "7 * 8 / 5", 0, `\frac{7 * 8}{5} = 11`},
		{"real", "1.5 * 2", 0, "1.5 * 2 = 3"},
		{"big", "1.5 * 2", 64, "1.5 * 2 = 3"},
		{"big int", "2 * 3 + 1", 64, "2 * 3 + 1 = 7"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := expr.ParseString(c.src)
			if err != nil {
				t.Fatalf("couldn't parse %q: %v", c.src, err)
			}
			var ctx *expr.Context
			if c.prec != 0 {
				ctx = expr.NewContext(expr.Prec(c.prec))
			}
			if got := evalLine(ctx, e); got != c.want {
				t.Errorf("wrong line: want %q, got %q", c.want, got)
			}
		})
	}
}

func TestEvalLineErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		prec uint
		want string
	}{
		{"unresolved", "x + 1", 0, "x + 1: "},
		{"big unresolved", "x + 1", 64, "x + 1: "},
		{"int div zero", "1 / 0", 0, `\frac{1}{0}: `},
		{"big int div zero", "1 / 0", 64, `\frac{1}{0}: `},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := expr.ParseString(c.src)
			if err != nil {
				t.Fatalf("couldn't parse %q: %v", c.src, err)
			}
			var ctx *expr.Context
			if c.prec != 0 {
				ctx = expr.NewContext(expr.Prec(c.prec))
			}
			got := evalLine(ctx, e)
			if !strings.HasPrefix(got, c.want) || len(got) == len(c.want) {
				t.Errorf("wrong line: want %q followed by an error, got %q", c.want, got)
			}
		})
	}
}

func TestParseAll(t *testing.T) {
	cases := []struct {
		name  string
		ins   []string
		lines bool
		want  []string
	}{
		{"args", []string{"1 + 2", "3"}, false, []string{"1 + 2", "3"}},
		{"lines", []string{"1 + 2\n\n3\n"}, true, []string{"1 + 2", "3"}},
		{"trailing space", []string{"1 + 2\n  \n"}, true, []string{"1 + 2"}},
		{"empty arg", []string{""}, false, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var ins []io.RuneScanner
			for _, s := range c.ins {
				ins = append(ins, strings.NewReader(s))
			}
			var opts []expr.ParseOption
			if c.lines {
				opts = append(opts, expr.StopOn('\n'))
			}
			es, err := parseAll(ins, opts...)
			if err != nil {
				t.Fatalf("couldn't parse: %v", err)
			}
			var got []string
			for _, e := range es {
				got = append(got, e.LaTeX())
			}
			if strings.Join(got, "|") != strings.Join(c.want, "|") {
				t.Errorf("wrong expressions: want %q, got %q", c.want, got)
			}
		})
	}
}

func TestParseAllErrors(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		lines bool
	}{
		{"operand", "1 +", false},
		{"sub", "3 -", false},
		{"empty group", "2 * ()", false},
		{"second line", "1 + 2\n4 *\n", true},
		{"stray close", "  )", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var opts []expr.ParseOption
			if c.lines {
				opts = append(opts, expr.StopOn('\n'))
			}
			es, err := parseAll([]io.RuneScanner{strings.NewReader(c.src)}, opts...)
			var ie expr.InputError
			if !errors.As(err, &ie) {
				t.Errorf("wrong error for %q: want InputError, got %v with %d expressions", c.src, err, len(es))
			}
		})
	}
}

func TestGivenOpts(t *testing.T) {
	opts, err := givenOpts([][2]string{{"x", "3"}, {"y", "2x"}})
	if err != nil {
		t.Fatalf("couldn't define: %v", err)
	}
	es, err := parseAll([]io.RuneScanner{strings.NewReader("x + y")}, opts...)
	if err != nil {
		t.Fatalf("couldn't parse: %v", err)
	}
	if got, want := evalLine(nil, es[0]), "x + y = 9"; got != want {
		t.Errorf("wrong line: want %q, got %q", want, got)
	}
	if got, want := evalLine(expr.NewContext(expr.Prec(64)), es[0]), "x + y = 9"; got != want {
		t.Errorf("wrong big line: want %q, got %q", want, got)
	}
	if _, err := givenOpts([][2]string{{"x", "1 +"}}); err == nil {
		t.Error("no error for bad definition")
	}
}

func TestGivenOpt(t *testing.T) {
	var cfg EvalConfig
	for _, a := range []string{"x = 3", "rate=x/2"} {
		if _, err := cfg.givenOpt(nil, a); err != nil {
			t.Fatalf("couldn't add %q: %v", a, err)
		}
	}
	want := [][2]string{{"x", "3"}, {"rate", "x/2"}}
	if diff := cmp.Diff(want, cfg.Given); diff != "" {
		t.Errorf("wrong definitions (-want +got):\n%s", diff)
	}
	for _, a := range []string{"x", "=3", " = 3"} {
		if _, err := cfg.givenOpt(nil, a); !errors.Is(err, cli.ErrUsage) {
			t.Errorf("wrong error for %q: %v", a, err)
		}
	}
}

func TestCommandOpts(t *testing.T) {
	mainCfg := &MainConfig{}
	cases := []struct {
		name string
		cmd  *cli.Command
		want []string
	}{
		{"build", BuildCommand(mainCfg), []string{"o", "d", "color"}},
		{"eval", EvalCommand(mainCfg), []string{"p", "n", "given"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			have := make(map[string]bool)
			for _, opt := range c.cmd.Opts {
				have[opt.Name] = true
			}
			for _, name := range c.want {
				if !have[name] {
					t.Errorf("missing option -%s", name)
				}
			}
		})
	}
	if MainCommand() == nil {
		t.Error("no main command")
	}
}
