package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Main *cli.Command
}

type BuildConfig struct {
	*MainConfig

	Out   string `cli:"name=o desc='output file (default stdout)'"`
	Diff  bool   `cli:"name=d desc='print a line diff against the -o file instead of writing it'"`
	Color bool   `cli:"name=color desc='color the diff even when not writing to a terminal'"`

	Build *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Prec  int  `cli:"name=p desc='precision of calculations in bits (default float64)'"`
	Lines bool `cli:"name=n desc='parse separate input lines as separate expressions'"`
	Given [][2]string

	Eval *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	return cli.NewCommandAt(&cfg.Main, "latexdoc").
		WithSynopsis("latexdoc command [opts]").
		WithDescription("latexdoc renders LaTeX documents and expressions.").
		WithRun(func(cc *cli.Context, args []string) error {
			return latexdocMain(cfg, cc, args)
		}).
		WithSubs(
			BuildCommand(cfg),
			EvalCommand(cfg))
}

func BuildCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BuildConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		log.Fatalf("build options: %v", err)
	}
	return cli.NewCommandAt(&cfg.Build, "build").
		WithAliases("b").
		WithSynopsis("build [-o file] [-d] [-color] [file.yaml]").
		WithDescription("render a YAML document description as LaTeX").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return build(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		log.Fatalf("eval options: %v", err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "given",
		Description: "name=value variable definition (any number of times)",
		Type:        cli.NamedFuncOpt(cfg.givenOpt, "(name=value)"),
	})
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e").
		WithSynopsis("eval [-p bits] [-n] [-given name=value]... [expr...]").
		WithDescription("print the LaTeX rendering and value of expressions, read from stdin if none are given").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return eval(cfg, cc, args)
		})
}

func latexdocMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}
