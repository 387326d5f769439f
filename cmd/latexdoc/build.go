package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		cfg.Build.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: build takes at most one file, got %v", cli.ErrUsage, args)
	}
	if cfg.Diff && cfg.Out == "" {
		return fmt.Errorf("%w: -d requires -o", cli.ErrUsage)
	}
	var in io.Reader = cc.In
	name := "stdin"
	if len(args) == 1 && args[0] != "-" {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("error opening %s: %w", name, err)
		}
		defer f.Close()
		in = f
	}
	d, err := loadDocument(in)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	src := d.LaTeX()

	if cfg.Diff {
		old, err := os.ReadFile(cfg.Out)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", cfg.Out, err)
		}
		differs, err := lineDiff(cc.Out, string(old), src, cfg.Color || isTerminal(cc.Out))
		if err != nil {
			return err
		}
		if differs {
			return cli.ExitCodeErr(1)
		}
		return nil
	}
	if cfg.Out == "" || cfg.Out == "-" {
		_, err := io.WriteString(cc.Out, src)
		return err
	}
	if err := os.WriteFile(cfg.Out, []byte(src), 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", cfg.Out, err)
	}
	return nil
}
