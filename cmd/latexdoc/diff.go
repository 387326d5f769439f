package main

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// lineDiff writes a line diff from one rendering to another and reports
// whether they differ. Nothing is written when they are the same.
func lineDiff(w io.Writer, from, to string, colored bool) (bool, error) {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	differs := false
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			differs = true
			break
		}
	}
	if !differs {
		return false, nil
	}

	ins := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	if colored {
		ins.EnableColor()
		del.EnableColor()
	} else {
		ins.DisableColor()
		del.DisableColor()
	}
	var sb strings.Builder
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			switch d.Type {
			case diffpatch.DiffInsert:
				sb.WriteString(ins.Sprint("+ " + line))
			case diffpatch.DiffDelete:
				sb.WriteString(del.Sprint("- " + line))
			default:
				sb.WriteString("  " + line)
			}
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, sb.String())
	return true, err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
