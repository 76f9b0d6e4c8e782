package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/confmix/confmix"
	"github.com/confmix/confmix/format"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := normalized(cfg.MainConfig, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := normalized(cfg.MainConfig, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if a == b {
		return nil
	}
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	printDiffs(cc.Out, diffs, cfg.colorize(cc.Out))
	return cli.ExitCodeErr(1)
}

// normalized loads a file in any supported format and serializes it to YAML
// so documents diff structurally rather than textually.
func normalized(cfg *MainConfig, file string) (string, error) {
	data, err := confmix.LoadFile(file, cfg.inFormat())
	if err != nil {
		return "", err
	}
	return confmix.Dump(data, format.YAMLFormat)
}

func printDiffs(w io.Writer, diffs []diffmatchpatch.Diff, colorize bool) {
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	for _, d := range diffs {
		prefix := " "
		c := (*color.Color)(nil)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix, c = "-", del
		case diffmatchpatch.DiffInsert:
			prefix, c = "+", ins
		}
		for _, line := range splitLines(d.Text) {
			out := prefix + line
			if colorize && c != nil {
				c.Fprintln(w, out)
				continue
			}
			fmt.Fprintln(w, out)
		}
	}
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
