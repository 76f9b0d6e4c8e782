package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/confmix/confmix"
	"github.com/confmix/confmix/format"
)

func conv(cfg *ConvConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Conv.Parse(cc, args)
	if err != nil {
		cfg.Conv.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		in, err := io.ReadAll(cc.In)
		if err != nil {
			return fmt.Errorf("error reading: %w", err)
		}
		f := cfg.inFormat()
		if f.IsAuto() {
			f = format.YAMLFormat
		}
		data, err := confmix.Load(string(in), f)
		if err != nil {
			return err
		}
		return writeDoc(cfg.MainConfig, cc.Out, data)
	}
	for i, file := range args {
		data, err := confmix.LoadFile(file, cfg.inFormat())
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, data); err != nil {
			return err
		}
		if i < len(args)-1 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
