package main

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/confmix/confmix"
	"github.com/confmix/confmix/format"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: get requires a path and at least one file", cli.ErrUsage)
	}
	p, err := yaml.PathString(args[0])
	if err != nil {
		return fmt.Errorf("%w: invalid path %q: %w", cli.ErrUsage, args[0], err)
	}
	for _, file := range args[1:] {
		data, err := confmix.LoadFile(file, cfg.inFormat())
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		// Normalize through YAML so path lookup works for every input
		// format.
		text, err := confmix.Dump(data, format.YAMLFormat)
		if err != nil {
			return err
		}
		var out any
		if err := p.Read(bytes.NewReader([]byte(text)), &out); err != nil {
			return fmt.Errorf("%s: path %s: %w", file, args[0], err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, out); err != nil {
			return err
		}
	}
	return nil
}
