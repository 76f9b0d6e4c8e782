package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/confmix/confmix"
	"github.com/confmix/confmix/yamlconf"
)

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		cfg.Load.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	opts, err := cfg.loadOpts()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		in, err := io.ReadAll(cc.In)
		if err != nil {
			return fmt.Errorf("error reading: %w", err)
		}
		data, err := yamlconf.Load(string(in), opts...)
		if err != nil {
			return err
		}
		return writeDoc(cfg.MainConfig, cc.Out, data)
	}
	for i, file := range args {
		data, err := yamlconf.LoadFile(file, opts...)
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

// envFunc records one -e key=val assignment into the template environment.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: -e expects key=val, got %q", cli.ErrUsage, a)
	}
	env[key] = val
	return nil
}

func writeDoc(cfg *MainConfig, w io.Writer, data any) error {
	text, err := confmix.Dump(data, cfg.outFormat())
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, text); err != nil {
		return err
	}
	if !strings.HasSuffix(text, "\n") {
		_, err = io.WriteString(w, "\n")
	}
	return err
}
