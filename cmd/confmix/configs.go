package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/confmix/confmix/construct"
	"github.com/confmix/confmix/format"
	"github.com/confmix/confmix/template"
	"github.com/confmix/confmix/yamlconf"
)

type MainConfig struct {
	Color bool   `cli:"name=color desc='colorize output'"`
	Mode  string `cli:"name=mode desc='yaml safety mode: unsafe, full or safe'"`

	InFormat, OutFormat *format.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) inFormat() format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return format.AutoFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.YAMLFormat
}

func (cfg *MainConfig) mode() (construct.Mode, error) {
	if cfg.Mode == "" {
		return construct.ModeUnsafe, nil
	}
	m, err := construct.ParseMode(cfg.Mode)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return m, nil
}

func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type LoadConfig struct {
	*MainConfig
	Inherit     bool   `cli:"name=inherit desc='resolve INHERIT directives'"`
	NoInclude   bool   `cli:"name=noinclude desc='disable the !include tag'"`
	NoEnv       bool   `cli:"name=noenv desc='disable the !ENV tag'"`
	Resolve     bool   `cli:"name=resolve desc='render $[ ] template strings'"`
	ResolveKeys bool   `cli:"name=resolvekeys desc='also render mapping keys'"`
	Base        string `cli:"name=base desc='base path for !include references'"`

	Env map[string]any

	Load *cli.Command
}

func (cfg *LoadConfig) loadOpts() ([]yamlconf.Option, error) {
	m, err := cfg.mode()
	if err != nil {
		return nil, err
	}
	opts := []yamlconf.Option{
		yamlconf.LoadMode(m),
		yamlconf.EnableInclude(!cfg.NoInclude),
		yamlconf.EnableEnv(!cfg.NoEnv),
		yamlconf.ResolveInherit(cfg.Inherit),
	}
	if cfg.Base != "" {
		opts = append(opts, yamlconf.IncludeBase(cfg.Base))
	}
	if cfg.Resolve || cfg.ResolveKeys {
		opts = append(opts,
			yamlconf.ResolveStrings(cfg.Resolve || cfg.ResolveKeys),
			yamlconf.ResolveKeys(cfg.ResolveKeys),
			yamlconf.Engine(template.NewExprEngine(cfg.Env)))
	}
	return opts, nil
}

type ConvConfig struct {
	*MainConfig

	Conv *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}
