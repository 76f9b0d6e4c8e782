// Package yamlconf is the YAML loading pipeline: it assembles a tag-extended
// parser configuration, parses the input, and resolves INHERIT directives by
// deep-merging parent documents underneath the child.
package yamlconf

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/confmix/confmix/construct"
	"github.com/confmix/confmix/debug"
	"github.com/confmix/confmix/fsx"
)

// InheritKey is the reserved top-level mapping key naming one or more parent
// documents. It is consumed during resolution and never appears in output.
const InheritKey = "INHERIT"

// Load parses a YAML string under the supplied options. INHERIT resolution
// only takes place when ResolveInherit is set and a SourceDir is supplied;
// a raw string has no location to resolve relative parent references
// against.
func Load(text string, opts ...Option) (any, error) {
	return load([]byte(text), newLoadOpts(opts))
}

// LoadFile normalizes path (following symlinks), reads it, and parses it
// like Load with the file's own directory as the inheritance source
// directory. Read errors propagate unchanged so callers can tell a missing
// file from malformed content.
func LoadFile(path string, opts ...Option) (any, error) {
	return loadFile(path, newLoadOpts(opts))
}

func load(d []byte, o *loadOpts) (any, error) {
	data, err := construct.Parse(buildConfig(o), d)
	if err != nil {
		return nil, err
	}
	if o.resolveInherit && o.sourceDir != "" {
		return resolveInherit(data, o)
	}
	return data, nil
}

func loadFile(path string, o *loadOpts) (any, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if resolved, rerr := filepath.EvalSymlinks(abs); rerr == nil {
		abs = resolved
	}
	if slices.Contains(o.active, abs) {
		chain := append(slices.Clone(o.active), abs)
		return nil, fmt.Errorf("%w: %s", ErrInheritCycle, strings.Join(chain, " -> "))
	}
	d, err := os.ReadFile(abs)
	if err != nil {
		if debug.Load() {
			debug.Logf("failed to read %q: %v\n", path, err)
		}
		return nil, err
	}
	oc := o.clone()
	oc.sourceDir = filepath.Dir(abs)
	oc.active = append(slices.Clone(o.active), abs)
	return load(d, oc)
}

// buildConfig wires the enabled extensions onto a fresh parser
// configuration. It parses nothing itself.
func buildConfig(o *loadOpts) *construct.Config {
	cfg := construct.NewConfig(o.mode)
	if o.mode == construct.ModeSafe {
		construct.BindDiscards(cfg)
	}
	if o.enableInclude {
		fs := o.includeFS
		if fs == nil && o.includeBase != "" {
			fs = fsx.NewLocal(o.includeBase)
		}
		cfg.Bind("!include", construct.IncludeHandler(fs))
	}
	if o.enableEnv {
		cfg.Bind("!ENV", construct.EnvHandler())
	}
	if o.resolveStrings || o.resolveKeys {
		cfg.Engine = o.engine
		cfg.RenderStrings = o.resolveStrings
		cfg.RenderKeys = o.resolveKeys
	}
	return cfg
}
