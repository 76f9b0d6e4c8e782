package construct

import "github.com/goccy/go-yaml/ast"

// Discard is a no-op handler: the tagged node constructs to null. Safe mode
// binds it for tags that would otherwise resolve external resources or
// reconstruct arbitrary values.
func Discard() Handler {
	return func(cx *Context, node ast.Node) (any, error) {
		return nil, nil
	}
}

// BindDiscards attaches discarding handlers for the extension tags that must
// never act on untrusted input. Bindings made after this call still win, so a
// caller can re-enable an individual tag on top of a safe base.
func BindDiscards(cfg *Config) *Config {
	for _, tag := range []string{"!include", "!relative"} {
		cfg.Bind(tag, Discard())
	}
	return cfg
}
