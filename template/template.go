// Package template defines the string-rendering hook used when loading YAML
// with template resolution enabled, together with an expr-lang backed default
// engine.
package template

import "errors"

// ErrTemplate marks genuine template syntax errors. Render failures wrapped
// in ErrTemplate abort the whole load; any other render error degrades to the
// raw, unrendered string.
var ErrTemplate = errors.New("template error")

// Engine renders one template string. Engines must be safe for concurrent
// read-only use if the same instance is shared across loads.
type Engine interface {
	Render(s string) (string, error)
}
