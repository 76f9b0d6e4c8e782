// Package construct turns goccy/go-yaml syntax trees into plain Go values
// under an explicit parser configuration: a safety mode, a tag-to-handler
// map, and optional template-string rendering. Building a Config wires
// handlers only; nothing is parsed until Parse is called.
package construct

import (
	"github.com/goccy/go-yaml/ast"

	"github.com/confmix/confmix/template"
)

// Handler constructs the value for one tagged node. The node passed in is
// the tag's payload, not the tag node itself.
type Handler func(cx *Context, node ast.Node) (any, error)

// Config is a fully explicit parser configuration. There is no global
// registry; each load call assembles its own Config, which makes concurrent
// use trivially safe.
type Config struct {
	Mode Mode

	// Tags maps a tag name (e.g. "!include") to its handler. Handlers bound
	// here take precedence over standard tag handling.
	Tags map[string]Handler

	// Engine, when set together with RenderStrings or RenderKeys, renders
	// scalar strings (and optionally mapping keys) during construction.
	Engine        template.Engine
	RenderStrings bool
	RenderKeys    bool
}

func NewConfig(mode Mode) *Config {
	return &Config{
		Mode: mode,
		Tags: map[string]Handler{},
	}
}

// Bind attaches a handler for tag. The last binding for a given tag name
// wins.
func (c *Config) Bind(tag string, h Handler) *Config {
	c.Tags[tag] = h
	return c
}

// Context carries per-parse state (the configuration and the anchor table)
// through one construction walk. Handlers use it to construct nested values.
type Context struct {
	Config  *Config
	anchors map[string]any
}

func newContext(cfg *Config) *Context {
	return &Context{
		Config:  cfg,
		anchors: map[string]any{},
	}
}
