// Package tomlcodec registers the TOML codec backed by pelletier/go-toml.
package tomlcodec

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/confmix/confmix/debug"
	"github.com/confmix/confmix/format"
)

func init() {
	if err := format.Register(format.TOMLFormat, &codec{}); err != nil {
		panic(err)
	}
}

type codec struct{}

func (c *codec) Parse(d []byte) (any, error) {
	var m map[string]any
	if err := toml.Unmarshal(d, &m); err != nil {
		if debug.Load() {
			debug.Logf("failed to parse TOML:\n%s\n", string(d))
		}
		return nil, fmt.Errorf("%w: %w", format.ErrParse, err)
	}
	return m, nil
}

func (c *codec) Serialize(v any) ([]byte, error) {
	d, err := toml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", format.ErrDump, err)
	}
	return d, nil
}
