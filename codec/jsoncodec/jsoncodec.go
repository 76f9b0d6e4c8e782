// Package jsoncodec registers the JSON codec. goccy/go-json is the selected
// implementation, resolved at compile time rather than probed per call.
package jsoncodec

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/confmix/confmix/debug"
	"github.com/confmix/confmix/format"
)

func init() {
	if err := format.Register(format.JSONFormat, &codec{}); err != nil {
		panic(err)
	}
}

type codec struct{}

func (c *codec) Parse(d []byte) (any, error) {
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		if debug.Load() {
			debug.Logf("failed to parse JSON:\n%s\n", string(d))
		}
		return nil, fmt.Errorf("%w: %w", format.ErrParse, err)
	}
	return v, nil
}

func (c *codec) Serialize(v any) ([]byte, error) {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", format.ErrDump, err)
	}
	return d, nil
}
