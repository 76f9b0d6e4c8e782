// Package yamlcodec registers the YAML codec, delegating parsing to the
// yamlconf pipeline.
package yamlcodec

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/confmix/confmix/format"
	"github.com/confmix/confmix/yamlconf"
)

func init() {
	if err := format.Register(format.YAMLFormat, &codec{}); err != nil {
		panic(err)
	}
}

type codec struct{}

func (c *codec) Parse(d []byte) (any, error) {
	return yamlconf.Load(string(d))
}

func (c *codec) Serialize(v any) ([]byte, error) {
	d, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", format.ErrDump, err)
	}
	return d, nil
}
