// Package inicodec registers the INI codec backed by gopkg.in/ini.v1. INI
// documents map to a two-level section/key tree; serializing anything deeper
// or flatter fails with format.ErrDump.
package inicodec

import (
	"bytes"
	"fmt"
	"sort"

	"gopkg.in/ini.v1"

	"github.com/confmix/confmix/debug"
	"github.com/confmix/confmix/format"
)

func init() {
	if err := format.Register(format.INIFormat, &codec{}); err != nil {
		panic(err)
	}
}

type codec struct{}

func (c *codec) Parse(d []byte) (any, error) {
	f, err := ini.Load(d)
	if err != nil {
		if debug.Load() {
			debug.Logf("failed to parse INI:\n%s\n", string(d))
		}
		return nil, fmt.Errorf("%w: %w", format.ErrParse, err)
	}
	res := map[string]any{}
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection && len(sec.Keys()) == 0 {
			continue
		}
		keys := map[string]any{}
		for k, v := range sec.KeysHash() {
			keys[k] = v
		}
		res[sec.Name()] = keys
	}
	return res, nil
}

func (c *codec) Serialize(v any) ([]byte, error) {
	sections, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: INI requires a section/key structure", format.ErrDump)
	}
	f := ini.Empty()
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		keys, ok := sections[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: INI requires a section/key structure", format.ErrDump)
		}
		sec, err := f.NewSection(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", format.ErrDump, err)
		}
		keyNames := make([]string, 0, len(keys))
		for k := range keys {
			keyNames = append(keyNames, k)
		}
		sort.Strings(keyNames)
		for _, k := range keyNames {
			if _, err := sec.NewKey(k, fmt.Sprint(keys[k])); err != nil {
				return nil, fmt.Errorf("%w: %w", format.ErrDump, err)
			}
		}
	}
	buf := bytes.NewBuffer(nil)
	if _, err := f.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("%w: %w", format.ErrDump, err)
	}
	return buf.Bytes(), nil
}
