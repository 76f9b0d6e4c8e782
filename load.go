package confmix

import (
	"os"

	"github.com/confmix/confmix/debug"
	"github.com/confmix/confmix/format"

	_ "github.com/confmix/confmix/codec/inicodec"
	_ "github.com/confmix/confmix/codec/jsoncodec"
	_ "github.com/confmix/confmix/codec/tomlcodec"
	_ "github.com/confmix/confmix/codec/yamlcodec"
)

// Load parses text in the given format. Syntax failures come back wrapped in
// format.ErrParse; an unregistered format fails with format.ErrBadFormat
// before anything is parsed.
func Load(text string, f format.Format) (any, error) {
	codec, err := format.Lookup(f)
	if err != nil {
		return nil, err
	}
	return codec.Parse([]byte(text))
}

// LoadFile reads path and parses it. AutoFormat infers the format from the
// file extension. Read errors propagate unchanged so callers can tell a
// missing file from malformed content.
func LoadFile(path string, f format.Format) (any, error) {
	if f.IsAuto() {
		pf, err := format.FromPath(path)
		if err != nil {
			return nil, err
		}
		f = pf
	}
	codec, err := format.Lookup(f)
	if err != nil {
		return nil, err
	}
	d, err := os.ReadFile(path)
	if err != nil {
		if debug.Load() {
			debug.Logf("failed to read %q: %v\n", path, err)
		}
		return nil, err
	}
	return codec.Parse(d)
}
