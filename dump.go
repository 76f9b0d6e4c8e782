package confmix

import (
	"fmt"
	"os"

	"github.com/confmix/confmix/format"
)

// Dump serializes v in the given format. Formatter failures come back
// wrapped in format.ErrDump.
func Dump(v any, f format.Format) (string, error) {
	codec, err := format.Lookup(f)
	if err != nil {
		return "", err
	}
	d, err := codec.Serialize(v)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// DumpFile serializes v and writes it to path. AutoFormat infers the format
// from the file extension.
func DumpFile(v any, path string, f format.Format) error {
	if f.IsAuto() {
		pf, err := format.FromPath(path)
		if err != nil {
			return err
		}
		f = pf
	}
	text, err := Dump(v, f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("%w: writing %q: %w", format.ErrDump, path, err)
	}
	return nil
}
