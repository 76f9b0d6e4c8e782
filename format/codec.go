package format

import (
	"errors"
	"fmt"
	"sync"
)

// Codec parses and serializes one configuration format. Implementations live
// in the codec/* packages and register themselves here; adding a format means
// registering one new Codec, not extending a branch.
type Codec interface {
	Parse(d []byte) (any, error)
	Serialize(v any) ([]byte, error)
}

var (
	mu sync.RWMutex
	d  = map[Format]Codec{}
)

var ErrCodecExists = errors.New("codec exists")

func Register(f Format, c Codec) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[f]
	if present {
		return fmt.Errorf("%s: %w", f, ErrCodecExists)
	}
	d[f] = c
	return nil
}

// Lookup returns the codec registered for f, or an error if the format has no
// codec wired in.
func Lookup(f Format) (Codec, error) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := d[f]
	if !ok {
		return nil, fmt.Errorf("%w: no codec for %s", ErrBadFormat, f)
	}
	return c, nil
}

func Codecs() []Format {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]Format, 0, len(d))
	for f := range d {
		res = append(res, f)
	}
	return res
}
