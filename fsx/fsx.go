// Package fsx abstracts the filesystems that !include references resolve
// against. Filesystems are keyed by URI scheme; plain paths go to the local
// filesystem.
package fsx

import (
	"errors"
	"fmt"
	"net/url"
	"sync"
)

// FileSystem reads one referenced resource in full.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
}

var (
	mu sync.RWMutex
	d  = map[string]FileSystem{}
)

var ErrSchemeExists = errors.New("scheme exists")

func init() {
	Register("", &Local{})
	Register("file", &Local{})
	Register("http", &HTTP{})
	Register("https", &HTTP{})
}

func Register(scheme string, fs FileSystem) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[scheme]
	if present {
		return fmt.Errorf("%q: %w", scheme, ErrSchemeExists)
	}
	d[scheme] = fs
	return nil
}

func lookup(scheme string) FileSystem {
	mu.RLock()
	defer mu.RUnlock()
	return d[scheme]
}

// Resolve picks the filesystem for ref by URI scheme and returns it together
// with the name to read. HTTP references keep the full URL as the name; file
// URLs are stripped down to their path.
func Resolve(ref string) (FileSystem, string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return lookup(""), ref, nil
	}
	switch u.Scheme {
	case "":
		return lookup(""), ref, nil
	case "file":
		return lookup("file"), u.Path, nil
	default:
		fs := lookup(u.Scheme)
		if fs == nil {
			return nil, "", fmt.Errorf("unsupported url scheme %q", u.Scheme)
		}
		return fs, ref, nil
	}
}
