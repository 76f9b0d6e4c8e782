package yamlconf

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/confmix/confmix/debug"
	"github.com/confmix/confmix/merge"
)

var (
	// ErrInheritCycle reports a cyclic INHERIT chain, with the chain of
	// files in the error text.
	ErrInheritCycle = errors.New("inheritance cycle")
	ErrBadInherit   = errors.New("invalid INHERIT value")
)

// resolveInherit consumes the INHERIT directive of data, loads and resolves
// each referenced parent, and folds them underneath the child. Parents fold
// in reverse list order as the growing base, so earlier entries take
// precedence over later ones; the child document is the final overlay.
func resolveInherit(data any, o *loadOpts) (any, error) {
	m, ok := data.(map[string]any)
	if !ok {
		return data, nil
	}
	raw, present := m[InheritKey]
	if !present {
		return data, nil
	}
	child := make(map[string]any, len(m))
	for k, v := range m {
		if k != InheritKey {
			child[k] = v
		}
	}
	paths, err := inheritPaths(raw)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return child, nil
	}

	var base any
	haveBase := false
	for i := len(paths) - 1; i >= 0; i-- {
		parent := paths[i]
		if !filepath.IsAbs(parent) {
			parent = filepath.Join(o.sourceDir, parent)
		}
		if debug.Load() {
			debug.Logf("loading parent configuration %q relative to %q\n", paths[i], o.sourceDir)
		}
		po := o.clone()
		po.resolveInherit = true
		parentData, err := loadFile(parent, po)
		if err != nil {
			return nil, err
		}
		if !haveBase {
			base, haveBase = parentData, true
			continue
		}
		base = merge.Deep(parentData, base)
	}
	if debug.Merge() {
		debug.Logf("merging child over %d parent(s)\n", len(paths))
	}
	return merge.Deep(child, base), nil
}

func inheritPaths(raw any) ([]string, error) {
	switch x := raw.(type) {
	case nil:
		return nil, nil
	case string:
		if x == "" {
			return nil, nil
		}
		return []string{x}, nil
	case []any:
		res := make([]string, 0, len(x))
		for _, elt := range x {
			s, ok := elt.(string)
			if !ok || s == "" {
				return nil, fmt.Errorf("%w: %v", ErrBadInherit, elt)
			}
			res = append(res, s)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: value of type %T", ErrBadInherit, raw)
	}
}
