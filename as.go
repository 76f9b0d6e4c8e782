package confmix

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrShape reports a parsed tree whose structure does not match the
// requested type.
var ErrShape = errors.New("shape mismatch")

// As checks v's structure against T and returns it cast as T. The check is a
// strict re-marshal round trip: unknown fields and incompatible kinds fail
// with ErrShape.
func As[T any](v any) (T, error) {
	var out T
	d, err := yaml.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrShape, err)
	}
	if err := yaml.UnmarshalWithOptions(d, &out, yaml.Strict()); err != nil {
		return out, fmt.Errorf("%w: %w", ErrShape, err)
	}
	return out, nil
}
