package construct

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"

	"github.com/confmix/confmix/fsx"
)

// IncludeHandler returns the handler for the !include tag. The referenced
// resource is read through fs, parsed with the same configuration, and its
// content substituted inline at the tag's position. When fs is nil, each
// reference picks its filesystem by URI scheme (local filesystem for plain
// paths).
//
// Read failures propagate unchanged so callers can tell a missing resource
// from malformed content.
func IncludeHandler(fs fsx.FileSystem) Handler {
	return func(cx *Context, node ast.Node) (any, error) {
		ref, ok := scalarString(node)
		if !ok || ref == "" {
			return nil, fmt.Errorf("!include expects a path or URI")
		}
		fsys, name := fs, ref
		if fsys == nil {
			var err error
			fsys, name, err = fsx.Resolve(ref)
			if err != nil {
				return nil, err
			}
		}
		d, err := fsys.ReadFile(name)
		if err != nil {
			return nil, err
		}
		return Parse(cx.Config, d)
	}
}
