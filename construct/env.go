package construct

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml/ast"
)

// EnvHandler returns the handler for the !ENV tag.
//
//	!ENV VAR                  -> value of VAR, or null if unset
//	!ENV [VAR1, VAR2, dflt]   -> first set variable, else dflt
//
// Environment values are interpreted as YAML scalars, so "true" becomes a
// bool and "8080" an int.
func EnvHandler() Handler {
	return func(cx *Context, node ast.Node) (any, error) {
		switch n := node.(type) {
		case *ast.SequenceNode:
			if len(n.Values) == 0 {
				return nil, fmt.Errorf("!ENV expects a variable name")
			}
			names := n.Values
			var dflt ast.Node
			if len(names) > 1 {
				dflt = names[len(names)-1]
				names = names[:len(names)-1]
			}
			for _, nameNode := range names {
				name, ok := scalarString(nameNode)
				if !ok {
					return nil, fmt.Errorf("!ENV variable names must be scalars")
				}
				if v, present := os.LookupEnv(strings.TrimSpace(name)); present {
					return envScalar(v), nil
				}
			}
			if dflt == nil {
				return nil, nil
			}
			return cx.Build(dflt)
		default:
			name, ok := scalarString(node)
			if !ok {
				return nil, fmt.Errorf("!ENV expects a variable name")
			}
			v, present := os.LookupEnv(strings.TrimSpace(name))
			if !present {
				return nil, nil
			}
			return envScalar(v), nil
		}
	}
}

func envScalar(v string) any {
	switch strings.ToLower(v) {
	case "null", "~", "":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}
