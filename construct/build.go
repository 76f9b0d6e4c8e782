package construct

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/confmix/confmix/debug"
	"github.com/confmix/confmix/format"
	"github.com/confmix/confmix/template"
)

var (
	ErrUnknownTag    = errors.New("unknown tag")
	ErrUnknownAnchor = errors.New("unknown anchor")
	ErrMultiDoc      = errors.New("expected a single document")
)

// Parse parses d under cfg and constructs the document tree. Syntax errors
// are wrapped in format.ErrParse; errors raised by tag handlers (including
// resource errors from !include) propagate unchanged.
func Parse(cfg *Config, d []byte) (any, error) {
	f, err := parser.ParseBytes(d, 0)
	if err != nil {
		if debug.Load() {
			debug.Logf("failed to parse YAML:\n%s\n", string(d))
		}
		return nil, fmt.Errorf("%w: %w", format.ErrParse, err)
	}
	if len(f.Docs) == 0 {
		return nil, nil
	}
	if len(f.Docs) > 1 {
		return nil, fmt.Errorf("%w: got %d", ErrMultiDoc, len(f.Docs))
	}
	body := f.Docs[0].Body
	if body == nil {
		return nil, nil
	}
	return newContext(cfg).Build(body)
}

// Build constructs the value for one syntax node. Exported so tag handlers
// can construct nested values with the same configuration and anchor table.
func (cx *Context) Build(node ast.Node) (any, error) {
	switch n := node.(type) {
	case *ast.NullNode:
		return nil, nil
	case *ast.BoolNode:
		return n.Value, nil
	case *ast.IntegerNode:
		return n.Value, nil
	case *ast.FloatNode:
		return n.Value, nil
	case *ast.InfinityNode:
		return n.Value, nil
	case *ast.NanNode:
		return math.NaN(), nil
	case *ast.StringNode:
		return cx.buildString(n.Value)
	case *ast.LiteralNode:
		return cx.buildString(n.Value.Value)
	case *ast.MappingNode:
		return cx.buildMapping(n.Values)
	case *ast.MappingValueNode:
		return cx.buildMapping([]*ast.MappingValueNode{n})
	case *ast.SequenceNode:
		return cx.buildSequence(n.Values)
	case *ast.TagNode:
		return cx.buildTag(n)
	case *ast.AnchorNode:
		v, err := cx.Build(n.Value)
		if err != nil {
			return nil, err
		}
		cx.anchors[n.Name.GetToken().Value] = v
		return v, nil
	case *ast.AliasNode:
		name := n.Value.GetToken().Value
		v, ok := cx.anchors[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAnchor, name)
		}
		return v, nil
	case *ast.MappingKeyNode:
		return cx.Build(n.Value)
	case *ast.CommentNode, *ast.CommentGroupNode, *ast.DirectiveNode:
		return nil, nil
	default:
		return nil, fmt.Errorf("cannot construct node of type %T", node)
	}
}

func (cx *Context) buildString(s string) (any, error) {
	cfg := cx.Config
	if cfg.Engine == nil || !cfg.RenderStrings {
		return s, nil
	}
	rendered, err := cfg.Engine.Render(s)
	if err != nil {
		if errors.Is(err, template.ErrTemplate) {
			return nil, err
		}
		// Unexpected render failure degrades to the raw scalar.
		if debug.Template() {
			debug.Logf("render of %q failed, keeping raw value: %v\n", s, err)
		}
		return s, nil
	}
	return rendered, nil
}

func (cx *Context) buildSequence(values []ast.Node) (any, error) {
	res := make([]any, 0, len(values))
	for _, elt := range values {
		v, err := cx.Build(elt)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

func (cx *Context) buildMapping(values []*ast.MappingValueNode) (any, error) {
	res := make(map[string]any, len(values))
	var merges []any
	for _, kv := range values {
		if _, ok := kv.Key.(*ast.MergeKeyNode); ok {
			mv, err := cx.Build(kv.Value)
			if err != nil {
				return nil, err
			}
			merges = append(merges, mv)
			continue
		}
		key, err := cx.buildKey(kv.Key)
		if err != nil {
			return nil, err
		}
		val, err := cx.Build(kv.Value)
		if err != nil {
			return nil, err
		}
		res[key] = val
	}
	// Merge keys supply defaults; explicit entries win regardless of order.
	for _, mv := range merges {
		if err := applyMerge(res, mv); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func applyMerge(res map[string]any, mv any) error {
	switch x := mv.(type) {
	case map[string]any:
		for k, v := range x {
			if _, present := res[k]; !present {
				res[k] = v
			}
		}
		return nil
	case []any:
		for _, elt := range x {
			if err := applyMerge(res, elt); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("invalid <<: merge value of type %T", mv)
	}
}

func (cx *Context) buildKey(key ast.Node) (string, error) {
	v, err := cx.Build(key)
	if err != nil {
		return "", err
	}
	s, isStr := v.(string)
	if !isStr {
		return keyString(v), nil
	}
	cfg := cx.Config
	if cfg.Engine == nil || !cfg.RenderKeys {
		return s, nil
	}
	rendered, err := cfg.Engine.Render(s)
	if err != nil {
		if errors.Is(err, template.ErrTemplate) {
			return "", err
		}
		if debug.Template() {
			debug.Logf("render of key %q failed, keeping raw value: %v\n", s, err)
		}
		return s, nil
	}
	return rendered, nil
}

func keyString(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func (cx *Context) buildTag(n *ast.TagNode) (any, error) {
	tag := n.Start.Value
	if h, ok := cx.Config.Tags[tag]; ok {
		return h(cx, n.Value)
	}
	switch tag {
	case "!!str":
		s, ok := scalarString(n.Value)
		if !ok {
			return nil, fmt.Errorf("!!str on non-scalar node")
		}
		return cx.buildString(s)
	case "!!int":
		s, ok := scalarString(n.Value)
		if !ok {
			return nil, fmt.Errorf("!!int on non-scalar node")
		}
		i, err := strconv.ParseInt(strings.ReplaceAll(s, "_", ""), 0, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid !!int value %q: %w", s, err)
		}
		return i, nil
	case "!!float":
		s, ok := scalarString(n.Value)
		if !ok {
			return nil, fmt.Errorf("!!float on non-scalar node")
		}
		fv, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid !!float value %q: %w", s, err)
		}
		return fv, nil
	case "!!bool":
		s, ok := scalarString(n.Value)
		if !ok {
			return nil, fmt.Errorf("!!bool on non-scalar node")
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid !!bool value %q: %w", s, err)
		}
		return b, nil
	case "!!null":
		return nil, nil
	case "!!map", "!!seq", "!!set":
		return cx.Build(n.Value)
	case "!!binary":
		return cx.buildBinary(n.Value)
	case "!!timestamp":
		return cx.buildTimestamp(n.Value)
	default:
		switch cx.Config.Mode {
		case ModeSafe:
			// Untrusted input must not reconstruct arbitrary values.
			return nil, nil
		case ModeUnsafe:
			return cx.Build(n.Value)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownTag, tag)
		}
	}
}

func (cx *Context) buildBinary(node ast.Node) (any, error) {
	s, ok := scalarString(node)
	if !ok {
		return nil, fmt.Errorf("!!binary on non-scalar node")
	}
	if cx.Config.Mode == ModeSafe {
		return s, nil
	}
	d, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return nil, fmt.Errorf("invalid !!binary value: %w", err)
	}
	return d, nil
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (cx *Context) buildTimestamp(node ast.Node) (any, error) {
	s, ok := scalarString(node)
	if !ok {
		return nil, fmt.Errorf("!!timestamp on non-scalar node")
	}
	if cx.Config.Mode == ModeSafe {
		return s, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("invalid !!timestamp value %q", s)
}

func scalarString(node ast.Node) (string, bool) {
	switch n := node.(type) {
	case *ast.StringNode:
		return n.Value, true
	case *ast.LiteralNode:
		return n.Value.Value, true
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.NullNode:
		return n.GetToken().Value, true
	default:
		return "", false
	}
}
