package template

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ExprEngine renders $[ expression ] segments using expr-lang, evaluated
// against a fixed environment. Text outside expression segments passes
// through verbatim.
//
// Within expressions, backslash escaping is supported:
//   - \] → literal ] (does not close the expression)
//   - \\ → literal \
//   - \x → x (for any character x)
//
// If an expression is not closed with an unescaped ], the text is treated as
// a literal string rather than an expression.
type ExprEngine struct {
	env map[string]any
}

func NewExprEngine(env map[string]any) *ExprEngine {
	if env == nil {
		env = map[string]any{}
	}
	return &ExprEngine{env: env}
}

func (e *ExprEngine) Render(v string) (string, error) {
	if len(v) < 3 || !strings.Contains(v, "$[") {
		return v, nil
	}
	exprStart := -1 // position of the $ that starts the expression
	i := 0
	n := len(v)
	var outBuf []byte // accumulates the final output
	var keyBuf []byte // accumulates the current expression content (unescaped)

	flush := func() (string, error) {
		key := strings.TrimSpace(string(keyBuf))
		x, err := e.eval(key)
		if err != nil {
			return "", err
		}
		return x, nil
	}

	for i < n {
		c := v[i]
		i++
		switch c {
		case '$':
			if exprStart == -1 && i < n && v[i] == '[' {
				exprStart = i - 1
				keyBuf = keyBuf[:0]
				i++
				continue
			}
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		case '\\':
			if exprStart != -1 && i < n {
				keyBuf = append(keyBuf, v[i])
				i++
				continue
			}
			outBuf = append(outBuf, c)
		case ']':
			if exprStart != -1 {
				x, err := flush()
				if err != nil {
					return "", err
				}
				outBuf = append(outBuf, x...)
				exprStart = -1
				continue
			}
			outBuf = append(outBuf, c)
		default:
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		}
	}

	// Unterminated expression, emit it literally.
	if exprStart != -1 {
		outBuf = append(outBuf, v[exprStart:]...)
	}
	return string(outBuf), nil
}

func (e *ExprEngine) eval(key string) (string, error) {
	program, err := expr.Compile(key, expr.Env(e.env), expr.AllowUndefinedVariables())
	if err != nil {
		return "", fmt.Errorf("%w: compiling %q: %w", ErrTemplate, key, err)
	}
	x, err := vm.Run(program, e.env)
	if err != nil {
		return "", fmt.Errorf("evaluating %q: %w", key, err)
	}
	return anyToString(x)
}

func anyToString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case nil:
		return "", nil
	default:
		return fmt.Sprintf("%v", x), nil
	}
}
