package harness

import (
	"fmt"

	"github.com/expr-lang/expr"
)

func init() {
	RegisterGroup("expr", exprGroup)
}

// exprGroup exposes expression evaluation over an optional environment map.
func exprGroup(u *Utility) {
	// eval(expression string, env map) compiles and runs the expression with
	// env as its variables.
	u.Set("eval", func(args []any) (any, error) {
		if err := arity("eval", args, 1, 2); err != nil {
			return nil, err
		}
		src, err := stringArg("eval", "expression", args[0])
		if err != nil {
			return nil, err
		}
		env := map[string]any{}
		if len(args) == 2 {
			m, ok := args[1].(map[string]any)
			if !ok {
				return nil, fmt.Errorf("eval: environment must be a map, got %T", args[1])
			}
			env = m
		}

		program, err := expr.Compile(src, expr.Env(env))
		if err != nil {
			return nil, fmt.Errorf("compiling expression %q: %w", src, err)
		}
		out, err := expr.Run(program, env)
		if err != nil {
			return nil, fmt.Errorf("evaluating expression %q: %w", src, err)
		}
		return out, nil
	})

	// cond(expression string, env map) is eval folded to a boolean;
	// expressions that fail to compile or run are simply false.
	u.Set("cond", func(args []any) (any, error) {
		if err := arity("cond", args, 1, 2); err != nil {
			return nil, err
		}
		src, err := stringArg("cond", "expression", args[0])
		if err != nil {
			return nil, err
		}
		env := map[string]any{}
		if len(args) == 2 {
			m, ok := args[1].(map[string]any)
			if !ok {
				return nil, fmt.Errorf("cond: environment must be a map, got %T", args[1])
			}
			env = m
		}

		program, err := expr.Compile(src, expr.Env(env))
		if err != nil {
			return false, nil
		}
		out, err := expr.Run(program, env)
		if err != nil {
			return false, nil
		}
		return isTruthy(out), nil
	})

	u.Set("truthy", func(args []any) (any, error) {
		if err := arity("truthy", args, 1, 1); err != nil {
			return nil, err
		}
		return isTruthy(args[0]), nil
	})
}

// isTruthy folds a dynamically-typed value to a boolean: false, nil, empty
// strings and zero numbers are false, everything else is true.
func isTruthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	}
	return true
}
