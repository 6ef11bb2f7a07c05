package harness

import (
	"github.com/soochol/shape"
)

func init() {
	RegisterGroup("text", textGroup)
}

// textGroup exposes the shape string utilities as callable entries.
func textGroup(u *Utility) {
	u.Set("stringify", func(args []any) (any, error) {
		if err := arity("stringify", args, 1, 2); err != nil {
			return nil, err
		}
		if len(args) == 2 {
			maxlen, err := intArg("stringify", "maximum length", args[1])
			if err != nil {
				return nil, err
			}
			return shape.Stringify(args[0], maxlen), nil
		}
		return shape.Stringify(args[0]), nil
	})

	u.Set("pathify", func(args []any) (any, error) {
		if err := arity("pathify", args, 1, 2); err != nil {
			return nil, err
		}
		if len(args) == 2 {
			from, err := intArg("pathify", "from index", args[1])
			if err != nil {
				return nil, err
			}
			return shape.Pathify(args[0], from), nil
		}
		return shape.Pathify(args[0]), nil
	})

	u.Set("escre", func(args []any) (any, error) {
		if err := arity("escre", args, 1, 1); err != nil {
			return nil, err
		}
		s, err := stringArg("escre", "argument", args[0])
		if err != nil {
			return nil, err
		}
		return shape.EscapeRegexp(s), nil
	})

	u.Set("escurl", func(args []any) (any, error) {
		if err := arity("escurl", args, 1, 1); err != nil {
			return nil, err
		}
		s, err := stringArg("escurl", "argument", args[0])
		if err != nil {
			return nil, err
		}
		return shape.EscapeURL(s), nil
	})

	u.Set("joinurl", func(args []any) (any, error) {
		if err := arity("joinurl", args, 1, -1); err != nil {
			return nil, err
		}
		parts := args
		if len(args) == 1 {
			if list, ok := args[0].([]any); ok {
				parts = list
			}
		}
		return shape.JoinURL(parts), nil
	})
}
