package harness

import (
	"fmt"

	"github.com/soochol/shape"
)

func init() {
	RegisterGroup("struct", structGroup)
}

// structGroup exposes the shape node utilities as callable entries, one per
// operation, named in lowercase.
func structGroup(u *Utility) {
	u.Set("isnode", func(args []any) (any, error) {
		if err := arity("isnode", args, 1, 1); err != nil {
			return nil, err
		}
		return shape.IsNode(args[0]), nil
	})

	u.Set("ismap", func(args []any) (any, error) {
		if err := arity("ismap", args, 1, 1); err != nil {
			return nil, err
		}
		return shape.IsMap(args[0]), nil
	})

	u.Set("islist", func(args []any) (any, error) {
		if err := arity("islist", args, 1, 1); err != nil {
			return nil, err
		}
		return shape.IsList(args[0]), nil
	})

	u.Set("iskey", func(args []any) (any, error) {
		if err := arity("iskey", args, 1, 1); err != nil {
			return nil, err
		}
		return shape.IsKey(args[0]), nil
	})

	u.Set("isempty", func(args []any) (any, error) {
		if err := arity("isempty", args, 1, 1); err != nil {
			return nil, err
		}
		return shape.IsEmpty(args[0]), nil
	})

	u.Set("isfunc", func(args []any) (any, error) {
		if err := arity("isfunc", args, 1, 1); err != nil {
			return nil, err
		}
		return shape.IsFunc(args[0]), nil
	})

	u.Set("clone", func(args []any) (any, error) {
		if err := arity("clone", args, 1, 1); err != nil {
			return nil, err
		}
		return shape.Clone(args[0]), nil
	})

	u.Set("keysof", func(args []any) (any, error) {
		if err := arity("keysof", args, 1, 1); err != nil {
			return nil, err
		}
		return shape.KeysOf(args[0]), nil
	})

	u.Set("haskey", func(args []any) (any, error) {
		if err := arity("haskey", args, 2, 2); err != nil {
			return nil, err
		}
		return shape.HasKey(args[0], args[1]), nil
	})

	u.Set("items", func(args []any) (any, error) {
		if err := arity("items", args, 1, 1); err != nil {
			return nil, err
		}
		return shape.Items(args[0]), nil
	})

	u.Set("sortedkeys", func(args []any) (any, error) {
		if err := arity("sortedkeys", args, 2, 2); err != nil {
			return nil, err
		}
		ckey, err := stringArg("sortedkeys", "key property", args[1])
		if err != nil {
			return nil, err
		}
		return shape.SortedKeys(args[0], ckey), nil
	})

	u.Set("getprop", func(args []any) (any, error) {
		if err := arity("getprop", args, 2, 3); err != nil {
			return nil, err
		}
		if len(args) == 3 {
			return shape.GetProp(args[0], args[1], args[2]), nil
		}
		return shape.GetProp(args[0], args[1]), nil
	})

	u.Set("setprop", func(args []any) (any, error) {
		if err := arity("setprop", args, 3, 3); err != nil {
			return nil, err
		}
		return shape.SetProp(args[0], args[1], args[2]), nil
	})

	u.Set("getpath", func(args []any) (any, error) {
		if err := arity("getpath", args, 2, 2); err != nil {
			return nil, err
		}
		return shape.GetPath(args[0], args[1]), nil
	})

	u.Set("merge", func(args []any) (any, error) {
		if err := arity("merge", args, 1, 1); err != nil {
			return nil, err
		}
		return shape.Merge(args[0]), nil
	})

	u.Set("walk", func(args []any) (any, error) {
		if err := arity("walk", args, 2, 2); err != nil {
			return nil, err
		}
		var fn shape.WalkFunc
		switch f := args[1].(type) {
		case shape.WalkFunc:
			fn = f
		case func(*string, any, any, []string) any:
			fn = f
		default:
			return nil, fmt.Errorf("walk: second argument must be a walk function, got %T", args[1])
		}
		return shape.Walk(args[0], fn), nil
	})

	u.Set("inject", func(args []any) (any, error) {
		if err := arity("inject", args, 2, 2); err != nil {
			return nil, err
		}
		return shape.Inject(args[0], args[1]), nil
	})

	u.Set("transform", func(args []any) (any, error) {
		if err := arity("transform", args, 2, 3); err != nil {
			return nil, err
		}
		if len(args) == 3 {
			return shape.TransformModify(args[0], args[1], args[2], nil), nil
		}
		return shape.Transform(args[0], args[1]), nil
	})
}
