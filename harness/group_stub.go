package harness

import "errors"

func init() {
	RegisterGroup("echo", echoGroup)
	RegisterGroup("test", stubGroup)
}

// echoGroup exposes just the echo entry, for minimal configurations.
func echoGroup(u *Utility) {
	u.Set("echo", echoEntry)
}

// stubGroup seeds the deterministic stubs a test-mode Provider guarantees.
func stubGroup(u *Utility) {
	u.Set("echo", echoEntry)

	u.Set("ping", func(args []any) (any, error) {
		if err := arity("ping", args, 0, 0); err != nil {
			return nil, err
		}
		return "pong", nil
	})

	u.Set("fail", func(args []any) (any, error) {
		return nil, errors.New("fail: intentional stub failure")
	})
}

// echoEntry returns its input: nil for no arguments, the sole argument for
// one, and a copy of the argument list for more.
func echoEntry(args []any) (any, error) {
	switch len(args) {
	case 0:
		return nil, nil
	case 1:
		return args[0], nil
	}
	return append([]any{}, args...), nil
}
