package harness

import (
	"time"

	"github.com/google/uuid"
)

func init() {
	RegisterGroup("gen", genGroup)
}

// genGroup exposes generators for fresh identifiers and timestamps.
func genGroup(u *Utility) {
	u.Set("uuid", func(args []any) (any, error) {
		if err := arity("uuid", args, 0, 0); err != nil {
			return nil, err
		}
		return uuid.NewString(), nil
	})

	u.Set("when", func(args []any) (any, error) {
		if err := arity("when", args, 0, 0); err != nil {
			return nil, err
		}
		return time.Now().UTC().Format(time.RFC3339), nil
	})
}
