package harness

import (
	"fmt"
	"sort"
)

// GroupFunc seeds a Utility with the entries of one group.
type GroupFunc func(u *Utility)

// groups holds the entry groups a Provider can build registries from. The
// built-in groups register themselves in init; the table is read without
// locking once Providers are being constructed, so later registrations must
// happen before that.
var groups = map[string]GroupFunc{}

// RegisterGroup makes an entry group available to Provider configurations
// under name, replacing any previous group of that name. Call it from an init
// function.
func RegisterGroup(name string, fn GroupFunc) {
	groups[name] = fn
}

// Groups returns the names of all registered entry groups in sorted order.
func Groups() []string {
	names := make([]string, 0, len(groups))
	for k := range groups {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// arity checks an entry's argument count against an inclusive range; a
// negative max means unbounded.
func arity(name string, args []any, min, max int) error {
	n := len(args)
	if n >= min && (max < 0 || n <= max) {
		return nil
	}
	if min == max {
		return fmt.Errorf("%s: expected %d argument(s), got %d", name, min, n)
	}
	if max < 0 {
		return fmt.Errorf("%s: expected at least %d argument(s), got %d", name, min, n)
	}
	return fmt.Errorf("%s: expected %d to %d arguments, got %d", name, min, max, n)
}

// stringArg extracts a required string argument.
func stringArg(name, what string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: %s must be a string, got %T", name, what, v)
	}
	return s, nil
}

// intArg extracts a required integer argument, accepting JSON-decoded
// numbers.
func intArg(name, what string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		return int(n), nil
	}
	return 0, fmt.Errorf("%s: %s must be a number, got %T", name, what, v)
}
