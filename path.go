package shape

import (
	"math"
	"strconv"
	"strings"
)

// GetPath returns the value at a key path deep inside a node. The path is a
// dotted string ("a.b.0") or a slice of keys, where integer parts index
// lists. A nil or empty path returns the store itself. Missing values resolve
// to nil rather than failing.
func GetPath(path, store any) any {
	return getPathState(path, store, nil, nil)
}

// getPathState resolves a path with injection state: paths with a leading dot
// are relative to the current node, top-level misses fall back to the store's
// base sub-key, and a state handler post-processes the resolved value.
func getPathState(path, store, current any, state *Injection) any {
	val := store
	root := store

	var parts []string
	switch p := path.(type) {
	case []string:
		parts = p
	case string:
		if p == "" {
			parts = []string{""}
		} else {
			parts = strings.Split(p, ".")
		}
	default:
		if IsList(path) {
			for _, part := range listify(path) {
				parts = append(parts, strKey(part))
			}
		} else {
			return nil
		}
	}

	var base any
	if state != nil {
		base = state.Base
	}

	if path == nil || store == nil || (len(parts) == 1 && parts[0] == "") {
		// The sub-node of the store under the base key, if any, holds the
		// root data.
		val = GetProp(store, base, store)
	} else if len(parts) > 0 {
		pI := 0
		if parts[0] == "" {
			pI = 1
			root = current
		}

		var part string
		if pI < len(parts) {
			part = parts[pI]
		}

		first := GetProp(root, part)
		val = first
		if first == nil && pI == 0 {
			val = GetProp(GetProp(root, base), part)
		}

		for pI++; val != nil && pI < len(parts); pI++ {
			val = GetProp(val, parts[pI])
		}
	}

	if state != nil && state.Handler != nil {
		ref := Pathify(path)
		val = state.Handler(state, val, current, &ref, store)
	}

	return val
}

// Pathify renders a path value (a string, number, or slice of keys) as a
// dotted string for reference resolution and messages. The optional from
// index drops leading parts. Unrecognized values render as a marker string.
func Pathify(val any, from ...int) string {
	var path []any

	switch {
	case IsList(val):
		path = listify(val)
	default:
		switch v := val.(type) {
		case string:
			path = []any{v}
		default:
			if n, ok := toFloat64(v); ok {
				path = []any{strconv.FormatInt(int64(math.Floor(n)), 10)}
			}
		}
	}

	if path == nil {
		if val == nil {
			return "<unknown-path>"
		}
		return "<unknown-path:" + Stringify(val, 33) + ">"
	}

	start := 0
	if len(from) > 0 && from[0] >= 0 {
		start = from[0]
	}
	if len(path) < start {
		start = len(path)
	}
	sliced := path[start:]

	if len(sliced) == 0 {
		return "<root>"
	}

	parts := make([]string, 0, len(sliced))
	for _, p := range sliced {
		switch pv := p.(type) {
		case string:
			parts = append(parts, strings.ReplaceAll(pv, ".", ""))
		default:
			if n, ok := toFloat64(pv); ok {
				parts = append(parts, strconv.FormatInt(int64(math.Floor(n)), 10))
			}
		}
	}
	return strings.Join(parts, ".")
}
