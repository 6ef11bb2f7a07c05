// Package shape provides utilities for working with in-memory JSON-like data:
// nested nodes where a node is a map with string keys or a list, and leaves
// are strings, numbers, booleans or nil. All operations tolerate missing or
// undefined values rather than failing.
//
// Note that nil is treated as undefined throughout. Parsers that decode JSON
// null to nil therefore make null indistinguishable from an absent value;
// substitute a sentinel before processing if the distinction matters.
package shape

import (
	"reflect"
	"sort"
	"strconv"
)

// IsNode reports whether val is a node: a map with string keys or a generic
// []any list. Typed slices satisfy IsList but are not nodes, so traversal
// treats them as leaves.
func IsNode(val any) bool {
	switch val.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}

// IsMap reports whether val is a map with string keys.
func IsMap(val any) bool {
	_, ok := val.(map[string]any)
	return ok
}

// IsList reports whether val is a list.
func IsList(val any) bool {
	if val == nil {
		return false
	}
	kind := reflect.ValueOf(val).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

// IsKey reports whether val can address a node child: a non-empty string or
// a number.
func IsKey(val any) bool {
	switch k := val.(type) {
	case string:
		return k != ""
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// IsEmpty reports whether val is nil, an empty string, or an empty node.
func IsEmpty(val any) bool {
	switch v := val.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	}
	return false
}

// IsFunc reports whether val is a function value.
func IsFunc(val any) bool {
	return reflect.ValueOf(val).Kind() == reflect.Func
}

// KeysOf returns the keys of a map in sorted order, or the stringified
// indexes of a list. Non-nodes have no keys.
func KeysOf(val any) []string {
	switch {
	case IsMap(val):
		m := val.(map[string]any)
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return keys

	case IsList(val):
		list := listify(val)
		keys := make([]string, len(list))
		for i := range list {
			keys[i] = strconv.Itoa(i)
		}
		return keys
	}
	return []string{}
}

// HasKey reports whether the value at key in node val is defined.
func HasKey(val, key any) bool {
	return GetProp(val, key) != nil
}

// Items lists the children of a node as [key, value] pairs, map children
// ordered by key, list children by index.
func Items(val any) [][2]any {
	switch {
	case IsMap(val):
		m := val.(map[string]any)
		out := make([][2]any, 0, len(m))
		for _, k := range KeysOf(m) {
			out = append(out, [2]any{k, m[k]})
		}
		return out

	case IsList(val):
		list := listify(val)
		out := make([][2]any, 0, len(list))
		for i, v := range list {
			out = append(out, [2]any{i, v})
		}
		return out
	}
	return [][2]any{}
}

// SortedKeys returns the keys of a map ordered by the ckey property of each
// child value, or the stringified indexes of a list.
func SortedKeys(val any, ckey string) []string {
	switch {
	case IsMap(val):
		keys := KeysOf(val)
		sort.SliceStable(keys, func(a, b int) bool {
			va := strKey(GetProp(GetProp(val, keys[a]), ckey))
			vb := strKey(GetProp(GetProp(val, keys[b]), ckey))
			return va < vb
		})
		return keys

	case IsList(val):
		return KeysOf(val)
	}
	return nil
}
