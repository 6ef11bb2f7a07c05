package shape

import (
	"fmt"
	"reflect"
	"strconv"
)

// GetProp returns the child of a node by key, or the optional alternative alt
// when the parent, key or child is undefined. Map keys are coerced to
// strings, list keys to integers. As a convenience, exported struct fields
// resolve by name.
func GetProp(val, key any, alt ...any) any {
	var out, fallback any
	if len(alt) > 0 {
		fallback = alt[0]
	}
	if val == nil || key == nil {
		return fallback
	}

	switch v := val.(type) {
	case map[string]any:
		ks, ok := key.(string)
		if !ok {
			ks = strKey(key)
		}
		if child, has := v[ks]; has {
			out = child
		}

	case []any:
		ki, ok := key.(int)
		if !ok {
			switch k := key.(type) {
			case float64:
				ki = int(k)
			case string:
				ki = -1
				if n, err := strconv.Atoi(k); err == nil {
					ki = n
				}
			}
		}
		if 0 <= ki && ki < len(v) {
			out = v[ki]
		}

	default:
		rv := reflect.ValueOf(val)
		if rv.Kind() == reflect.Ptr {
			rv = rv.Elem()
		}
		if rv.Kind() == reflect.Struct {
			field := rv.FieldByName(strKey(key))
			if field.IsValid() && field.CanInterface() {
				out = field.Interface()
			}
		}
	}

	if out == nil {
		return fallback
	}
	return out
}

// SetProp sets the child of a node by key and returns the modified parent,
// which for lists may be a new slice. Setting nil deletes a map key, or
// splices the element out of a list. A list index beyond the end appends, a
// negative index prepends. Invalid keys and non-node parents are no-ops.
func SetProp(parent, key, val any) any {
	if !IsKey(key) {
		return parent
	}

	if m, ok := parent.(map[string]any); ok {
		ks := strKey(key)
		if val == nil {
			delete(m, ks)
		} else {
			m[ks] = val
		}
		return parent
	}

	list, ok := parent.([]any)
	if !ok {
		return parent
	}

	var ki int
	switch k := key.(type) {
	case int:
		ki = k
	case float64:
		ki = int(k)
	case string:
		n, err := strconv.Atoi(k)
		if err != nil {
			return parent
		}
		ki = n
	default:
		return parent
	}

	if val == nil {
		if 0 <= ki && ki < len(list) {
			copy(list[ki:], list[ki+1:])
			list = list[: len(list)-1]
		}
		return list
	}

	if ki >= 0 {
		if ki >= len(list) {
			return append(list, val)
		}
		list[ki] = val
		return list
	}

	out := make([]any, 0, len(list)+1)
	out = append(out, val)
	return append(out, list...)
}

// strKey renders a key value as a map key string.
func strKey(key any) string {
	switch k := key.(type) {
	case nil:
		return ""
	case string:
		return k
	case *string:
		if k == nil {
			return ""
		}
		return *k
	case int:
		return strconv.Itoa(k)
	case int64:
		return strconv.FormatInt(k, 10)
	case float64:
		return strconv.FormatFloat(k, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(k), 'f', -1, 32)
	}
	return fmt.Sprintf("%v", key)
}

// listify converts any slice or array value to []any, returning nil for
// non-lists.
func listify(src any) []any {
	if list, ok := src.([]any); ok {
		return list
	}
	if src == nil {
		return nil
	}
	rv := reflect.ValueOf(src)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// toFloat64 coerces numeric values to float64.
func toFloat64(val any) (float64, bool) {
	switch n := val.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
