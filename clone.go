package shape

// Clone deep-copies a JSON-like structure. Scalars are returned as-is and
// function values are copied by reference.
func Clone(val any) any {
	switch v := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, child := range v {
			out[k] = Clone(child)
		}
		return out

	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = Clone(child)
		}
		return out
	}
	return val
}
