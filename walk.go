package shape

// WalkFunc is applied to each value visited by Walk. The key is the value's
// key in its parent node (stringified for list indexes) and path is the key
// sequence from the root; both are nil at the root itself. The return value
// replaces val in the walked structure.
type WalkFunc func(key *string, val any, parent any, path []string) any

// Walk traverses a node depth first, applying fn to every value, children
// before parents. The structure is modified in place with fn's return values
// and also returned.
func Walk(val any, fn WalkFunc) any {
	return walk(val, fn, nil, nil, nil)
}

func walk(val any, fn WalkFunc, key *string, parent any, path []string) any {
	if IsNode(val) {
		for _, item := range Items(val) {
			ckey := strKey(item[0])
			child := walk(item[1], fn, &ckey, val, append(path, ckey))
			val = SetProp(val, ckey, child)
		}
		if parent != nil && key != nil {
			SetProp(parent, *key, val)
		}
	}
	return fn(key, val, parent, path)
}
