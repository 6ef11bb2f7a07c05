package shape

// Merge merges a list of values left to right and returns the result. Later
// scalars replace earlier values outright, as do nodes of a different kind
// (map over list or list over map). Nodes of the same kind merge deeply, with
// later children winning. The first node in the list may be modified in
// place.
func Merge(val any) any {
	if !IsList(val) {
		return val
	}
	list := listify(val)

	switch len(list) {
	case 0:
		return nil
	case 1:
		return list[0]
	}

	out := GetProp(list, 0, map[string]any{})

	for i := 1; i < len(list); i++ {
		obj := list[i]

		if !IsNode(obj) {
			out = obj
			continue
		}
		if !IsNode(out) ||
			(IsMap(obj) && IsList(out)) ||
			(IsList(obj) && IsMap(out)) {
			out = obj
			continue
		}

		// Walk obj and write each leaf into out, creating intermediate nodes
		// as needed. cur tracks the node under construction at each depth;
		// since children are visited before parents, a completed child node
		// sits one slot deeper when its parent key is processed.
		cur := make([]any, 11)
		cI := 0
		cur[cI] = out

		merger := func(key *string, val any, parent any, path []string) any {
			if key == nil {
				return val
			}

			cI = len(path) - 1
			for len(cur) <= cI+1 {
				cur = append(cur, nil)
			}

			if cur[cI] == nil {
				cur[cI] = GetPath(path[:len(path)-1], out)
			}
			if cur[cI] == nil {
				if IsList(parent) {
					cur[cI] = make([]any, 0)
				} else {
					cur[cI] = make(map[string]any)
				}
			}

			if IsNode(val) && !IsEmpty(val) {
				cur[cI] = SetProp(cur[cI], *key, cur[cI+1])
				cur[cI+1] = nil
			} else {
				cur[cI] = SetProp(cur[cI], *key, val)
			}
			return val
		}

		Walk(obj, merger)
		out = cur[0]
	}

	return out
}
