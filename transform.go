package shape

import (
	"strings"
	"time"
)

// Transform builds an output structure from data by injecting it into spec, a
// structure mirroring the desired output. Plain spec values are kept as-is,
// backtick references are resolved against data, and $-commands reshape the
// output: $COPY, $KEY, $META, $DELETE, $MERGE, $EACH and $PACK. The spec is
// modified in place; data is not.
func Transform(data, spec any) any {
	return TransformModify(data, spec, nil, nil)
}

// TransformModify is Transform with extra injection data and a modify hook
// applied to every injected value. Keys of extra starting with $ define
// additional commands, which must be InjectHandler values; the rest is merged
// under the data, so plain data wins name clashes.
func TransformModify(data, spec, extra any, modify Modify) any {
	extraData := map[string]any{}
	extraCommands := map[string]any{}

	if extra != nil {
		for _, item := range Items(extra) {
			k, _ := item[0].(string)
			if strings.HasPrefix(k, "$") {
				extraCommands[k] = item[1]
			} else {
				extraData[k] = item[1]
			}
		}
	}

	merged := Merge([]any{Clone(extraData), Clone(data)})

	store := map[string]any{
		// The source data for reference resolution.
		topKey: merged,

		// Escapes for literal backticks and dollar signs in injected output.
		"$BT": InjectHandler(func(state *Injection, val, current any, ref *string, store any) any {
			return "`"
		}),
		"$DS": InjectHandler(func(state *Injection, val, current any, ref *string, store any) any {
			return "$"
		}),

		// Current date and time in ISO 8601 format.
		"$WHEN": InjectHandler(func(state *Injection, val, current any, ref *string, store any) any {
			return time.Now().UTC().Format(time.RFC3339)
		}),

		"$DELETE": transformDelete,
		"$COPY":   transformCopy,
		"$KEY":    transformKey,
		"$META":   transformMeta,
		"$MERGE":  transformMerge,
		"$EACH":   transformEach,
		"$PACK":   transformPack,
	}
	for k, v := range extraCommands {
		store[k] = v
	}

	return inject(spec, store, modify, store, nil)
}

// transformDelete removes the holding key from the output.
var transformDelete InjectHandler = func(state *Injection, val, current any, ref *string, store any) any {
	SetProp(state.Parent, state.Key, nil)
	return nil
}

// transformCopy copies the value at the same position in the source data.
var transformCopy InjectHandler = func(state *Injection, val, current any, ref *string, store any) any {
	var out any = state.Key
	if !strings.HasPrefix(string(state.Mode), "key") {
		out = GetProp(current, state.Key)
		SetProp(state.Parent, state.Key, out)
	}
	return out
}

// transformKey injects the key of the parent node: the key named by the
// node's `$KEY` tag, else the key recorded in its `$META` tag, else the key
// the node sits under.
var transformKey InjectHandler = func(state *Injection, val, current any, ref *string, store any) any {
	if state.Mode != InjectModeVal {
		return nil
	}

	keyspec := GetProp(state.Parent, keyTag)
	if keyspec != nil {
		SetProp(state.Parent, keyTag, nil)
		return GetProp(current, keyspec)
	}

	if pkey := GetProp(GetProp(state.Parent, metaTag), "KEY"); pkey != nil {
		return pkey
	}
	if len(state.Path) >= 2 {
		return state.Path[len(state.Path)-2]
	}
	return nil
}

// transformMeta drops the `$META` tag from the output; its content carries
// metadata for other commands.
var transformMeta InjectHandler = func(state *Injection, val, current any, ref *string, store any) any {
	SetProp(state.Parent, metaTag, nil)
	return nil
}

// transformMerge merges values into the parent node. The argument is a
// node to merge, a list of nodes, or the empty string for the entire source
// data. The parent's own children win over merged ones.
var transformMerge InjectHandler = func(state *Injection, val, current any, ref *string, store any) any {
	if state.Mode == InjectModeKeyPre {
		return state.Key
	}

	if state.Mode == InjectModeKeyPost {
		args := GetProp(state.Parent, state.Key)
		if args == "" {
			args = []any{GetProp(store, topKey)}
		} else if !IsList(args) {
			args = []any{args}
		}
		list, ok := args.([]any)
		if !ok {
			return state.Key
		}

		SetProp(state.Parent, state.Key, nil)

		// The parent is cloned onto the end of the merge so its own keys
		// take precedence over the merged values.
		mergeList := append([]any{state.Parent}, list...)
		mergeList = append(mergeList, Clone(state.Parent))
		Merge(mergeList)
	}

	return state.Key
}

// transformEach expands a list of child templates, one per entry of the
// source node named by a path: ["`$EACH`", "source.path", child-template].
var transformEach InjectHandler = func(state *Injection, val, current any, ref *string, store any) any {
	if state.Keys != nil {
		state.Keys = state.Keys[:1]
	}

	if state.Mode != InjectModeVal || state.Path == nil || state.Nodes == nil {
		return nil
	}

	spec, ok := state.Parent.([]any)
	if !ok || len(spec) < 3 {
		return nil
	}
	srcpath := spec[1]
	child := Clone(spec[2])

	src := getPathState(srcpath, store, current, state)

	var tval any = []any{}
	var tcur any = []any{}

	switch {
	case IsList(src):
		srcList := listify(src)
		list := make([]any, len(srcList))
		for i := range srcList {
			list[i] = Clone(child)
			tcur = SetProp(tcur, i, srcList[i])
		}
		tval = list

	case IsMap(src):
		items := Items(src)
		list := make([]any, 0, len(items))
		for i, item := range items {
			cclone := Clone(child)
			// Record the source key so `$KEY` resolves inside the template.
			if cmap, ok := cclone.(map[string]any); ok {
				cmap[metaTag] = map[string]any{"KEY": item[0]}
			}
			list = append(list, cclone)
			tcur = SetProp(tcur, i, item[1])
		}
		tval = list
	}

	tcur = map[string]any{topKey: tcur}
	tval = inject(tval, store, state.Modify, tcur, nil)

	if len(state.Path) >= 2 {
		tkey := state.Path[len(state.Path)-2]
		target := state.Nodes[len(state.Path)-2]
		SetProp(target, tkey, tval)
	}

	if list, ok := tval.([]any); ok && len(list) > 0 {
		return list[0]
	}
	return nil
}

// transformPack builds a map keyed by a child property from the entries of
// the source node named by a path: {"`$PACK`": ["source.path",
// {"`$KEY`": "keyprop", ...child-template}]}.
var transformPack InjectHandler = func(state *Injection, val, current any, ref *string, store any) any {
	if state.Mode != InjectModeKeyPre || state.Key == "" || state.Path == nil || state.Nodes == nil {
		return nil
	}

	parent, ok := state.Parent.(map[string]any)
	if !ok {
		return nil
	}
	args, ok := parent[state.Key].([]any)
	if !ok || len(args) < 2 {
		return nil
	}
	srcpath := args[0]
	child := Clone(args[1])
	keyprop := GetProp(child, keyTag)

	var tkey string
	if len(state.Path) >= 2 {
		tkey = state.Path[len(state.Path)-2]
	}
	target := state.Nodes[len(state.Nodes)-1]
	if len(state.Nodes) >= 2 {
		target = state.Nodes[len(state.Nodes)-2]
	}

	src := getPathState(srcpath, store, current, state)

	var srcList []any
	switch {
	case IsList(src):
		srcList = listify(src)

	case IsMap(src):
		// Carry each source key into the entry's `$META` tag.
		m := src.(map[string]any)
		srcList = make([]any, 0, len(m))
		for k, v := range m {
			meta := GetProp(v, metaTag)
			if meta == nil {
				meta = map[string]any{}
				SetProp(v, metaTag, meta)
			}
			if mmap, ok := meta.(map[string]any); ok {
				mmap["KEY"] = k
			}
			srcList = append(srcList, v)
		}

	default:
		return nil
	}

	SetProp(child, keyTag, nil)

	tval := map[string]any{}
	tcurrent := map[string]any{}

	for _, item := range srcList {
		kname, _ := GetProp(item, keyprop).(string)
		if kname == "" {
			continue
		}
		entry := Clone(child)
		tval[kname] = entry
		if _, ok := entry.(map[string]any); ok {
			SetProp(entry, metaTag, GetProp(item, metaTag))
		}
		tcurrent[kname] = item
	}

	out := inject(tval, store, state.Modify, map[string]any{topKey: tcurrent}, nil)

	SetProp(target, tkey, out)
	return nil
}
