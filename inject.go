package shape

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"
)

// InjectMode identifies the phase of a key-value injection. Keys are injected
// before their value, then again after it, so command handlers can act both
// before and after descent.
type InjectMode string

const (
	InjectModeKeyPre  InjectMode = "key:pre"
	InjectModeKeyPost InjectMode = "key:post"
	InjectModeVal     InjectMode = "val"
)

// Store keys and node tags with special meaning to injections.
const (
	topKey  = "$TOP"
	errsKey = "$ERRS"
	keyTag  = "`$KEY`"
	metaTag = "`$META`"
)

// Injection carries the state of one value injection down an Inject pass.
// Handlers receive it to learn where in the structure they fired and may
// adjust Keys and KeyI to steer traversal.
type Injection struct {
	Mode    InjectMode     // current injection phase
	Full    bool           // reference covered the entire string value
	KeyI    int            // index of Key within Keys
	Keys    []string       // keys of Parent in traversal order
	Key     string         // key of Val within Parent
	Val     any            // value being injected
	Parent  any            // node containing Val
	Path    []string       // key path from the root to Val
	Nodes   []any          // ancestor nodes of Val, outermost first
	Handler InjectHandler  // reference resolution hook
	Errs    []any          // error collector shared via the store
	Meta    map[string]any // scratch data for custom handlers
	Base    string         // store sub-key holding the root data
	Modify  Modify         // post-injection hook
}

// InjectHandler resolves an injection reference to its final value. The
// default handler invokes function values of this type found at $-prefixed
// references, which is how transform commands execute.
type InjectHandler func(state *Injection, val any, current any, ref *string, store any) any

// Modify post-processes each value after injection, receiving the injected
// value and its position in the structure.
type Modify func(val, key, parent any, state *Injection, current, store any)

// Inject replaces backtick references inside val with values resolved from
// store, modifying val in place and returning the result. A reference
// spanning a whole string ("`a.b`") is replaced by the referenced value
// itself; references embedded in a larger string are replaced by their
// stringified values. Paths with a leading dot resolve against the node
// matching the current position rather than the store root. References that
// resolve to nothing remove the holding key.
func Inject(val, store any) any {
	return inject(val, store, nil, nil, nil)
}

func inject(val, store any, modify Modify, current any, state *Injection) any {
	if state == nil {
		// Wrap the root value in a virtual parent so that top-level
		// injections have a node to write into.
		parent := map[string]any{topKey: val}
		errs, _ := GetProp(store, errsKey, make([]any, 0)).([]any)

		state = &Injection{
			Mode:    InjectModeVal,
			KeyI:    0,
			Keys:    []string{topKey},
			Key:     topKey,
			Val:     val,
			Parent:  parent,
			Path:    []string{topKey},
			Nodes:   []any{parent},
			Handler: injectHandler,
			Base:    topKey,
			Modify:  modify,
			Errs:    errs,
			Meta:    make(map[string]any),
		}
	}

	// Resolve the node in the source data that mirrors the current position,
	// giving relative references something to be relative to.
	if current == nil {
		current = map[string]any{topKey: store}
	} else if len(state.Path) > 1 {
		current = GetProp(current, state.Path[len(state.Path)-2])
	}

	if IsNode(val) {
		// Command keys (containing $) run after plain keys, in sorted order,
		// so a trailing digit can sequence multiple commands in one node.
		var plain, commands []string
		for _, k := range KeysOf(val) {
			if strings.Contains(k, "$") {
				commands = append(commands, k)
			} else {
				plain = append(plain, k)
			}
		}
		sort.Strings(commands)
		keys := append(plain, commands...)

		for kI := 0; kI < len(keys); kI++ {
			key := keys[kI]

			childState := &Injection{
				Mode:    InjectModeKeyPre,
				KeyI:    kI,
				Keys:    keys,
				Key:     key,
				Val:     val,
				Parent:  val,
				Path:    append(state.Path, key),
				Nodes:   append(state.Nodes, val),
				Handler: injectHandler,
				Base:    state.Base,
				Modify:  state.Modify,
			}

			preKey := injectString(key, store, current, childState)
			kI = childState.KeyI

			if preKey != nil {
				childState.Mode = InjectModeVal
				inject(GetProp(val, key), store, modify, current, childState)
				kI = childState.KeyI

				childState.Mode = InjectModeKeyPost
				injectString(key, store, current, childState)
				kI = childState.KeyI
			}
		}

	} else if s, ok := val.(string); ok {
		state.Mode = InjectModeVal
		val = injectString(s, store, current, state)
		SetProp(state.Parent, state.Key, val)
	}

	if modify != nil {
		modify(val, state.Key, state.Parent, state, current, store)
	}

	// Handlers write results through the parent, so the parent holds the
	// authoritative output.
	return GetProp(state.Parent, topKey)
}

var (
	fullRefRe    = regexp.MustCompile("^`(\\$[A-Z]+|[^`]+)[0-9]*`$")
	partialRefRe = regexp.MustCompile("`([^`]+)`")
)

// unescapeRef rewrites the $BT and $DS escapes so that references can contain
// literal backticks and dollar signs.
func unescapeRef(ref string) string {
	if len(ref) > 3 {
		ref = strings.ReplaceAll(ref, "$BT", "`")
		ref = strings.ReplaceAll(ref, "$DS", "$")
	}
	return ref
}

// injectString resolves backtick references within a single string value.
func injectString(val string, store, current any, state *Injection) any {
	if val == "" {
		return ""
	}

	// A reference covering the whole string injects the referenced value
	// itself, preserving its type.
	if m := fullRefRe.FindStringSubmatch(val); m != nil {
		if state != nil {
			state.Full = true
		}
		return getPathState(unescapeRef(m[1]), store, current, state)
	}

	// Embedded references inject their stringified values.
	out := partialRefRe.ReplaceAllStringFunc(val, func(m string) string {
		ref := unescapeRef(strings.Trim(m, "`"))
		if state != nil {
			state.Full = false
		}

		found := getPathState(ref, store, current, state)
		switch fv := found.(type) {
		case nil:
			return ""
		case string:
			return fv
		case map[string]any, []any:
			b, _ := json.Marshal(fv)
			return string(b)
		}
		return Stringify(found)
	})

	// The handler also sees the fully substituted string, so custom handlers
	// can postprocess partial injections.
	if state != nil && state.Handler != nil {
		state.Full = true
		out = state.Handler(state, out, current, &val, store).(string)
	}

	return out
}

// injectHandler is the default injection handler. Function values of type
// InjectHandler found at $-prefixed references are invoked; everything else
// passes through. Fully injected values are written back into the parent.
var injectHandler InjectHandler = func(state *Injection, val any, current any, ref *string, store any) any {
	if IsFunc(val) && (ref == nil || strings.HasPrefix(*ref, "$")) {
		if fn, ok := val.(InjectHandler); ok {
			val = fn(state, val, current, ref, store)
		}
	}

	if state.Mode == InjectModeVal && state.Full {
		SetProp(state.Parent, state.Key, val)
	}
	return val
}
