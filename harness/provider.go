package harness

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// ErrInvalidConfig is returned when a configuration value cannot describe a
// set of utility registries.
var ErrInvalidConfig = errors.New("invalid configuration")

// utilitySpec is the validated build plan for one named registry.
type utilitySpec struct {
	name  string
	group string
	only  []string // nil keeps every entry of the group
}

// Provider builds named Utility registries from a configuration value.
//
// The configuration is a JSON-like tree: a non-empty map from registry name
// to a spec map with the optional fields "group", the entry group to seed
// from (defaulting to the registry name), and "entries", the subset of entry
// keys to keep. A nil spec value also means the group of the same name. The
// configuration is validated at construction and neither retained nor
// mutated.
//
// A constructed Provider is immutable and safe for concurrent use; every
// registry it describes is buildable, so Utilities cannot fail.
type Provider struct {
	specs []utilitySpec
}

// New builds a Provider from a configuration value. Structurally invalid
// configurations, unknown groups and unknown entry subsets return an error
// wrapping ErrInvalidConfig, and no registry is built.
func New(cfg any) (*Provider, error) {
	specs, err := buildSpecs(cfg)
	if err != nil {
		return nil, err
	}
	slog.Debug("harness provider configured", "utilities", len(specs))
	return &Provider{specs: specs}, nil
}

// Test builds a Provider from cfg like New, additionally guaranteeing a
// "test" registry of deterministic stub entries. An explicit "test" key in
// cfg takes precedence over the implicit stubs.
func Test(cfg any) (*Provider, error) {
	p, err := New(cfg)
	if err != nil {
		return nil, err
	}
	for _, s := range p.specs {
		if s.name == "test" {
			return p, nil
		}
	}
	p.specs = append(p.specs, utilitySpec{name: "test", group: "test"})
	return p, nil
}

// defaultGroups names the built-in groups TestDefault enables, each under
// its own registry name.
var defaultGroups = []string{"echo", "expr", "gen", "struct", "test", "text"}

// TestDefault builds a Provider from the fixed built-in configuration
// returned by DefaultConfig. The configuration is known valid, so
// construction cannot fail.
func TestDefault() *Provider {
	specs := make([]utilitySpec, 0, len(defaultGroups))
	for _, name := range defaultGroups {
		specs = append(specs, utilitySpec{name: name, group: name})
	}
	return &Provider{specs: specs}
}

// DefaultConfig returns the configuration TestDefault builds from: every
// built-in entry group enabled under its own name.
func DefaultConfig() map[string]any {
	cfg := make(map[string]any, len(defaultGroups))
	for _, name := range defaultGroups {
		cfg[name] = map[string]any{}
	}
	return cfg
}

// Utilities builds the configured registries, keyed by registry name. Each
// call returns fresh Utility instances seeded from the same specs, so callers
// may mutate the result freely without affecting the Provider or later calls.
func (p *Provider) Utilities() map[string]*Utility {
	out := make(map[string]*Utility, len(p.specs))
	for _, s := range p.specs {
		u := NewUtility()
		groups[s.group](u)

		if s.only != nil {
			keep := make(map[string]bool, len(s.only))
			for _, key := range s.only {
				keep[key] = true
			}
			for _, key := range u.Names() {
				if !keep[key] {
					delete(u.entries, key)
				}
			}
		}
		out[s.name] = u
	}
	return out
}

// buildSpecs validates a configuration value into build plans, one per named
// registry, in deterministic order.
func buildSpecs(cfg any) ([]utilitySpec, error) {
	root, ok := cfg.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a map of utility names, got %T", ErrInvalidConfig, cfg)
	}
	if len(root) == 0 {
		return nil, fmt.Errorf("%w: no utilities defined", ErrInvalidConfig)
	}

	names := make([]string, 0, len(root))
	for name := range root {
		names = append(names, name)
	}
	sort.Strings(names)

	specs := make([]utilitySpec, 0, len(names))
	for _, name := range names {
		spec := utilitySpec{name: name, group: name}

		switch v := root[name].(type) {
		case nil:
			// Bare name: seed from the group of the same name.

		case map[string]any:
			if g, has := v["group"]; has {
				gs, ok := g.(string)
				if !ok || gs == "" {
					return nil, fmt.Errorf("%w: utility %q: group must be a non-empty string, got %v",
						ErrInvalidConfig, name, g)
				}
				spec.group = gs
			}
			if e, has := v["entries"]; has {
				only, err := entryList(e)
				if err != nil {
					return nil, fmt.Errorf("%w: utility %q: %v", ErrInvalidConfig, name, err)
				}
				spec.only = only
			}
			for field := range v {
				if field != "group" && field != "entries" {
					return nil, fmt.Errorf("%w: utility %q: unknown field %q", ErrInvalidConfig, name, field)
				}
			}

		default:
			return nil, fmt.Errorf("%w: utility %q: expected a map, got %T", ErrInvalidConfig, name, root[name])
		}

		fn, ok := groups[spec.group]
		if !ok {
			return nil, fmt.Errorf("%w: utility %q: unknown entry group %q", ErrInvalidConfig, name, spec.group)
		}

		// Check the subset against the group by seeding a scratch registry,
		// so bad entry names surface here rather than at lookup time.
		if spec.only != nil {
			scratch := NewUtility()
			fn(scratch)
			for _, key := range spec.only {
				if !scratch.Has(key) {
					return nil, fmt.Errorf("%w: utility %q: group %q has no entry %q",
						ErrInvalidConfig, name, spec.group, key)
				}
			}
		}

		specs = append(specs, spec)
	}
	return specs, nil
}

// entryList coerces the "entries" field to a non-empty list of entry keys.
func entryList(v any) ([]string, error) {
	var out []string

	switch list := v.(type) {
	case []string:
		out = append(out, list...)
	case []any:
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("entries must be a list of strings, got %T element", item)
			}
			out = append(out, s)
		}
	default:
		return nil, fmt.Errorf("entries must be a list of strings, got %T", v)
	}

	if len(out) == 0 {
		return nil, errors.New("entries must not be empty")
	}
	return out, nil
}
