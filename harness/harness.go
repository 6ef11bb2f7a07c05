// Package harness provides the dynamic utility surface of shape: Utility, a
// registry of named callables over dynamically-typed arguments, and Provider,
// which builds sets of named Utility registries from a JSON-like
// configuration. Providers back test harnesses and other hosts that select
// behavior by name at runtime.
package harness

import (
	"errors"
	"fmt"
	"sort"
)

// Entry is a callable registered in a Utility. It receives an ordered list of
// dynamically-typed arguments and returns a single dynamically-typed value.
// Entries validate their own arguments; the registry does not inspect them.
type Entry func(args []any) (any, error)

// ErrEntryNotFound is returned by lookups of keys that were never set.
var ErrEntryNotFound = errors.New("entry not found")

// Utility is a registry mapping string keys to callable entries. Lookups are
// strict: a missing key is an error, never a silent registration. Set is the
// only mutation and overwrites without complaint, so the last write wins.
//
// A Utility is not safe for concurrent mutation; hosts that share one across
// goroutines must guard it themselves.
type Utility struct {
	entries map[string]Entry
}

// NewUtility returns an empty registry.
func NewUtility() *Utility {
	return &Utility{entries: make(map[string]Entry)}
}

// Set registers entry under key, replacing any previous entry.
func (u *Utility) Set(key string, entry Entry) {
	u.entries[key] = entry
}

// Get returns the entry under key. Missing keys return an error wrapping
// ErrEntryNotFound and leave the registry unchanged.
func (u *Utility) Get(key string) (Entry, error) {
	entry, ok := u.entries[key]
	if !ok {
		return nil, fmt.Errorf("utility entry %q: %w", key, ErrEntryNotFound)
	}
	return entry, nil
}

// Has reports whether key is registered.
func (u *Utility) Has(key string) bool {
	_, ok := u.entries[key]
	return ok
}

// Names returns the registered keys in sorted order.
func (u *Utility) Names() []string {
	names := make([]string, 0, len(u.entries))
	for k := range u.entries {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered entries.
func (u *Utility) Len() int {
	return len(u.entries)
}

// Call looks up key and invokes its entry with args. A failed lookup returns
// an error wrapping ErrEntryNotFound; any other error comes from the entry
// itself.
func (u *Utility) Call(key string, args ...any) (any, error) {
	entry, err := u.Get(key)
	if err != nil {
		return nil, err
	}
	return entry(args)
}
