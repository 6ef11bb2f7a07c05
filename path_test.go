package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPath(t *testing.T) {
	store := map[string]any{
		"a": map[string]any{
			"b": 1,
			"c": []any{"x", "y"},
		},
	}

	tests := []struct {
		name     string
		path     any
		store    any
		expected any
	}{
		{name: "dotted", path: "a.b", store: store, expected: 1},
		{name: "list index", path: "a.c.1", store: store, expected: "y"},
		{name: "string slice", path: []string{"a", "b"}, store: store, expected: 1},
		{name: "mixed slice", path: []any{"a", "c", 0}, store: store, expected: "x"},
		{name: "top level list", path: "1", store: []any{"p", "q"}, expected: "q"},
		{name: "missing tail", path: "a.b.c", store: store, expected: nil},
		{name: "missing head", path: "z.b", store: store, expected: nil},
		{name: "empty path", path: "", store: store, expected: store},
		{name: "nil store", path: "a.b", store: nil, expected: nil},
		{name: "bad path type", path: 12, store: store, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPath(tt.path, tt.store))
		})
	}
}

func TestGetPathRelative(t *testing.T) {
	store := map[string]any{"sib": "from-root"}

	tests := []struct {
		name     string
		path     string
		current  any
		expected any
	}{
		{
			name:     "leading dot reads current",
			path:     ".sib",
			current:  map[string]any{"sib": "from-current"},
			expected: "from-current",
		},
		{
			name:     "leading dot deep",
			path:     ".b.c",
			current:  map[string]any{"b": map[string]any{"c": 9}},
			expected: 9,
		},
		{
			name:     "no dot ignores current",
			path:     "sib",
			current:  map[string]any{"sib": "from-current"},
			expected: "from-root",
		},
		{
			name:     "leading dot without current",
			path:     ".sib",
			current:  nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getPathState(tt.path, store, tt.current, nil))
		})
	}

	// The exported form passes no current node, so a relative path resolves
	// to nothing rather than failing.
	assert.Nil(t, GetPath(".x", store))
}

func TestPathify(t *testing.T) {
	tests := []struct {
		name     string
		val      any
		from     []int
		expected string
	}{
		{name: "string slice", val: []any{"a", "b"}, expected: "a.b"},
		{name: "mixed slice", val: []any{"a", 1}, expected: "a.1"},
		{name: "single string", val: "x", expected: "x"},
		{name: "dots stripped", val: []any{"a.b", "c"}, expected: "ab.c"},
		{name: "number", val: 2, expected: "2"},
		{name: "number floored", val: 2.7, expected: "2"},
		{name: "from offset", val: []any{"a", "b", "c"}, from: []int{1}, expected: "b.c"},
		{name: "from beyond end", val: []any{"a"}, from: []int{5}, expected: "<root>"},
		{name: "empty slice", val: []any{}, expected: "<root>"},
		{name: "nil", val: nil, expected: "<unknown-path>"},
		{name: "map", val: map[string]any{"a": 1}, expected: "<unknown-path:{a:1}>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Pathify(tt.val, tt.from...))
		})
	}
}
