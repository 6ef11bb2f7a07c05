package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		val      any
		expected any
	}{
		{
			name:     "non-list passes through",
			val:      "x",
			expected: "x",
		},
		{
			name:     "empty list",
			val:      []any{},
			expected: nil,
		},
		{
			name:     "single element",
			val:      []any{map[string]any{"a": 1}},
			expected: map[string]any{"a": 1},
		},
		{
			name:     "disjoint maps union",
			val:      []any{map[string]any{"a": 1}, map[string]any{"b": 2}},
			expected: map[string]any{"a": 1, "b": 2},
		},
		{
			name:     "later key wins",
			val:      []any{map[string]any{"a": 1}, map[string]any{"a": 2}},
			expected: map[string]any{"a": 2},
		},
		{
			name: "deep merge",
			val: []any{
				map[string]any{"a": map[string]any{"b": 1}},
				map[string]any{"a": map[string]any{"c": 2}},
			},
			expected: map[string]any{"a": map[string]any{"b": 1, "c": 2}},
		},
		{
			name: "deep path created",
			val: []any{
				map[string]any{},
				map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}},
			},
			expected: map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}},
		},
		{
			name:     "later scalar wins outright",
			val:      []any{map[string]any{"a": 1}, "s"},
			expected: "s",
		},
		{
			name:     "node replaces scalar",
			val:      []any{"s", map[string]any{"a": 1}},
			expected: map[string]any{"a": 1},
		},
		{
			name:     "list replaces map",
			val:      []any{map[string]any{"a": 1}, []any{1, 2}},
			expected: []any{1, 2},
		},
		{
			name:     "map replaces list",
			val:      []any{[]any{1}, map[string]any{"a": 1}},
			expected: map[string]any{"a": 1},
		},
		{
			name:     "lists merge by index",
			val:      []any{[]any{1, 2, 3}, []any{9}},
			expected: []any{9, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Merge(tt.val))
		})
	}
}

func TestMergeThreeWay(t *testing.T) {
	out := Merge([]any{
		map[string]any{"a": 1, "keep": true},
		map[string]any{"a": 2, "b": map[string]any{"x": 1}},
		map[string]any{"b": map[string]any{"y": 2}, "c": 3},
	})

	assert.Equal(t, map[string]any{
		"a":    2,
		"keep": true,
		"b":    map[string]any{"x": 1, "y": 2},
		"c":    3,
	}, out)
}

func TestMergeModifiesFirstNode(t *testing.T) {
	first := map[string]any{"a": 1}
	out := Merge([]any{first, map[string]any{"b": 2}})

	assert.Equal(t, map[string]any{"a": 1, "b": 2}, first)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, out)
}
