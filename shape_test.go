package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNode(t *testing.T) {
	tests := []struct {
		name     string
		val      any
		expected bool
	}{
		{name: "map", val: map[string]any{"a": 1}, expected: true},
		{name: "empty map", val: map[string]any{}, expected: true},
		{name: "list", val: []any{1, 2}, expected: true},
		{name: "empty list", val: []any{}, expected: true},
		{name: "typed slice", val: []string{"a"}, expected: false},
		{name: "string", val: "x", expected: false},
		{name: "number", val: 1, expected: false},
		{name: "nil", val: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNode(tt.val))
		})
	}
}

func TestIsMapIsList(t *testing.T) {
	assert.True(t, IsMap(map[string]any{}))
	assert.False(t, IsMap([]any{}))
	assert.False(t, IsMap(nil))

	assert.True(t, IsList([]any{}))
	assert.True(t, IsList([]string{"a"}))
	assert.False(t, IsList(map[string]any{}))
	assert.False(t, IsList("ab"))
	assert.False(t, IsList(nil))
}

func TestIsKey(t *testing.T) {
	tests := []struct {
		name     string
		val      any
		expected bool
	}{
		{name: "string", val: "a", expected: true},
		{name: "empty string", val: "", expected: false},
		{name: "int", val: 0, expected: true},
		{name: "negative int", val: -1, expected: true},
		{name: "float", val: 2.5, expected: true},
		{name: "bool", val: true, expected: false},
		{name: "nil", val: nil, expected: false},
		{name: "list", val: []any{}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsKey(tt.val))
		})
	}
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty(map[string]any{}))
	assert.True(t, IsEmpty([]any{}))

	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(0))
	assert.False(t, IsEmpty(false))
	assert.False(t, IsEmpty(map[string]any{"a": 1}))
	assert.False(t, IsEmpty([]any{1}))
}

func TestIsFunc(t *testing.T) {
	assert.True(t, IsFunc(func() {}))
	assert.True(t, IsFunc(IsNode))
	assert.False(t, IsFunc(1))
	assert.False(t, IsFunc(nil))
}

func TestKeysOf(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, KeysOf(map[string]any{"b": 2, "a": 1}))
	assert.Equal(t, []string{"0", "1", "2"}, KeysOf([]any{9, 8, 7}))
	assert.Equal(t, []string{}, KeysOf("x"))
	assert.Equal(t, []string{}, KeysOf(nil))
}

func TestHasKey(t *testing.T) {
	m := map[string]any{"a": 1, "undef": nil}
	assert.True(t, HasKey(m, "a"))
	assert.False(t, HasKey(m, "b"))
	assert.False(t, HasKey(m, "undef"))

	list := []any{"x"}
	assert.True(t, HasKey(list, 0))
	assert.False(t, HasKey(list, 1))
}

func TestItems(t *testing.T) {
	assert.Equal(t,
		[][2]any{{"a", 1}, {"b", 2}},
		Items(map[string]any{"b": 2, "a": 1}))

	assert.Equal(t,
		[][2]any{{0, "x"}, {1, "y"}},
		Items([]any{"x", "y"}))

	assert.Equal(t, [][2]any{}, Items("scalar"))
}

func TestSortedKeys(t *testing.T) {
	val := map[string]any{
		"a": map[string]any{"rank": "2"},
		"b": map[string]any{"rank": "1"},
		"c": map[string]any{"rank": "3"},
	}
	assert.Equal(t, []string{"b", "a", "c"}, SortedKeys(val, "rank"))

	assert.Equal(t, []string{"0", "1"}, SortedKeys([]any{"x", "y"}, "rank"))
	assert.Nil(t, SortedKeys("x", "rank"))
}
