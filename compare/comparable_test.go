package compare

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestString is a simple string wrapper that implements Ordered.
type TestString string

func (s TestString) Equals(other TestString) bool {
	return string(s) == string(other)
}

func (s TestString) LessThan(other TestString) bool {
	return string(s) < string(other)
}

func (s TestString) Compare(other TestString) int {
	return cmp.Compare(string(s), string(other))
}

// TestStruct orders by priority only, so Name tells apart values that tie.
type TestStruct struct {
	Priority int
	Name     string
}

func (t TestStruct) Equals(other TestStruct) bool {
	return t.Priority == other.Priority
}

func (t TestStruct) LessThan(other TestStruct) bool {
	return t.Priority < other.Priority
}

func (t TestStruct) Compare(other TestStruct) int {
	return cmp.Compare(t.Priority, other.Priority)
}

var _ Ordered[TestString] = TestString("")

func TestSort_AgreesWithMinMax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []TestString
	}{
		{name: "single", values: []TestString{"only"}},
		{name: "distinct", values: []TestString{"m", "z", "a", "q"}},
		{name: "duplicates", values: []TestString{"b", "a", "b", "a"}},
		{name: "empty string", values: []TestString{"x", "", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sorted := append([]TestString(nil), tt.values...)
			Sort(sorted)

			assert.True(t, Min(tt.values[0], tt.values[1:]...).Equals(sorted[0]))
			assert.True(t, Max(tt.values[0], tt.values[1:]...).Equals(sorted[len(sorted)-1]))
		})
	}
}

func TestMax(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TestString("b"), Max[TestString]("a", "b"))
	assert.Equal(t, TestString("only"), Max[TestString]("only"))
	assert.Equal(t, TestString("z"), Max[TestString]("m", "z", "a"))

	// Ties keep the earliest value.
	first := TestStruct{Priority: 2, Name: "first"}
	second := TestStruct{Priority: 2, Name: "second"}
	assert.Equal(t, first, Max(first, second))
}

func TestMin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TestString("a"), Min[TestString]("a", "b"))
	assert.Equal(t, TestString("a"), Min[TestString]("m", "z", "a"))

	first := TestStruct{Priority: 1, Name: "first"}
	second := TestStruct{Priority: 1, Name: "second"}
	assert.Equal(t, first, Min(first, second))
}

func TestSort(t *testing.T) {
	t.Parallel()

	t.Run("ascending", func(t *testing.T) {
		t.Parallel()

		values := []TestString{"c", "a", "b"}
		Sort(values)
		assert.Equal(t, []TestString{"a", "b", "c"}, values)
	})

	t.Run("stable", func(t *testing.T) {
		t.Parallel()

		values := []TestStruct{
			{Priority: 2, Name: "x"},
			{Priority: 1, Name: "y"},
			{Priority: 2, Name: "z"},
		}
		Sort(values)
		assert.Equal(t, []TestStruct{
			{Priority: 1, Name: "y"},
			{Priority: 2, Name: "x"},
			{Priority: 2, Name: "z"},
		}, values)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		var values []TestString

		Sort(values)
		assert.Empty(t, values)
	})
}
