package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedup(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{
			name:  "adjacent duplicates removed",
			input: []int{1, 2, 2, 3, 4, 4, 5},
			want:  []int{1, 2, 3, 4, 5},
		},
		{
			name:  "empty input gives empty output",
			input: []int{},
			want:  []int{},
		},
		{
			name:  "single element unchanged",
			input: []int{42},
			want:  []int{42},
		},
		{
			name:  "all duplicates collapse to one",
			input: []int{1, 1, 1, 1},
			want:  []int{1},
		},
		{
			name:  "first occurrence order preserved",
			input: []int{3, 1, 3, 2, 1},
			want:  []int{3, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dedup(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDedupNilInput(t *testing.T) {
	_, err := Dedup[int](nil)
	assert.ErrorIs(t, err, ErrNilInput)

	_, err = DedupAny(nil)
	assert.ErrorIs(t, err, ErrNilInput)
}

func TestDedupStrings(t *testing.T) {
	got, err := Dedup([]string{"a", "b", "a", "c", "b"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestDedupIdempotent(t *testing.T) {
	input := []int{5, 3, 5, 1, 3, 1, 2}

	once, err := Dedup(input)
	assert.NoError(t, err)
	twice, err := Dedup(once)
	assert.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestDedupDoesNotMutateInput(t *testing.T) {
	input := []int{1, 2, 2, 3}
	_, err := Dedup(input)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2, 3}, input)
}

func TestDedupAnyNestedSlices(t *testing.T) {
	input := []any{
		[]any{1, 2},
		[]any{3, 4},
		[]any{1, 2},
	}

	got, err := DedupAny(input)
	assert.NoError(t, err)
	assert.Equal(t, []any{[]any{1, 2}, []any{3, 4}}, got)
}

func TestDedupAnyMaps(t *testing.T) {
	// Maps with the same entries are equal regardless of literal order.
	input := []any{
		map[string]any{"a": 1, "b": 2},
		map[string]any{"b": 2, "a": 1},
		map[string]any{"a": 1, "b": 3},
	}

	got, err := DedupAny(input)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, got[0])
	assert.Equal(t, map[string]any{"a": 1, "b": 3}, got[1])
}

func TestDedupAnyRetainsOriginalElements(t *testing.T) {
	first := []any{1, 2}
	input := []any{first, []any{1, 2}}

	got, err := DedupAny(input)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	// The retained element is the first occurrence, not its canonical key.
	assert.Same(t, &first[0], &got[0].([]any)[0])
}

func TestDedupAnyMixedScalars(t *testing.T) {
	// Same rendered value, different type: must stay distinct.
	input := []any{1, "1", 1, "1", true, "true"}

	got, err := DedupAny(input)
	assert.NoError(t, err)
	assert.Equal(t, []any{1, "1", true, "true"}, got)
}

func TestDedupAnyDeepNesting(t *testing.T) {
	input := []any{
		[]any{[]any{1}, map[string]any{"k": []any{2, 3}}},
		[]any{[]any{1}, map[string]any{"k": []any{2, 3}}},
		[]any{[]any{1}, map[string]any{"k": []any{3, 2}}},
	}

	got, err := DedupAny(input)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDedupAnyEmpty(t *testing.T) {
	got, err := DedupAny([]any{})
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
