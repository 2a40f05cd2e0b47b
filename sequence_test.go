package typekit

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypesOf(t *testing.T) {
	tests := []struct {
		name  string
		items []any
		want  []Type
	}{
		{
			name:  "empty sequence",
			items: []any{},
			want:  []Type{},
		},
		{
			name:  "mixed scalars",
			items: []any{1, "a", true, nil},
			want:  []Type{TypeNumber, TypeString, TypeBoolean, TypeObject},
		},
		{
			name:  "order preserved",
			items: []any{"z", "y", 0},
			want:  []Type{TypeString, TypeString, TypeNumber},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TypesOf(tt.items)
			require.Len(t, got, len(tt.items))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("TypesOf() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRealTypesOf(t *testing.T) {
	got := RealTypesOf([]any{math.NaN(), nil, []byte{1}, time.Time{}, 5})
	want := []Type{TypeNaN, TypeNull, TypeArrayBuffer, TypeDate, TypeNumber}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RealTypesOf() mismatch (-want +got):\n%s", diff)
	}
}

func TestAllOfSameType(t *testing.T) {
	tests := []struct {
		name  string
		items []any
		want  bool
	}{
		{"empty", []any{}, true},
		{"single element", []any{struct{}{}}, true},
		{"uniform numbers", []any{11, 12, 13}, true},
		{"mixed numeric kinds still uniform", []any{1, 2.5, uint8(3)}, true},
		{"wrapped string breaks uniformity", []any{"11", struct{ V string }{"12"}, "13"}, false},
		{"nil and struct are both object", []any{nil, struct{}{}}, true},
		{"number then string", []any{1, "1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AllOfSameType(tt.items))
		})
	}
}

func TestAllUniqueRealTypes(t *testing.T) {
	tests := []struct {
		name  string
		items []any
		want  bool
	}{
		{"empty", []any{}, true},
		{"single", []any{1}, true},
		{"boolean number string", []any{true, 123, "123"}, true},
		{"second boolean duplicates", []any{true, 123, "123", "123" == "123"}, false},
		{"NaN and number are distinct", []any{math.NaN(), 1}, true},
		{"two plain numbers collide", []any{1, 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AllUniqueRealTypes(tt.items))
		})
	}
}

func TestCountRealTypes(t *testing.T) {
	got := CountRealTypes([]any{true, nil, true, false, struct{ V int }{1}})
	want := []TypeCount{
		{Type: TypeBoolean, Count: 3},
		{Type: TypeNull, Count: 1},
		{Type: TypeObject, Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CountRealTypes() mismatch (-want +got):\n%s", diff)
	}
}

func TestCountRealTypes_SortedAndComplete(t *testing.T) {
	items := []any{
		make(chan int), math.NaN(), "s", []byte{1}, errors.New("e"),
		nil, 3, 4, time.Now(), map[string]struct{}{},
	}
	counts := CountRealTypes(items)

	total := 0
	for i, tc := range counts {
		total += tc.Count
		assert.Positive(t, tc.Count)
		if i > 0 {
			assert.Less(t, string(counts[i-1].Type), string(tc.Type), "labels out of order")
		}
	}
	assert.Equal(t, len(items), total, "counts must sum to the input length")
}

func TestCountRealTypes_Empty(t *testing.T) {
	assert.Empty(t, CountRealTypes(nil))
	assert.Empty(t, CountRealTypes([]any{}))
}

func TestAsSequence(t *testing.T) {
	t.Run("int slice", func(t *testing.T) {
		items, err := AsSequence([]int{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, []any{1, 2, 3}, items)
	})

	t.Run("array value", func(t *testing.T) {
		items, err := AsSequence([2]string{"a", "b"})
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "b"}, items)
	})

	t.Run("decoded JSON array", func(t *testing.T) {
		items, err := AsSequence(any([]any{true, nil}))
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("non-sequence inputs are rejected", func(t *testing.T) {
		for _, v := range []any{nil, 42, "nope", map[string]int{}, struct{}{}} {
			_, err := AsSequence(v)
			assert.ErrorIs(t, err, ErrNotSequence, "input %#v", v)
		}
	})
}
