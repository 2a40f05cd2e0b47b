package typekit

import (
	"errors"
	"reflect"
	"sort"
)

// ErrNotSequence is returned by AsSequence for inputs that are not a slice
// or array.
var ErrNotSequence = errors.New("typekit: value is not a sequence")

// ============================================================================
// Sequence Classifiers
// ============================================================================

// TypesOf returns the coarse label of every element, in input order.
func TypesOf(items []any) []Type {
	labels := make([]Type, len(items))
	for i, item := range items {
		labels[i] = TypeOf(item)
	}
	return labels
}

// RealTypesOf returns the refined label of every element, in input order.
func RealTypesOf(items []any) []Type {
	labels := make([]Type, len(items))
	for i, item := range items {
		labels[i] = RealTypeOf(item)
	}
	return labels
}

// AllOfSameType reports whether every element shares the coarse label of the
// first element. Sequences of zero or one element are uniform.
func AllOfSameType(items []any) bool {
	if len(items) < 2 {
		return true
	}
	first := TypeOf(items[0])
	for _, item := range items[1:] {
		if TypeOf(item) != first {
			return false
		}
	}
	return true
}

// AllUniqueRealTypes reports whether no two elements share a refined label.
// The empty sequence is trivially unique.
func AllUniqueRealTypes(items []any) bool {
	seen := make(map[Type]struct{}, len(items))
	for _, item := range items {
		label := RealTypeOf(item)
		if _, dup := seen[label]; dup {
			return false
		}
		seen[label] = struct{}{}
	}
	return true
}

// TypeCount pairs a refined label with its number of occurrences.
type TypeCount struct {
	Type  Type
	Count int
}

// CountRealTypes returns one TypeCount per distinct refined label present in
// items, sorted ascending by label. The counts sum to len(items).
func CountRealTypes(items []any) []TypeCount {
	tally := make(map[Type]int, len(items))
	for _, item := range items {
		tally[RealTypeOf(item)]++
	}

	counts := make([]TypeCount, 0, len(tally))
	for label, n := range tally {
		counts = append(counts, TypeCount{Type: label, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Type < counts[j].Type
	})
	return counts
}

// AsSequence converts a slice or array of any element type into []any, the
// form the sequence classifiers operate on. Any other input, nil included,
// fails with ErrNotSequence; callers holding a known []any never need it.
func AsSequence(v any) ([]any, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return items, nil
	default:
		return nil, ErrNotSequence
	}
}
