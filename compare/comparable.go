// Package compare provides the comparison interfaces shared by every archetype
// in this module, plus a few helpers that work on any of them.
package compare

import "slices"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Sortable extends Comparable with a strict ordering.
type Sortable[T any] interface {
	Comparable[T]

	LessThan(other T) bool
}

// Ordered is a Sortable that can also report a three-way comparison,
// following the cmp.Compare convention: negative when the receiver sorts
// first, zero when equal, positive otherwise.
type Ordered[T any] interface {
	Sortable[T]

	Compare(other T) int
}

// Max returns the greatest of the given values. Ties keep the earliest value.
func Max[T Sortable[T]](first T, rest ...T) T {
	result := first

	for _, v := range rest {
		if result.LessThan(v) {
			result = v
		}
	}

	return result
}

// Min returns the least of the given values. Ties keep the earliest value.
func Min[T Sortable[T]](first T, rest ...T) T {
	result := first

	for _, v := range rest {
		if v.LessThan(result) {
			result = v
		}
	}

	return result
}

// Sort sorts values in place in ascending order. The sort is stable, so
// values that compare equal keep their relative order.
func Sort[T Ordered[T]](values []T) {
	slices.SortStableFunc(values, func(a, b T) int {
		return a.Compare(b)
	})
}
