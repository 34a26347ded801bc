// Package collectable names the method set a value needs to be stored in a
// hash-keyed container: a hash that agrees with equality. Every archetype in
// this module is Collectable.
package collectable

import (
	"hash"

	"github.com/amp-labs/phantom/compare"
	"github.com/amp-labs/phantom/hashing"
)

// Collectable is an interface that combines the Hashable and
// Comparable interfaces. This is useful for objects that need
// to be stored in a Map or Set, where uniqueness is determined by
// the hashing value, and collisions are resolved by comparing
// the objects.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}

// comparableWrapper wraps a comparable value and implements Collectable[T].
type comparableWrapper[T comparable] struct {
	value T
}

// UpdateHash implements hashing.Hashable via hashing.UpdateValue. Scalars,
// arrays and structs of them are supported; an interface-typed T holding a
// slice, map or func reports hashing.ErrUnsupportedType.
func (w *comparableWrapper[T]) UpdateHash(h hash.Hash) error {
	return hashing.UpdateValue(h, w.value)
}

// Equals implements compare.Comparable[T] by using the == operator.
func (w *comparableWrapper[T]) Equals(other T) bool {
	return w.value == other
}

// FromComparable creates a Collectable[T] from any comparable value.
func FromComparable[T comparable](value T) Collectable[T] { //nolint:ireturn
	return &comparableWrapper[T]{value: value}
}
