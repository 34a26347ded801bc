// Package id provides Value, an opaque identifier tagged at compile time with
// the kind of entity it identifies.
//
// Identifiers of different entities never mix, even when they share a
// representation:
//
//	type User struct{}
//	type Order struct{}
//
//	type UserID = id.Value[User, uint64]
//	type OrderID = id.Value[Order, uint64]
//
//	var u UserID = id.New[User](uint64(1))
//	var o OrderID = u // does not compile
//
// Any comparable type can represent an identifier: integers, strings, UUIDs,
// fixed-size arrays or small structs. Identifiers whose representation is
// ordered can also be ordered with Compare, Less and Sort.
//
// The entity parameter is never stored, so a Value has exactly the size and
// layout of its representation. Equality, ordering, hashing, formatting and
// logging all look at the representation alone. Equals and the ordering
// functions follow cmp.Compare, so a NaN float identifier equals itself.
// Identifiers deliberately support no arithmetic.
package id

import (
	"cmp"
	"fmt"
	"hash"
	"log/slog"
	"slices"

	"github.com/amp-labs/phantom/collectable"
	"github.com/amp-labs/phantom/compare"
	"github.com/amp-labs/phantom/display"
	"github.com/amp-labs/phantom/hashing"
	"github.com/amp-labs/phantom/internal/derive"
	"github.com/google/uuid"
)

// Value is an identifier of an Entity, represented by R.
type Value[Entity any, R comparable] struct {
	repr R
}

type marker struct{}

var (
	_ compare.Comparable[Value[marker, int]]      = Value[marker, int]{}
	_ collectable.Collectable[Value[marker, int]] = Value[marker, int]{}
	_ hashing.Hashable                            = Value[marker, int]{}
	_ fmt.Formatter                               = Value[marker, int]{}
	_ fmt.Stringer                                = Value[marker, int]{}
	_ slog.LogValuer                              = Value[marker, int]{}
)

// New wraps repr as an identifier of Entity.
func New[Entity any, R comparable](repr R) Value[Entity, R] {
	return Value[Entity, R]{repr: repr}
}

// NewUUID forges a fresh random identifier of Entity, backed by a version 4
// UUID.
func NewUUID[Entity any]() Value[Entity, uuid.UUID] {
	return New[Entity](uuid.New())
}

// Get returns the representation.
func (v Value[E, R]) Get() R { //nolint:ireturn
	return v.repr
}

// Equals reports whether both identifiers have equal representations.
func (v Value[E, R]) Equals(other Value[E, R]) bool {
	return derive.Equal(v.repr, other.repr)
}

// Compare orders two identifiers by representation, like cmp.Compare.
func Compare[E any, R cmp.Ordered](a, b Value[E, R]) int {
	return cmp.Compare(a.repr, b.repr)
}

// Less reports whether a sorts before b.
func Less[E any, R cmp.Ordered](a, b Value[E, R]) bool {
	return cmp.Less(a.repr, b.repr)
}

// Sort sorts ids in place in ascending order of representation.
func Sort[E any, R cmp.Ordered](ids []Value[E, R]) {
	slices.SortFunc(ids, Compare[E, R])
}

// UpdateHash implements hashing.Hashable.
func (v Value[E, R]) UpdateHash(h hash.Hash) error {
	return hashing.UpdateValue(h, v.repr)
}

// String returns the representation's default textual form.
func (v Value[E, R]) String() string {
	return derive.String(v.repr)
}

// Format implements fmt.Formatter, formatting the representation verbatim.
func (v Value[E, R]) Format(s fmt.State, verb rune) {
	derive.Format(s, verb, v.repr)
}

// LogValue implements slog.LogValuer.
func (v Value[E, R]) LogValue() slog.Value {
	return derive.LogValue(v.repr)
}

// Display returns a formatter that renders v through Entity when Entity
// implements display.Displayer for this identifier type.
func (v Value[E, R]) Display() display.Proxy[E, Value[E, R]] {
	return display.NewProxy[E](v)
}
