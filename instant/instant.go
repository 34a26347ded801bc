// Package instant provides Value, a point on a one-dimensional timeline tagged
// at compile time with the unit of that timeline.
//
// Instants are not closed under addition: adding two dates is meaningless.
// The difference of two instants is an amount.Value of the same unit, and an
// instant can be moved forwards or backwards by such an amount:
//
//	type Years struct{}
//
//	ad2016 := instant.New[Years](uint64(2016))
//	ad2020 := instant.New[Years](uint64(2020))
//
//	ad2020.Sub(ad2016)                              // amount.Value[Years, uint64] of 4
//	ad2016.SubAmount(amount.New[Years](uint64(1))) // instant.Value[Years, uint64] of 2015
//
// All arithmetic keeps the representation type: the difference of two
// instants over R is an amount over R, and only amounts over R can offset an
// instant over R. Failure behavior is exactly that of R's operators.
//
// Equals, Compare, LessThan, Before and After share one ordering, that of
// cmp.Compare: for float representations NaN is earlier than every other
// instant and equal to itself, and -0 equals +0. The == operator still
// follows Go's own float comparison.
package instant

import (
	"cmp"
	"fmt"
	"hash"
	"log/slog"

	"github.com/amp-labs/phantom/amount"
	"github.com/amp-labs/phantom/collectable"
	"github.com/amp-labs/phantom/compare"
	"github.com/amp-labs/phantom/display"
	"github.com/amp-labs/phantom/hashing"
	"github.com/amp-labs/phantom/internal/derive"
)

// Value is an instant on a timeline measured in Unit, represented by R.
type Value[Unit any, R derive.Number] struct {
	repr R
}

type marker struct{}

var (
	_ compare.Ordered[Value[marker, int]]         = Value[marker, int]{}
	_ collectable.Collectable[Value[marker, int]] = Value[marker, int]{}
	_ hashing.Hashable                            = Value[marker, int]{}
	_ fmt.Formatter                               = Value[marker, int]{}
	_ fmt.Stringer                                = Value[marker, int]{}
	_ slog.LogValuer                              = Value[marker, int]{}
)

// New wraps repr as an instant on the Unit timeline.
func New[Unit any, R derive.Number](repr R) Value[Unit, R] {
	return Value[Unit, R]{repr: repr}
}

// Get returns the representation.
func (v Value[U, R]) Get() R { //nolint:ireturn
	return v.repr
}

// Unit returns the zero value of the unit type.
func (v Value[U, R]) Unit() U { //nolint:ireturn
	var unit U

	return unit
}

// Equals reports whether both instants have equal representations.
func (v Value[U, R]) Equals(other Value[U, R]) bool {
	return derive.Equal(v.repr, other.repr)
}

// Compare orders instants by representation, like cmp.Compare.
func (v Value[U, R]) Compare(other Value[U, R]) int {
	return cmp.Compare(v.repr, other.repr)
}

// LessThan reports whether v is earlier than other.
func (v Value[U, R]) LessThan(other Value[U, R]) bool {
	return cmp.Less(v.repr, other.repr)
}

// Before reports whether v is earlier than other.
func (v Value[U, R]) Before(other Value[U, R]) bool {
	return cmp.Less(v.repr, other.repr)
}

// After reports whether v is later than other.
func (v Value[U, R]) After(other Value[U, R]) bool {
	return cmp.Less(other.repr, v.repr)
}

// Sub returns the amount of Unit elapsed from other to v.
func (v Value[U, R]) Sub(other Value[U, R]) amount.Value[U, R] {
	return amount.New[U](v.repr - other.repr)
}

// Add returns v moved forwards by offset.
func (v Value[U, R]) Add(offset amount.Value[U, R]) Value[U, R] {
	v.AddAssign(offset)

	return v
}

// SubAmount returns v moved backwards by offset.
func (v Value[U, R]) SubAmount(offset amount.Value[U, R]) Value[U, R] {
	v.SubAssign(offset)

	return v
}

// AddAssign moves v forwards by offset in place.
func (v *Value[U, R]) AddAssign(offset amount.Value[U, R]) {
	v.repr += offset.Get()
}

// SubAssign moves v backwards by offset in place.
func (v *Value[U, R]) SubAssign(offset amount.Value[U, R]) {
	v.repr -= offset.Get()
}

// Mul returns v with its representation scaled by factor, e.g. to change the
// resolution of the underlying clock.
func (v Value[U, R]) Mul(factor R) Value[U, R] {
	v.MulAssign(factor)

	return v
}

// Div returns v with its representation divided by divisor.
func (v Value[U, R]) Div(divisor R) Value[U, R] {
	return Value[U, R]{repr: v.repr / divisor}
}

// MulAssign scales the representation of v by factor in place.
func (v *Value[U, R]) MulAssign(factor R) {
	v.repr *= factor
}

// UpdateHash implements hashing.Hashable.
func (v Value[U, R]) UpdateHash(h hash.Hash) error {
	return hashing.UpdateValue(h, v.repr)
}

// String returns the representation's default textual form.
func (v Value[U, R]) String() string {
	return derive.String(v.repr)
}

// Format implements fmt.Formatter, formatting the representation verbatim.
func (v Value[U, R]) Format(s fmt.State, verb rune) {
	derive.Format(s, verb, v.repr)
}

// LogValue implements slog.LogValuer.
func (v Value[U, R]) LogValue() slog.Value {
	return derive.LogValue(v.repr)
}

// Display returns a formatter that renders v through Unit when Unit
// implements display.Displayer for this instant type.
func (v Value[U, R]) Display() display.Proxy[U, Value[U, R]] {
	return display.NewProxy[U](v)
}
