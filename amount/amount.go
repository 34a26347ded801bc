// Package amount provides Value, a quantity tagged at compile time with its
// unit.
//
// Amounts of the same unit add, subtract and scale like their
// representation. Amounts of different units do not mix, and there is no way
// to divide one amount by another or to multiply two amounts together.
//
//	type Cents struct{}
//	type Money = amount.Value[Cents, uint64]
//
//	total := amount.New[Cents](uint64(500)).Add(amount.New[Cents](uint64(500)))
//	half := total.Div(2)
//
// The unit parameter is never stored: a Value has the size and layout of its
// representation, and every arithmetic operation behaves exactly like the
// representation's operator. Integer overflow wraps, integer division by zero
// panics, and float division by zero yields an infinity or NaN.
//
// Equals, Compare and LessThan share one ordering, that of cmp.Compare: for
// float representations NaN sorts before every other amount and equals
// itself, and -0 equals +0. The == operator still follows Go's own float
// comparison, under which NaN is unequal to itself.
package amount

import (
	"cmp"
	"fmt"
	"hash"
	"log/slog"

	"github.com/amp-labs/phantom/collectable"
	"github.com/amp-labs/phantom/compare"
	"github.com/amp-labs/phantom/display"
	"github.com/amp-labs/phantom/hashing"
	"github.com/amp-labs/phantom/internal/derive"
)

// Value is an amount of Unit, represented by R.
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

// New wraps repr as an amount of Unit. It can be used to declare package level
// constants:
//
//	var AstronomicalUnit = amount.New[Meters](uint64(149_597_870_700))
func New[Unit any, R derive.Number](repr R) Value[Unit, R] {
	return Value[Unit, R]{repr: repr}
}

// Get returns the representation.
func (v Value[U, R]) Get() R { //nolint:ireturn
	return v.repr
}

// Unit returns the zero value of the unit type. It is useful when the unit
// carries presentation, such as a String method.
func (v Value[U, R]) Unit() U { //nolint:ireturn
	var unit U

	return unit
}

// Equals reports whether both amounts have equal representations.
func (v Value[U, R]) Equals(other Value[U, R]) bool {
	return derive.Equal(v.repr, other.repr)
}

// Compare orders amounts by representation, like cmp.Compare.
func (v Value[U, R]) Compare(other Value[U, R]) int {
	return cmp.Compare(v.repr, other.repr)
}

// LessThan reports whether v is smaller than other.
func (v Value[U, R]) LessThan(other Value[U, R]) bool {
	return cmp.Less(v.repr, other.repr)
}

// Add returns v + other.
func (v Value[U, R]) Add(other Value[U, R]) Value[U, R] {
	v.AddAssign(other)

	return v
}

// Sub returns v - other.
func (v Value[U, R]) Sub(other Value[U, R]) Value[U, R] {
	v.SubAssign(other)

	return v
}

// Mul returns v scaled by factor.
func (v Value[U, R]) Mul(factor R) Value[U, R] {
	v.MulAssign(factor)

	return v
}

// Div returns v divided by divisor.
func (v Value[U, R]) Div(divisor R) Value[U, R] {
	return Value[U, R]{repr: v.repr / divisor}
}

// AddAssign adds other to v in place.
func (v *Value[U, R]) AddAssign(other Value[U, R]) {
	v.repr += other.repr
}

// SubAssign subtracts other from v in place.
func (v *Value[U, R]) SubAssign(other Value[U, R]) {
	v.repr -= other.repr
}

// MulAssign scales v by factor in place.
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
// implements display.Displayer for this amount type.
func (v Value[U, R]) Display() display.Proxy[U, Value[U, R]] {
	return display.NewProxy[U](v)
}
