// Package derive holds the behavior every archetype forwards to its
// representation. Each helper looks at the representation only, so the marker
// type of the calling archetype never influences the result.
package derive

import (
	"fmt"
	"log/slog"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is the set of representations that support the arithmetic the
// amount and instant archetypes expose. The underlying-type form admits named
// representations such as `type Cents int64`.
type Number interface {
	constraints.Integer | constraints.Float
}

// Equal reports whether a and b are the same representation under the
// ordering of cmp.Compare: == for every value except that NaN equals NaN.
// It accepts any comparable representation, so the NaN rule is applied
// only when the representation is itself a float.
func Equal[R comparable](a, b R) bool {
	if a == b {
		return true
	}

	return IsNaN(a) && IsNaN(b)
}

// IsNaN reports whether repr is a floating-point NaN.
func IsNaN[R any](repr R) bool {
	rv := reflect.ValueOf(repr)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	default:
		return false
	}
}

// Format writes repr to s exactly as fmt would format the bare value for the
// same verb, flags, width and precision.
func Format[R any](s fmt.State, verb rune, repr R) {
	_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), repr)
}

// String returns the default textual form of repr.
func String[R any](repr R) string {
	return fmt.Sprint(repr)
}

// LogValue converts repr into a slog.Value of the matching kind. Named
// representations are resolved through their underlying kind so that a
// `type Cents uint64` still logs as a number rather than as an opaque value.
func LogValue[R any](repr R) slog.Value {
	rv := reflect.ValueOf(repr)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return slog.Int64Value(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return slog.Uint64Value(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return slog.Float64Value(rv.Float())
	case reflect.String:
		return slog.StringValue(rv.String())
	case reflect.Bool:
		return slog.BoolValue(rv.Bool())
	default:
		return slog.AnyValue(repr)
	}
}
