// Package display lets a marker type choose how values tagged with it are
// rendered, without changing the default formatting of those values.
//
// A wrapper's own String and Format always render the bare representation.
// When a marker type implements Displayer for a wrapper type, the wrapper's
// Display method returns a Proxy that renders through the marker instead:
//
//	type Cents struct{}
//	type Money = amount.Value[Cents, uint64]
//
//	func (Cents) Display(s fmt.State, m Money) {
//		fmt.Fprintf(s, "$%d.%02d", m.Get()/100, m.Get()%100)
//	}
//
//	fmt.Println(amount.New[Cents](uint64(1005)).Display()) // $10.05
package display

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Displayer is implemented by marker types that render values of T.
// It is called on the zero value of the marker, so implementations must not
// depend on marker state.
type Displayer[T any] interface {
	Display(s fmt.State, value T)
}

// Proxy formats a value through the Displayer implemented by Tag, or through
// the value's own formatting when Tag does not implement Displayer[T].
type Proxy[Tag any, T any] struct {
	value T
}

// NewProxy wraps value for tag-directed formatting.
func NewProxy[Tag any, T any](value T) Proxy[Tag, T] {
	return Proxy[Tag, T]{value: value}
}

// Value returns the wrapped value.
func (p Proxy[Tag, T]) Value() T { //nolint:ireturn
	return p.value
}

// Format implements fmt.Formatter.
func (p Proxy[Tag, T]) Format(s fmt.State, verb rune) {
	var tag Tag

	if d, ok := any(tag).(Displayer[T]); ok {
		d.Display(s, p.value)

		return
	}

	_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), p.value)
}

// String implements fmt.Stringer.
func (p Proxy[Tag, T]) String() string {
	return fmt.Sprint(p)
}

// Localized writes args formatted according to format using the number
// conventions of lang, e.g. digit grouping: 1234567 renders as "1,234,567"
// for language.English and "1.234.567" for language.German. It is intended
// for use inside Displayer implementations.
func Localized(w io.Writer, lang language.Tag, format string, args ...any) error {
	_, err := io.WriteString(w, message.NewPrinter(lang).Sprintf(format, args...))

	return err
}
