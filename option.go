// Package option provides a generic container that holds either a
// single value of its element type or nothing at all. The zero value
// of Option is the empty option, and the element type never needs to
// be constructible from nothing: emptiness is tracked next to the
// value, not encoded into it.
package option

import (
	"errors"
	"fmt"
)

// ErrNoValue is returned by Value and carried by the panics of Get and
// MustPtr when the option is empty.
var ErrNoValue = errors.New("option: no value")

// Option holds at most one value of type T.
//
// An empty Option always stores the zero T internally; every mutator
// restores that state when it removes a value, so no reference to a
// previously held value lingers after Reset, Take or Swap.
type Option[T any] struct {
	value  T
	isSome bool
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Some returns an Option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, isSome: true}
}

// FromPtr returns Some(*p), or an empty Option when p is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromTuple wraps a value and its comma-ok flag, as produced by map
// lookups and type assertions. The value is ignored when ok is false.
func FromTuple[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// IsSome reports whether the option holds a value.
func (x Option[T]) IsSome() bool {
	return x.isSome
}

// IsNone reports whether the option is empty.
func (x Option[T]) IsNone() bool {
	return !x.isSome
}

// Get returns the held value. It panics with ErrNoValue when the
// option is empty; callers that have not already checked IsSome
// should use Value instead.
func (x Option[T]) Get() T {
	if !x.isSome {
		panic(ErrNoValue)
	}
	return x.value
}

// Value returns the held value, or ErrNoValue when the option is
// empty. It never mutates the option.
func (x Option[T]) Value() (T, error) {
	if !x.isSome {
		var zero T
		return zero, ErrNoValue
	}
	return x.value, nil
}

// Unpack returns the held value and whether it is present.
func (x Option[T]) Unpack() (T, bool) {
	return x.value, x.isSome
}

// Ptr returns the address of the held value, or nil when the option
// is empty. Writing through the pointer changes the held value in
// place; it never changes whether a value is present.
func (x *Option[T]) Ptr() *T {
	if !x.isSome {
		return nil
	}
	return &x.value
}

// MustPtr is Ptr, except it panics with ErrNoValue instead of
// returning nil.
func (x *Option[T]) MustPtr() *T {
	if !x.isSome {
		panic(ErrNoValue)
	}
	return &x.value
}

// GetOr returns the held value, or def when the option is empty.
func (x Option[T]) GetOr(def T) T {
	if !x.isSome {
		return def
	}
	return x.value
}

// GetOrZero returns the held value, or the zero T when the option is
// empty.
func (x Option[T]) GetOrZero() T {
	// an empty option already stores the zero T
	return x.value
}

// GetOrElse returns the held value, or the result of fallback when
// the option is empty.
func (x Option[T]) GetOrElse(fallback func() T) T {
	if !x.isSome {
		return fallback()
	}
	return x.value
}

// Set stores value in the option. A value that is already present is
// overwritten in place.
func (x *Option[T]) Set(value T) {
	x.value = value
	x.isSome = true
}

// Reset drops the held value, if any, leaving the option empty. It is
// safe to call on an already empty option.
func (x *Option[T]) Reset() {
	var zero T
	x.value = zero
	x.isSome = false
}

// Take removes and returns the held value, leaving the option empty.
// The second result reports whether a value was present.
func (x *Option[T]) Take() (T, bool) {
	value, ok := x.value, x.isSome
	x.Reset()
	return value, ok
}

// Replace stores value and returns the option's previous contents.
func (x *Option[T]) Replace(value T) Option[T] {
	prev := *x
	x.Set(value)
	return prev
}

// Swap exchanges the contents of x and other, presence flags
// included. Swapping an engaged option with an empty one moves the
// value across and leaves the vacated side empty.
func (x *Option[T]) Swap(other *Option[T]) {
	if x == other {
		return
	}
	x.value, other.value = other.value, x.value
	x.isSome, other.isSome = other.isSome, x.isSome
}

// Or returns x when it holds a value, otherwise other.
func (x Option[T]) Or(other Option[T]) Option[T] {
	if x.isSome {
		return x
	}
	return other
}

// OrElse returns x when it holds a value, otherwise the result of
// fallback.
func (x Option[T]) OrElse(fallback func() Option[T]) Option[T] {
	if x.isSome {
		return x
	}
	return fallback()
}

// Filter returns x when it holds a value accepted by keep, otherwise
// an empty Option.
func (x Option[T]) Filter(keep func(T) bool) Option[T] {
	if x.isSome && keep(x.value) {
		return x
	}
	return None[T]()
}

// String renders the option as Some(v) or None.
func (x Option[T]) String() string {
	if !x.isSome {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", x.value)
}

// Map applies f to the held value. An empty option stays empty.
func Map[T, U any](x Option[T], f func(T) U) Option[U] {
	if !x.isSome {
		return None[U]()
	}
	return Some(f(x.value))
}

// AndThen applies f to the held value. An empty option stays empty,
// and f may itself produce an empty Option.
func AndThen[T, U any](x Option[T], f func(T) Option[U]) Option[U] {
	if !x.isSome {
		return None[U]()
	}
	return f(x.value)
}

// Flatten collapses a nested Option by one level.
func Flatten[T any](x Option[Option[T]]) Option[T] {
	if !x.isSome {
		return None[T]()
	}
	return x.value
}
