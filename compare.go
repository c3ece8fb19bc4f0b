package option

import "cmp"

// Options order as a whole: an empty option sorts strictly before any
// engaged one, two empty options are equal, and two engaged options
// order by their held values. Every relation below derives from that
// single rule.

// Equal reports whether a and b are both empty or hold equal values.
func Equal[T comparable](a, b Option[T]) bool {
	if a.isSome && b.isSome {
		return a.value == b.value
	}
	return a.isSome == b.isSome
}

// EqualValue reports whether o holds a value equal to v. An empty
// option never equals a bare value. The comparison works directly on
// the held value; v is not wrapped or copied.
func EqualValue[T comparable](o Option[T], v T) bool {
	return o.isSome && o.value == v
}

// EqualFunc is Equal with the value comparison supplied by eq, which
// allows element types that are not comparable and comparisons across
// two different element types.
func EqualFunc[T, U any](a Option[T], b Option[U], eq func(T, U) bool) bool {
	if a.isSome && b.isSome {
		return eq(a.value, b.value)
	}
	return a.isSome == b.isSome
}

// Compare orders a against b, returning -1, 0 or +1.
func Compare[T cmp.Ordered](a, b Option[T]) int {
	switch {
	case a.isSome && b.isSome:
		return cmp.Compare(a.value, b.value)
	case a.isSome:
		return 1
	case b.isSome:
		return -1
	default:
		return 0
	}
}

// CompareValue orders o against a bare value: an empty option sorts
// before v, an engaged one orders by its held value. v is not wrapped
// or copied. Negate the result for the value-on-the-left ordering.
func CompareValue[T cmp.Ordered](o Option[T], v T) int {
	if !o.isSome {
		return -1
	}
	return cmp.Compare(o.value, v)
}

// CompareFunc is Compare with the value ordering supplied by compare.
func CompareFunc[T, U any](a Option[T], b Option[U], compare func(T, U) int) int {
	switch {
	case a.isSome && b.isSome:
		return compare(a.value, b.value)
	case a.isSome:
		return 1
	case b.isSome:
		return -1
	default:
		return 0
	}
}

// Less reports whether a orders strictly before b. It is a valid less
// function for sorting slices of options.
func Less[T cmp.Ordered](a, b Option[T]) bool {
	return Compare(a, b) < 0
}

type noValueMarker struct{}

// NoValue is a process-wide marker for "no value held". It stands in
// for an empty Option of any element type in equality and ordering,
// without constructing one.
var NoValue noValueMarker

// Is reports whether the option is in the state named by the marker,
// as in x.Is(NoValue). It is equivalent to IsNone.
func (x Option[T]) Is(noValueMarker) bool {
	return !x.isSome
}

// CompareNoValue orders o against the NoValue marker: 0 when o is
// empty, +1 when it holds a value.
func CompareNoValue[T any](o Option[T]) int {
	if o.isSome {
		return 1
	}
	return 0
}
