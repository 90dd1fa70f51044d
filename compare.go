package seq

import (
	"cmp"
	"slices"
)

// View is the minimal read surface the comparison functions work
// against. BoundedList, DynArray and the Slice adapter all satisfy it,
// so a container compares against any sequence, not just its own kind.
type View[T any] interface {
	Len() int
	Data() []T
}

// Slice adapts a plain slice to View.
type Slice[T any] []T

// Len returns the number of elements.
func (s Slice[T]) Len() int { return len(s) }

// Data returns the underlying slice.
func (s Slice[T]) Data() []T { return s }

// Equal reports whether a and b have the same length and equal elements
// in order.
func Equal[T comparable](a, b View[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is Equal with a custom element predicate. The element types
// of the two sequences may differ.
func EqualFunc[T, U any](a View[T], b View[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}

// Compare lexicographically compares a and b element-wise, returning
// -1, 0 or +1. A shorter sequence that is a prefix of the longer one
// orders first.
func Compare[T cmp.Ordered](a, b View[T]) int {
	return slices.Compare(a.Data(), b.Data())
}

// CompareFunc is Compare with a custom element comparison.
func CompareFunc[T, U any](a View[T], b View[U], compare func(T, U) int) int {
	return slices.CompareFunc(a.Data(), b.Data(), compare)
}

// Less reports whether a orders lexicographically before b.
func Less[T cmp.Ordered](a, b View[T]) bool {
	return Compare(a, b) < 0
}
