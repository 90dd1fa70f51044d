package seq

import "cmp"

// ConstIterator is a read-only random-access cursor over a contiguous
// element range. It captures a view of the container's live elements at
// creation time; structural mutation of the container invalidates it
// (detected in seqdebug builds, see package docs).
//
// Iterators are values. Stepping methods return a new iterator rather
// than mutating in place:
//
//	for it := list.Begin().Const(); it.Valid(); it = it.Next() {
//		use(it.Value())
//	}
//
// The position one past the last element is reachable but not
// dereferenceable, like a slice's len index.
type ConstIterator[T any] struct {
	s   []T
	i   int
	dbg iterDebug
}

// Value returns the element at the iterator's position.
func (it ConstIterator[T]) Value() T {
	it.dbg.checkDeref(it.i, len(it.s))
	return it.s[it.i]
}

// Index returns the iterator's position as an offset from the start of
// the container.
func (it ConstIterator[T]) Index() int {
	return it.i
}

// Valid reports whether the iterator points at a dereferenceable
// position. The end position and the zero-value iterator are not valid.
func (it ConstIterator[T]) Valid() bool {
	return it.i >= 0 && it.i < len(it.s)
}

// Next returns an iterator advanced by one position.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	return it.Add(1)
}

// Prev returns an iterator moved back by one position.
func (it ConstIterator[T]) Prev() ConstIterator[T] {
	return it.Add(-1)
}

// Add returns an iterator offset by n positions, which may be negative.
// The result must lie within [begin, end].
func (it ConstIterator[T]) Add(n int) ConstIterator[T] {
	it.dbg.checkPos(it.i+n, len(it.s))
	it.i += n
	return it
}

// Sub returns the signed distance between two iterators of the same
// container.
func (it ConstIterator[T]) Sub(o ConstIterator[T]) int {
	it.dbg.checkSame(o.dbg)
	return it.i - o.i
}

// Equal reports whether both iterators reference the same position of
// the same container.
func (it ConstIterator[T]) Equal(o ConstIterator[T]) bool {
	it.dbg.checkSame(o.dbg)
	return it.i == o.i
}

// Less reports whether it points to an earlier position than o.
func (it ConstIterator[T]) Less(o ConstIterator[T]) bool {
	it.dbg.checkSame(o.dbg)
	return it.i < o.i
}

// Compare three-way compares the positions of two iterators of the same
// container.
func (it ConstIterator[T]) Compare(o ConstIterator[T]) int {
	it.dbg.checkSame(o.dbg)
	return cmp.Compare(it.i, o.i)
}

// Iterator is the mutable counterpart of ConstIterator. All position
// logic lives on ConstIterator; Iterator only widens element access back
// to mutable, so the bounds checks exist exactly once.
type Iterator[T any] struct {
	ConstIterator[T]
}

// Const converts to the read-only iterator. There is no conversion in
// the other direction.
func (it Iterator[T]) Const() ConstIterator[T] {
	return it.ConstIterator
}

// Ptr returns a pointer to the element at the iterator's position. The
// pointer stays valid until the container is structurally mutated.
func (it Iterator[T]) Ptr() *T {
	it.dbg.checkDeref(it.i, len(it.s))
	return &it.s[it.i]
}

// Set overwrites the element at the iterator's position.
func (it Iterator[T]) Set(v T) {
	*it.Ptr() = v
}

// Next returns an iterator advanced by one position.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{it.ConstIterator.Next()}
}

// Prev returns an iterator moved back by one position.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{it.ConstIterator.Prev()}
}

// Add returns an iterator offset by n positions, which may be negative.
func (it Iterator[T]) Add(n int) Iterator[T] {
	return Iterator[T]{it.ConstIterator.Add(n)}
}

// Sub returns the signed distance between two iterators of the same
// container.
func (it Iterator[T]) Sub(o Iterator[T]) int {
	return it.ConstIterator.Sub(o.ConstIterator)
}

// Equal reports whether both iterators reference the same position of
// the same container.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.ConstIterator.Equal(o.ConstIterator)
}

// Less reports whether it points to an earlier position than o.
func (it Iterator[T]) Less(o Iterator[T]) bool {
	return it.ConstIterator.Less(o.ConstIterator)
}

// Compare three-way compares the positions of two iterators of the same
// container.
func (it Iterator[T]) Compare(o Iterator[T]) int {
	return it.ConstIterator.Compare(o.ConstIterator)
}

func makeIter[T any](data []T, i int, owner *containerDebug) Iterator[T] {
	return Iterator[T]{ConstIterator[T]{s: data, i: i, dbg: makeIterDebug(owner)}}
}

func makeConstIter[T any](data []T, i int, owner *containerDebug) ConstIterator[T] {
	return ConstIterator[T]{s: data, i: i, dbg: makeIterDebug(owner)}
}
