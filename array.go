package seq

import "iter"

// DynArray is a fixed-length array backed by a single allocation from
// an Allocator. The length is set at construction and never changes in
// place; there is no push, pop, insert or erase. Copy assignment, move
// and swap consult the allocator's propagation policy.
//
// The zero value is an empty array using the heap allocator. An empty
// array holds no allocation: Data is nil exactly when Len is zero.
type DynArray[T any] struct {
	buf   []T
	alloc Allocator[T]
	dbg   containerDebug
}

// NewArray creates a heap-backed array of n zero-value elements.
func NewArray[T any](n int) *DynArray[T] {
	return NewArrayIn[T](HeapAllocator[T]{}, n)
}

// NewArrayIn creates an array of n zero-value elements backed by alloc.
func NewArrayIn[T any](alloc Allocator[T], n int) *DynArray[T] {
	if n < 0 {
		panic("seq: negative count")
	}
	return &DynArray[T]{buf: alloc.Allocate(n), alloc: alloc}
}

// NewArrayFill creates a heap-backed array of n copies of v.
func NewArrayFill[T any](n int, v T) *DynArray[T] {
	return NewArrayFillIn(HeapAllocator[T]{}, n, v)
}

// NewArrayFillIn creates an array of n copies of v backed by alloc.
func NewArrayFillIn[T any](alloc Allocator[T], n int, v T) *DynArray[T] {
	a := NewArrayIn(alloc, n)
	fillValues(a.buf, v)
	return a
}

// ArrayOf creates a heap-backed array holding the given values.
func ArrayOf[T any](values ...T) *DynArray[T] {
	return ArrayOfIn(HeapAllocator[T]{}, values...)
}

// ArrayOfIn creates an array holding the given values, backed by alloc.
func ArrayOfIn[T any](alloc Allocator[T], values ...T) *DynArray[T] {
	a := NewArrayIn(alloc, len(values))
	copy(a.buf, values)
	return a
}

// NewArraySeeded creates a heap-backed array of n elements, the first
// min(n, len(seed)) copied from seed and the rest zero values.
func NewArraySeeded[T any](n int, seed []T) *DynArray[T] {
	a := NewArray[T](n)
	copy(a.buf, seed)
	return a
}

// NewArraySeededFill creates a heap-backed array of n elements, the
// first min(n, len(seed)) copied from seed and the rest copies of
// fallback.
func NewArraySeededFill[T any](n int, seed []T, fallback T) *DynArray[T] {
	a := NewArray[T](n)
	copySeeded(a.buf, seed, fallback)
	return a
}

// NewArrayFunc creates a heap-backed array of n elements produced by
// gen. If gen fails, the partial buffer is released and the error
// returned.
func NewArrayFunc[T any](n int, gen func(i int) (T, error)) (*DynArray[T], error) {
	return NewArrayFuncIn[T](HeapAllocator[T]{}, n, gen)
}

// NewArrayFuncIn creates an array of n elements produced by gen, backed
// by alloc. If gen fails, the buffer goes back to the allocator and the
// error is returned.
func NewArrayFuncIn[T any](alloc Allocator[T], n int, gen func(i int) (T, error)) (*DynArray[T], error) {
	a := NewArrayIn(alloc, n)
	if err := buildFunc(a.buf, gen); err != nil {
		alloc.Deallocate(a.buf)
		return nil, err
	}
	return a, nil
}

// Len returns the fixed element count.
func (a *DynArray[T]) Len() int { return len(a.buf) }

// Empty reports whether the array holds no elements.
func (a *DynArray[T]) Empty() bool { return len(a.buf) == 0 }

// Data returns the backing storage. It is nil exactly when the array is
// empty.
func (a *DynArray[T]) Data() []T { return a.buf }

// Allocator returns the allocator backing this array.
func (a *DynArray[T]) Allocator() Allocator[T] { return a.allocator() }

// At returns the element at index i, or ErrOutOfRange.
func (a *DynArray[T]) At(i int) (T, error) {
	if i < 0 || i >= len(a.buf) {
		var zero T
		return zero, ErrOutOfRange
	}
	return a.buf[i], nil
}

// Get returns a pointer to the element at index i, or nil when i is out
// of range. It never panics.
func (a *DynArray[T]) Get(i int) *T {
	if i < 0 || i >= len(a.buf) {
		return nil
	}
	return &a.buf[i]
}

// Ref returns a pointer to the element at index i, panicking when i is
// out of range.
func (a *DynArray[T]) Ref(i int) *T {
	if i < 0 || i >= len(a.buf) {
		panic("seq: index out of range")
	}
	return &a.buf[i]
}

// Set overwrites the element at index i, panicking when i is out of
// range.
func (a *DynArray[T]) Set(i int, v T) {
	*a.Ref(i) = v
}

// Front returns a pointer to the first element, panicking when the
// array is empty.
func (a *DynArray[T]) Front() *T { return a.Ref(0) }

// Back returns a pointer to the last element, panicking when the array
// is empty.
func (a *DynArray[T]) Back() *T { return a.Ref(len(a.buf) - 1) }

// Fill overwrites every element with a copy of v.
func (a *DynArray[T]) Fill(v T) {
	fillValues(a.buf, v)
}

// Clone returns a deep copy. The copy's allocator is chosen by the
// source allocator's select-on-copy hook; allocators without one are
// shared with the clone.
func (a *DynArray[T]) Clone() *DynArray[T] {
	alloc := selectOnCopy(a.allocator())
	c := NewArrayIn(alloc, len(a.buf))
	copy(c.buf, a.buf)
	return c
}

// CloneFunc returns a deep copy whose elements are produced by clone.
// If clone fails, the partial copy goes back to the allocator and the
// error is returned.
func (a *DynArray[T]) CloneFunc(clone func(T) (T, error)) (*DynArray[T], error) {
	alloc := selectOnCopy(a.allocator())
	c := NewArrayIn(alloc, len(a.buf))
	if err := cloneFunc(c.buf, a.buf, clone); err != nil {
		alloc.Deallocate(c.buf)
		return nil, err
	}
	return c, nil
}

// CopyFrom replaces the receiver's contents with a deep copy of src's.
// When the lengths already match, elements are assigned in place and no
// reallocation happens; otherwise the old buffer is released and a
// fresh one allocated. If src's allocator policy propagates on copy,
// the receiver adopts src's allocator first (and the old buffer is
// released through it, so propagating allocators must tolerate foreign
// buffers in Deallocate, which both built-in allocators do).
func (a *DynArray[T]) CopyFrom(src *DynArray[T]) {
	if a == src {
		return
	}
	if src.allocator().Policy().PropagateOnCopy {
		a.alloc = src.allocator()
	}
	if len(a.buf) == len(src.buf) {
		copy(a.buf, src.buf)
		return
	}
	alloc := a.allocator()
	alloc.Deallocate(a.buf)
	a.buf = alloc.Allocate(len(src.buf))
	copy(a.buf, src.buf)
	a.dbg.bump()
}

// Take releases the receiver's storage, steals src's buffer and length,
// and leaves src empty with a nil Data. No allocation or element copy
// happens. If src's allocator policy propagates on move, the receiver
// adopts src's allocator; otherwise the receiver's allocator must be
// able to own the stolen buffer.
func (a *DynArray[T]) Take(src *DynArray[T]) {
	if a == src {
		return
	}
	if src.allocator().Policy().PropagateOnMove {
		a.alloc = src.allocator()
	}
	a.allocator().Deallocate(a.buf)
	a.buf = src.buf
	src.buf = nil
	a.dbg.bump()
	src.dbg.bump()
}

// Swap exchanges the storage and lengths of two arrays in constant
// time. The allocators are exchanged only when the receiver's policy
// propagates on swap.
func (a *DynArray[T]) Swap(o *DynArray[T]) {
	if a.allocator().Policy().PropagateOnSwap {
		a.alloc, o.alloc = o.allocator(), a.allocator()
	}
	a.buf, o.buf = o.buf, a.buf
	a.dbg.bump()
	o.dbg.bump()
}

// Reset releases the storage and returns the array to the empty state.
// Unlike dropping the array, the object remains usable afterwards.
func (a *DynArray[T]) Reset() {
	a.allocator().Deallocate(a.buf)
	a.buf = nil
	a.dbg.bump()
}

// Begin returns an iterator to the first element. For an empty array it
// equals End.
func (a *DynArray[T]) Begin() Iterator[T] { return makeIter(a.buf, 0, &a.dbg) }

// End returns the iterator one past the last element.
func (a *DynArray[T]) End() Iterator[T] { return makeIter(a.buf, len(a.buf), &a.dbg) }

// IterAt returns an iterator to position i, which must lie in
// [0, Len()].
func (a *DynArray[T]) IterAt(i int) Iterator[T] {
	if i < 0 || i > len(a.buf) {
		panic("seq: position out of range")
	}
	return makeIter(a.buf, i, &a.dbg)
}

// Values returns a single-pass sequence over the elements.
func (a *DynArray[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.buf {
			if !yield(v) {
				return
			}
		}
	}
}

func (a *DynArray[T]) allocator() Allocator[T] {
	if a.alloc == nil {
		return HeapAllocator[T]{}
	}
	return a.alloc
}
