package seq

import (
	"errors"
	"iter"
)

// ErrOutOfRange is returned by At when the index does not address a live
// element.
var ErrOutOfRange = errors.New("seq: index out of range")

// BoundedList is a sequence whose capacity is fixed at construction.
// The backing storage is allocated exactly once and never moves, so
// element addresses are stable for the life of the list. Exceeding the
// capacity through the non-Try mutation methods is a caller bug and
// panics; the Try variants report failure through their results
// instead.
//
// Slots past Len are always zero values, so dropped elements never pin
// their referents.
type BoundedList[T any] struct {
	buf []T
	n   int
	dbg containerDebug
}

// NewBounded creates an empty list with the given capacity.
func NewBounded[T any](capacity int) *BoundedList[T] {
	if capacity < 0 {
		panic("seq: negative capacity")
	}
	return &BoundedList[T]{buf: make([]T, capacity)}
}

// NewBoundedLen creates a list holding count zero-value elements.
func NewBoundedLen[T any](capacity, count int) *BoundedList[T] {
	l := NewBounded[T](capacity)
	l.checkRoom(count)
	l.n = count
	return l
}

// NewBoundedFill creates a list holding count copies of v.
func NewBoundedFill[T any](capacity, count int, v T) *BoundedList[T] {
	l := NewBounded[T](capacity)
	l.checkRoom(count)
	fillValues(l.buf[:count], v)
	l.n = count
	return l
}

// BoundedOf creates a list holding the given values. len(values) must
// not exceed capacity.
func BoundedOf[T any](capacity int, values ...T) *BoundedList[T] {
	l := NewBounded[T](capacity)
	l.checkRoom(len(values))
	copy(l.buf, values)
	l.n = len(values)
	return l
}

// NewBoundedFunc creates a list holding count elements produced by gen.
// If gen fails, nothing is retained and the error is returned.
func NewBoundedFunc[T any](capacity, count int, gen func(i int) (T, error)) (*BoundedList[T], error) {
	l := NewBounded[T](capacity)
	l.checkRoom(count)
	if err := buildFunc(l.buf[:count], gen); err != nil {
		return nil, err
	}
	l.n = count
	return l, nil
}

// CollectBounded creates a list from a single-pass sequence. Elements
// beyond the capacity are silently dropped: the sequence has no length
// to check up front, so the list takes what fits and stops consuming.
func CollectBounded[T any](capacity int, s iter.Seq[T]) *BoundedList[T] {
	l := NewBounded[T](capacity)
	for v := range s {
		if l.n == capacity {
			break
		}
		l.buf[l.n] = v
		l.n++
	}
	return l
}

// WrapBounded builds a list over caller-supplied storage, with the first
// n elements live. The capacity is len(buf) and the list performs no
// allocation of its own, so a stack array can back it:
//
//	var buf [8]byte
//	l := seq.WrapBounded(buf[:], 0)
//
// The caller must not touch buf directly afterwards.
func WrapBounded[T any](buf []T, n int) *BoundedList[T] {
	if n < 0 || n > len(buf) {
		panic("seq: live count out of range")
	}
	clear(buf[n:])
	return &BoundedList[T]{buf: buf, n: n}
}

// Cap returns the fixed capacity.
func (l *BoundedList[T]) Cap() int { return len(l.buf) }

// Len returns the number of live elements.
func (l *BoundedList[T]) Len() int { return l.n }

// Empty reports whether the list holds no elements.
func (l *BoundedList[T]) Empty() bool { return l.n == 0 }

// Full reports whether the list is out of capacity.
func (l *BoundedList[T]) Full() bool { return l.n == len(l.buf) }

// Data returns a view of the live elements. The view is invalidated by
// structural mutation.
func (l *BoundedList[T]) Data() []T { return l.buf[:l.n] }

// At returns the element at index i, or ErrOutOfRange.
func (l *BoundedList[T]) At(i int) (T, error) {
	if i < 0 || i >= l.n {
		var zero T
		return zero, ErrOutOfRange
	}
	return l.buf[i], nil
}

// Get returns a pointer to the element at index i, or nil when i is out
// of range. It never panics.
func (l *BoundedList[T]) Get(i int) *T {
	if i < 0 || i >= l.n {
		return nil
	}
	return &l.buf[i]
}

// Ref returns a pointer to the element at index i, panicking when i is
// out of range.
func (l *BoundedList[T]) Ref(i int) *T {
	if i < 0 || i >= l.n {
		panic("seq: index out of range")
	}
	return &l.buf[i]
}

// Set overwrites the element at index i, panicking when i is out of
// range.
func (l *BoundedList[T]) Set(i int, v T) {
	*l.Ref(i) = v
}

// Front returns a pointer to the first element, panicking when the list
// is empty.
func (l *BoundedList[T]) Front() *T { return l.Ref(0) }

// Back returns a pointer to the last element, panicking when the list
// is empty.
func (l *BoundedList[T]) Back() *T { return l.Ref(l.n - 1) }

// Clone returns a deep copy with the same capacity and contents.
func (l *BoundedList[T]) Clone() *BoundedList[T] {
	c := NewBounded[T](len(l.buf))
	copy(c.buf, l.buf[:l.n])
	c.n = l.n
	return c
}

// CloneFunc returns a deep copy whose elements are produced by clone.
// If clone fails, no copy is retained and the error is returned.
func (l *BoundedList[T]) CloneFunc(clone func(T) (T, error)) (*BoundedList[T], error) {
	c := NewBounded[T](len(l.buf))
	if err := cloneFunc(c.buf[:l.n], l.buf[:l.n], clone); err != nil {
		return nil, err
	}
	c.n = l.n
	return c, nil
}

// Take replaces the receiver's contents with src's and empties src.
// src.Len() must not exceed the receiver's capacity.
func (l *BoundedList[T]) Take(src *BoundedList[T]) {
	if l == src {
		return
	}
	l.checkRoom(src.n)
	copy(l.buf[:src.n], src.buf[:src.n])
	if l.n > src.n {
		clear(l.buf[src.n:l.n])
	}
	l.n = src.n
	l.dbg.bump()
	src.Clear()
}

// Assign replaces all contents with the given values. len(values) must
// not exceed the capacity.
func (l *BoundedList[T]) Assign(values ...T) {
	l.checkRoom(len(values))
	l.Clear()
	copy(l.buf, values)
	l.n = len(values)
}

// AssignFill replaces all contents with count copies of v. count must
// not exceed the capacity.
func (l *BoundedList[T]) AssignFill(count int, v T) {
	l.checkRoom(count)
	l.Clear()
	fillValues(l.buf[:count], v)
	l.n = count
}

// AssignFunc replaces all contents with count elements produced by gen.
// The old contents are destroyed before gen runs, so if gen fails the
// list is left empty, not reverted. count must not exceed the capacity.
func (l *BoundedList[T]) AssignFunc(count int, gen func(i int) (T, error)) error {
	l.checkRoom(count)
	l.Clear()
	if err := buildFunc(l.buf[:count], gen); err != nil {
		return err
	}
	l.n = count
	return nil
}

// AssignSeq replaces all contents with the elements of a single-pass
// sequence, appending one at a time. It panics if the sequence outgrows
// the capacity.
func (l *BoundedList[T]) AssignSeq(s iter.Seq[T]) {
	l.Clear()
	for v := range s {
		l.Push(v)
	}
}

// Insert inserts v before position i and returns an iterator to it.
// The list must not be full.
func (l *BoundedList[T]) Insert(i int, v T) Iterator[T] {
	l.checkPos(i)
	l.checkRoom(l.n + 1)
	l.shiftRight(i, 1)
	l.buf[i] = v
	l.n++
	l.dbg.bump()
	return l.iterAt(i)
}

// TryInsert inserts v before position i. When the list is full it
// reports false and returns the end iterator, leaving the list
// unchanged.
func (l *BoundedList[T]) TryInsert(i int, v T) (Iterator[T], bool) {
	l.checkPos(i)
	if l.Full() {
		return l.End(), false
	}
	return l.Insert(i, v), true
}

// InsertFunc inserts an element produced by build before position i.
// The slot is opened first; if build fails the shift is rolled back and
// the list is exactly as it was before the call.
func (l *BoundedList[T]) InsertFunc(i int, build func() (T, error)) (Iterator[T], error) {
	l.checkPos(i)
	l.checkRoom(l.n + 1)
	l.shiftRight(i, 1)
	v, err := build()
	if err != nil {
		l.unshift(i, 1)
		l.dbg.bump()
		return l.End(), err
	}
	l.buf[i] = v
	l.n++
	l.dbg.bump()
	return l.iterAt(i), nil
}

// InsertN inserts count copies of v before position i and returns an
// iterator to the first inserted element (or to i when count is zero).
func (l *BoundedList[T]) InsertN(i, count int, v T) Iterator[T] {
	l.checkPos(i)
	l.checkCount(count)
	l.checkRoom(l.n + count)
	l.shiftRight(i, count)
	fillValues(l.buf[i:i+count], v)
	l.n += count
	l.dbg.bump()
	return l.iterAt(i)
}

// TryInsertN inserts count copies of v before position i. When the
// insertion would exceed the capacity it reports false and returns the
// end iterator, leaving the list unchanged.
func (l *BoundedList[T]) TryInsertN(i, count int, v T) (Iterator[T], bool) {
	l.checkPos(i)
	l.checkCount(count)
	if l.n+count > len(l.buf) {
		return l.End(), false
	}
	return l.InsertN(i, count, v), true
}

// InsertNFunc inserts count elements produced by gen before position i.
// If gen fails the already-built elements are destroyed and the shift
// is rolled back, leaving the list exactly as it was before the call.
func (l *BoundedList[T]) InsertNFunc(i, count int, gen func(k int) (T, error)) (Iterator[T], error) {
	l.checkPos(i)
	l.checkCount(count)
	l.checkRoom(l.n + count)
	l.shiftRight(i, count)
	for k := 0; k < count; k++ {
		v, err := gen(k)
		if err != nil {
			l.unshift(i, count)
			l.dbg.bump()
			return l.End(), err
		}
		l.buf[i+k] = v
	}
	l.n += count
	l.dbg.bump()
	return l.iterAt(i), nil
}

// InsertSlice inserts a copy of vs before position i and returns an
// iterator to the first inserted element (or to i when vs is empty).
func (l *BoundedList[T]) InsertSlice(i int, vs []T) Iterator[T] {
	l.checkPos(i)
	l.checkRoom(l.n + len(vs))
	l.shiftRight(i, len(vs))
	copy(l.buf[i:], vs)
	l.n += len(vs)
	l.dbg.bump()
	return l.iterAt(i)
}

// TryInsertSlice inserts a copy of vs before position i. When the
// insertion would exceed the capacity it reports false and returns the
// end iterator, leaving the list unchanged.
func (l *BoundedList[T]) TryInsertSlice(i int, vs []T) (Iterator[T], bool) {
	l.checkPos(i)
	if l.n+len(vs) > len(l.buf) {
		return l.End(), false
	}
	return l.InsertSlice(i, vs), true
}

// InsertSeq inserts the elements of a single-pass sequence before
// position i, opening one slot per element as it arrives. It panics if
// the sequence outgrows the capacity.
func (l *BoundedList[T]) InsertSeq(i int, s iter.Seq[T]) Iterator[T] {
	l.checkPos(i)
	start := i
	for v := range s {
		l.checkRoom(l.n + 1)
		l.shiftRight(i, 1)
		l.buf[i] = v
		l.n++
		i++
	}
	l.dbg.bump()
	return l.iterAt(start)
}

// TryInsertSeq inserts the elements of a single-pass sequence before
// position i. If the capacity runs out partway, the partial insert is
// erased, the end iterator is returned and ok is false; the list is
// then exactly as it was before the call.
func (l *BoundedList[T]) TryInsertSeq(i int, s iter.Seq[T]) (Iterator[T], bool) {
	l.checkPos(i)
	start := i
	for v := range s {
		if l.Full() {
			l.EraseRange(start, i)
			return l.End(), false
		}
		l.shiftRight(i, 1)
		l.buf[i] = v
		l.n++
		i++
	}
	l.dbg.bump()
	return l.iterAt(start), true
}

// Push appends v and returns a pointer to the stored element. The list
// must not be full.
func (l *BoundedList[T]) Push(v T) *T {
	l.checkRoom(l.n + 1)
	l.buf[l.n] = v
	l.n++
	l.dbg.bump()
	return &l.buf[l.n-1]
}

// TryPush appends v, returning nil when the list is full and leaving it
// unchanged.
func (l *BoundedList[T]) TryPush(v T) *T {
	if l.Full() {
		return nil
	}
	return l.Push(v)
}

// PushFunc appends an element produced by build. The length is not
// bumped until build succeeds, so a failed build leaves the list
// untouched.
func (l *BoundedList[T]) PushFunc(build func() (T, error)) (*T, error) {
	l.checkRoom(l.n + 1)
	v, err := build()
	if err != nil {
		return nil, err
	}
	return l.Push(v), nil
}

// Pop removes and returns the last element, panicking when the list is
// empty.
func (l *BoundedList[T]) Pop() T {
	if l.n == 0 {
		panic("seq: pop from empty list")
	}
	l.n--
	v := l.buf[l.n]
	clear(l.buf[l.n : l.n+1])
	l.dbg.bump()
	return v
}

// TryPop removes and returns the last element, reporting false when the
// list is empty.
func (l *BoundedList[T]) TryPop() (T, bool) {
	if l.n == 0 {
		var zero T
		return zero, false
	}
	return l.Pop(), true
}

// Erase removes the element at position i, shifts the remainder left
// and returns an iterator to the element that followed it.
func (l *BoundedList[T]) Erase(i int) Iterator[T] {
	return l.EraseRange(i, i+1)
}

// EraseRange removes the elements in [first, last), shifts the
// remainder left and returns an iterator to the element that followed
// the removed range.
func (l *BoundedList[T]) EraseRange(first, last int) Iterator[T] {
	if first < 0 || first > last || last > l.n {
		panic("seq: invalid erase range")
	}
	d := last - first
	copy(l.buf[first:], l.buf[last:l.n])
	clear(l.buf[l.n-d : l.n])
	l.n -= d
	l.dbg.bump()
	return l.iterAt(first)
}

// Clear removes all elements.
func (l *BoundedList[T]) Clear() {
	clear(l.buf[:l.n])
	l.n = 0
	l.dbg.bump()
}

// Swap exchanges the contents, lengths and capacities of two lists in
// constant time.
func (l *BoundedList[T]) Swap(o *BoundedList[T]) {
	l.buf, o.buf = o.buf, l.buf
	l.n, o.n = o.n, l.n
	l.dbg.bump()
	o.dbg.bump()
}

// Begin returns an iterator to the first element. For an empty list it
// equals End.
func (l *BoundedList[T]) Begin() Iterator[T] { return l.iterAt(0) }

// End returns the iterator one past the last element.
func (l *BoundedList[T]) End() Iterator[T] { return l.iterAt(l.n) }

// IterAt returns an iterator to position i, which must lie in
// [0, Len()].
func (l *BoundedList[T]) IterAt(i int) Iterator[T] {
	l.checkPos(i)
	return l.iterAt(i)
}

// Values returns a single-pass sequence over the live elements.
func (l *BoundedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.buf[:l.n] {
			if !yield(v) {
				return
			}
		}
	}
}

func (l *BoundedList[T]) iterAt(i int) Iterator[T] {
	return makeIter(l.buf[:l.n], i, &l.dbg)
}

// shiftRight opens k slots at position i by moving [i, n) up. The
// vacated slots still hold stale copies until the caller overwrites
// them.
func (l *BoundedList[T]) shiftRight(i, k int) {
	copy(l.buf[i+k:l.n+k], l.buf[i:l.n])
}

// unshift rolls a shiftRight back. The tail moves back down over any
// elements built into the gap so far, and the duplicated upper slots
// are cleared, restoring the pre-shift contents.
func (l *BoundedList[T]) unshift(i, k int) {
	copy(l.buf[i:l.n], l.buf[i+k:l.n+k])
	clear(l.buf[l.n : l.n+k])
}

func (l *BoundedList[T]) checkPos(i int) {
	if i < 0 || i > l.n {
		panic("seq: position out of range")
	}
}

func (l *BoundedList[T]) checkRoom(n int) {
	if n < 0 {
		panic("seq: negative count")
	}
	if n > len(l.buf) {
		panic("seq: list is out of capacity")
	}
}

func (l *BoundedList[T]) checkCount(count int) {
	if count < 0 {
		panic("seq: negative count")
	}
}
