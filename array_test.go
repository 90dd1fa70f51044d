package seq

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArray(t *testing.T) {
	a := NewArray[int](4)
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, []int{0, 0, 0, 0}, a.Data())

	empty := NewArray[int](0)
	assert.True(t, empty.Empty())
	assert.Nil(t, empty.Data())

	assert.Panics(t, func() { NewArray[int](-1) })
}

func TestZeroValueDynArray(t *testing.T) {
	var a DynArray[int]
	assert.Equal(t, 0, a.Len())
	assert.Nil(t, a.Data())
	a.CopyFrom(ArrayOf(1, 2, 3))
	assert.Equal(t, []int{1, 2, 3}, a.Data())
}

func TestNewArrayFill(t *testing.T) {
	a := NewArrayFill(30, "five-char")
	require.Equal(t, 30, a.Len())
	for _, s := range a.Data() {
		assert.Equal(t, "five-char", s)
	}

	// Mutating one element must not affect any other index.
	a.Set(5, "changed")
	for i, s := range a.Data() {
		if i == 5 {
			assert.Equal(t, "changed", s)
		} else {
			assert.Equal(t, "five-char", s)
		}
	}
}

func TestArrayOf(t *testing.T) {
	a := ArrayOf(3, 1, 4, 1, 5)
	assert.Equal(t, []int{3, 1, 4, 1, 5}, a.Data())

	empty := ArrayOf[int]()
	assert.Nil(t, empty.Data())
}

func TestNewArraySeeded(t *testing.T) {
	a := NewArraySeeded(6, []byte{3, 4, 5})
	assert.Equal(t, []byte{3, 4, 5, 0, 0, 0}, a.Data())

	// Longer seeds are truncated to the array length.
	b := NewArraySeeded(2, []byte{3, 4, 5})
	assert.Equal(t, []byte{3, 4}, b.Data())
}

func TestNewArraySeededFill(t *testing.T) {
	a := NewArraySeededFill(6, []uint16{3, 4, 5}, 100)
	assert.Equal(t, []uint16{3, 4, 5, 100, 100, 100}, a.Data())
}

func TestNewArrayFunc(t *testing.T) {
	a, err := NewArrayFunc(5, func(i int) (int, error) { return i * i, nil })
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 9, 16}, a.Data())

	a, err = NewArrayFunc(5, failAfter(3))
	assert.ErrorIs(t, err, errBoom)
	assert.Nil(t, a)
}

func TestArrayAccessors(t *testing.T) {
	a := ArrayOf(10, 20, 30)

	v, err := a.At(0)
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	_, err = a.At(3)
	assert.ErrorIs(t, err, ErrOutOfRange)

	assert.Nil(t, a.Get(-1))
	assert.Equal(t, 30, *a.Get(2))

	assert.Equal(t, 10, *a.Front())
	assert.Equal(t, 30, *a.Back())
	assert.Panics(t, func() { a.Ref(3) })
	assert.Panics(t, func() { NewArray[int](0).Back() })
}

func TestArrayFill(t *testing.T) {
	a := NewArray[int](4)
	a.Fill(9)
	assert.Equal(t, []int{9, 9, 9, 9}, a.Data())
}

func TestArrayClone(t *testing.T) {
	a := NewArrayFill(20, 6.66)
	b := a.Clone()

	assert.Equal(t, a.Len(), b.Len())
	assert.Equal(t, a.Data(), b.Data())

	b.Set(3, 1.0)
	assert.Equal(t, 6.66, *a.Ref(3))
}

func TestArrayCloneFunc(t *testing.T) {
	a := ArrayOf("x", "y")
	b, err := a.CloneFunc(func(s string) (string, error) { return s + s, nil })
	require.NoError(t, err)
	assert.Equal(t, []string{"xx", "yy"}, b.Data())

	_, err = a.CloneFunc(func(string) (string, error) { return "", errBoom })
	assert.ErrorIs(t, err, errBoom)
}

func TestArrayCopyFrom(t *testing.T) {
	a := NewArrayFill(20, int16(256))
	b := NewArrayFill(40, int16(512))

	b.CopyFrom(a)
	assert.Equal(t, a.Len(), b.Len())
	assert.Equal(t, a.Data(), b.Data())

	// Matching lengths assign in place without reallocating.
	c := NewArrayFill(20, int16(1))
	data := c.Data()
	c.CopyFrom(a)
	assert.Same(t, &data[0], &c.Data()[0])
	assert.Equal(t, a.Data(), c.Data())

	// Self copy is a no-op.
	a.CopyFrom(a)
	assert.Equal(t, 20, a.Len())
}

func TestArrayTake(t *testing.T) {
	src := NewArrayFill(50, 1.25)
	data := src.Data()

	var dst DynArray[float64]
	dst.Take(src)

	assert.Equal(t, 50, dst.Len())
	assert.Same(t, &data[0], &dst.Data()[0])
	for _, v := range dst.Data() {
		assert.Equal(t, 1.25, v)
	}
	assert.Nil(t, src.Data())
	assert.Equal(t, 0, src.Len())
}

func TestArraySwap(t *testing.T) {
	a := ArrayOf(1, 2, 3)
	b := ArrayOf(9)

	a.Swap(b)
	assert.Equal(t, []int{9}, a.Data())
	assert.Equal(t, []int{1, 2, 3}, b.Data())
}

func TestArrayReset(t *testing.T) {
	a := ArrayOf(1, 2, 3)
	a.Reset()
	assert.True(t, a.Empty())
	assert.Nil(t, a.Data())

	// Still usable after Reset.
	a.CopyFrom(ArrayOf(4))
	assert.Equal(t, []int{4}, a.Data())
}

func TestArrayValues(t *testing.T) {
	a := ArrayOf(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(a.Values()))
}

func TestArrayArenaAllocator(t *testing.T) {
	arena := NewArena(1 << 12)
	alloc := ArenaAllocator[int64]{Arena: arena}

	a := NewArrayFillIn[int64](alloc, 100, 5)
	require.Equal(t, 100, a.Len())
	for _, v := range a.Data() {
		assert.Equal(t, int64(5), v)
	}
	assert.GreaterOrEqual(t, arena.SizeInUse(), 800)

	// Clones of arena-backed arrays must come from the same arena.
	before := arena.SizeInUse()
	b := a.Clone()
	assert.Equal(t, a.Data(), b.Data())
	assert.GreaterOrEqual(t, arena.SizeInUse(), before+800)
}

func TestArrayAllocatorPropagation(t *testing.T) {
	arena := NewArena(1 << 12)
	alloc := ArenaAllocator[uint32]{Arena: arena}

	src := NewArrayFillIn[uint32](alloc, 8, 3)
	dst := NewArray[uint32](2)

	// ArenaAllocator propagates on copy: dst adopts the arena.
	dst.CopyFrom(src)
	assert.Equal(t, alloc, dst.Allocator())

	// HeapAllocator does not propagate: swapping with a heap-backed
	// receiver keeps both allocators in place.
	heap := NewArray[uint32](3)
	heapAlloc := heap.Allocator()
	heap.Swap(dst)
	assert.Equal(t, heapAlloc, heap.Allocator())
	assert.Equal(t, alloc, dst.Allocator())

	// Take from an arena-backed source adopts its allocator too.
	other := NewArray[uint32](1)
	other.Take(src)
	assert.Equal(t, alloc, other.Allocator())
	assert.Nil(t, src.Data())
}
