package seq

import "unsafe"

// Allocator supplies and reclaims the backing storage of a DynArray.
// Allocate must return a zeroed slice of exactly n elements (nil when
// n <= 0); Deallocate is handed back the exact slice Allocate returned.
type Allocator[T any] interface {
	Allocate(n int) []T
	Deallocate(buf []T)
	Policy() AllocPolicy
}

// AllocPolicy declares how container copy, move and swap treat the
// allocator itself, mirroring the classic propagation traits.
type AllocPolicy struct {
	PropagateOnCopy bool // CopyFrom adopts the source's allocator
	PropagateOnMove bool // Take adopts the source's allocator
	PropagateOnSwap bool // Swap exchanges the allocators
}

// CopySelector lets an allocator pick the allocator a Clone should use.
// Allocators that don't implement it are shared with the clone as-is.
type CopySelector[T any] interface {
	SelectOnCopy() Allocator[T]
}

func selectOnCopy[T any](a Allocator[T]) Allocator[T] {
	if s, ok := a.(CopySelector[T]); ok {
		return s.SelectOnCopy()
	}
	return a
}

// HeapAllocator is the default allocator: make on Allocate, garbage
// collection on Deallocate. It is stateless, so it never propagates.
type HeapAllocator[T any] struct{}

// Allocate returns a zeroed slice of n elements.
func (HeapAllocator[T]) Allocate(n int) []T {
	if n <= 0 {
		return nil
	}
	return make([]T, n)
}

// Deallocate clears the slice so dropped elements stop pinning their
// referents; the memory itself is left to the garbage collector.
func (HeapAllocator[T]) Deallocate(buf []T) {
	clear(buf)
}

// Policy returns the no-propagation policy.
func (HeapAllocator[T]) Policy() AllocPolicy {
	return AllocPolicy{}
}

// ByteArena is the allocation surface ArenaAllocator draws from. Both
// Arena and SafeArena satisfy it.
type ByteArena interface {
	AllocBytes(n int) []byte
}

// ArenaAllocator carves typed storage out of a chunked bump arena.
// Deallocate is a no-op: arena memory is reclaimed in bulk via
// Arena.Reset or Arena.Release.
//
// The arena's chunks are untyped bytes, invisible to the garbage
// collector's pointer scan. Only store element types that contain no
// Go pointers; for pointerful types use HeapAllocator.
type ArenaAllocator[T any] struct {
	Arena ByteArena
}

// Allocate returns a zeroed slice of n elements carved from the arena.
// The slice stays valid until the arena is reset or released.
func (a ArenaAllocator[T]) Allocate(n int) []T {
	if n <= 0 {
		return nil
	}
	size := int(unsafe.Sizeof(*new(T)))
	if size == 0 {
		return make([]T, n)
	}
	b := a.Arena.AllocBytes(size * n)
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// Deallocate does nothing; the arena reclaims in bulk.
func (ArenaAllocator[T]) Deallocate([]T) {}

// Policy propagates on copy, move and swap: an arena-backed array must
// keep allocating from its arena wherever its contents end up.
func (ArenaAllocator[T]) Policy() AllocPolicy {
	return AllocPolicy{PropagateOnCopy: true, PropagateOnMove: true, PropagateOnSwap: true}
}

// SelectOnCopy hands the same arena to clones.
func (a ArenaAllocator[T]) SelectOnCopy() Allocator[T] {
	return a
}
