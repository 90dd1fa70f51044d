// Package seq implements two generic sequence containers with fixed growth
// policies, a shared debug-checked iterator, and pluggable allocators.
//
// # Overview
//
// Go slices grow; sometimes that is exactly what you do not want. This
// package provides:
//
//   - BoundedList: a list whose capacity is fixed at construction. The
//     backing storage is allocated once (or supplied by the caller via
//     WrapBounded) and never moves, so element addresses are stable for
//     the life of the list.
//   - DynArray: a fixed-length array whose single backing allocation is
//     obtained through an Allocator. It supports deep copies, ownership
//     transfer, constant-time swap, and allocator propagation policies,
//     but never resizes.
//
// Both containers share one iterator pair (Iterator / ConstIterator) and
// one comparison surface (Equal, Compare and friends), which work against
// any sequence exposing Len and Data - including plain slices wrapped in
// the Slice adapter.
//
// # Basic Usage
//
//	list := seq.BoundedOf(8, 2, 3, 5, 7)
//	list.Push(11)
//	list.Insert(0, 1)
//
//	arr := seq.NewArrayFill(30, "five!")
//	arr.Fill("other")
//
// # Fallible Construction
//
// Element values that are produced by user code which can fail (decoding,
// validation, resource acquisition) go through the *Func constructor and
// mutation variants, which take callbacks returning (T, error). The
// containers guarantee a well-defined state when a callback fails:
//
//   - Insert/Push variants leave the container exactly as it was before
//     the call (the shift that made room is rolled back).
//   - Assign variants and the from-scratch constructors leave the
//     container empty.
//
// The two behaviors are part of the documented contract of each operation
// and are deliberately different; see the method comments.
//
// # Allocators
//
// DynArray obtains storage through the Allocator interface. The default
// HeapAllocator uses make and lets the garbage collector reclaim memory.
// ArenaAllocator carves typed slices out of a chunked bump Arena for
// allocation-heavy, batch-freed workloads. Allocators declare propagation
// policies that CopyFrom, Take and Swap consult.
//
// # Debug Checking
//
// Building with the seqdebug tag enables iterator validation: every
// dereference, step, offset and comparison checks that the iterator is
// attached, in bounds, not stale (the owning container has not been
// structurally mutated since the iterator was created), and - for
// comparisons and subtraction - that both iterators come from the same
// container. Violations panic with a "seq:" prefixed message. Without
// the tag the checks compile to empty methods and the debug state to
// zero-size fields.
//
// # Thread Safety
//
// The containers are not goroutine-safe; guard shared instances
// externally. SafeArena wraps an Arena with a mutex so a single arena
// can serve containers built from multiple goroutines.
package seq
