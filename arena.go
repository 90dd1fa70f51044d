package seq

import "unsafe"

// DefaultChunkSize is the chunk size new arenas use when none is given
// (64 KiB).
const DefaultChunkSize = 1 << 16

// chunk is one contiguous block of arena memory.
type chunk struct {
	buf    []byte
	offset uintptr
}

// Arena is a chunked bump allocator. It hands out aligned byte ranges
// from large chunks; individual frees do not exist, reclamation is bulk
// via Reset or Release. Not goroutine-safe - wrap it in SafeArena for
// concurrent use.
//
// An Arena usually backs DynArray storage through ArenaAllocator.
type Arena struct {
	chunks  []chunk
	size    int
	current *chunk
}

// NewArena creates an arena with the given chunk size. Sizes <= 0 fall
// back to DefaultChunkSize.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena{size: chunkSize}
	a.grow(chunkSize)
	return a
}

// AllocBytes returns n bytes carved from the arena, aligned to the
// pointer size. The bytes stay valid until Reset or Release. Returns
// nil if n <= 0.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	if c := a.current; c != nil {
		off := alignUp(c.offset)
		if off+uintptr(n) <= uintptr(len(c.buf)) {
			c.offset = off + uintptr(n)
			return unsafe.Slice(&c.buf[off], n)
		}
	}
	return a.allocSlow(n)
}

func (a *Arena) allocSlow(n int) []byte {
	if a.chunks == nil {
		panic("seq: arena used after Release")
	}
	a.grow(n)
	c := a.current
	off := alignUp(c.offset)
	c.offset = off + uintptr(n)
	return unsafe.Slice(&c.buf[off], n)
}

// Reset rewinds every chunk to empty while keeping the memory for
// reuse. All previously handed out ranges become invalid.
func (a *Arena) Reset() {
	if a.chunks == nil {
		panic("seq: arena used after Release")
	}
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.current = &a.chunks[0]
}

// Release drops every chunk and makes the arena unusable. Subsequent
// allocations panic.
func (a *Arena) Release() {
	a.chunks = nil
	a.current = nil
}

// grow appends a chunk of at least min bytes and makes it current.
func (a *Arena) grow(min int) {
	size := a.size
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size)})
	a.current = &a.chunks[len(a.chunks)-1]
}

func alignUp(off uintptr) uintptr {
	const mask = unsafe.Sizeof(uintptr(0)) - 1
	return (off + mask) &^ mask
}
