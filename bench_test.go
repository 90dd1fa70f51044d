package seq

import "testing"

func BenchmarkBoundedListPush(b *testing.B) {
	l := NewBounded[int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if l.Full() {
			l.Clear()
		}
		l.Push(i)
	}
}

func BenchmarkBoundedListInsertFront(b *testing.B) {
	l := NewBounded[int](256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if l.Full() {
			l.Clear()
		}
		l.Insert(0, i)
	}
}

func BenchmarkNewArrayHeap(b *testing.B) {
	for i := 0; i < b.N; i++ {
		a := NewArrayFill(256, int64(i))
		_ = a
	}
}

func BenchmarkNewArrayArena(b *testing.B) {
	const chunk = 1 << 20
	arena := NewArena(chunk)
	alloc := ArenaAllocator[int64]{Arena: arena}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if arena.SizeInUse() > chunk-(256*8) {
			arena.Reset()
		}
		a := NewArrayFillIn(alloc, 256, int64(i))
		_ = a
	}
}

func BenchmarkIteratorWalk(b *testing.B) {
	l := NewBounded[int](512)
	for i := 0; i < 512; i++ {
		l.Push(i)
	}
	b.ResetTimer()
	sum := 0
	for i := 0; i < b.N; i++ {
		for it := l.Begin(); it.Valid(); it = it.Next() {
			sum += it.Value()
		}
	}
	_ = sum
}
