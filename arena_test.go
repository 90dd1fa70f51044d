package seq

import (
	"sync"
	"testing"
)

func TestNewArena(t *testing.T) {
	tests := []struct {
		name      string
		chunkSize int
		expected  int
	}{
		{"default chunk size", 0, DefaultChunkSize},
		{"negative chunk size", -1, DefaultChunkSize},
		{"custom chunk size", 8192, 8192},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena(tt.chunkSize)
			if a.ChunkSize() != tt.expected {
				t.Errorf("NewArena(%d) chunk size = %d, want %d", tt.chunkSize, a.ChunkSize(), tt.expected)
			}
			if a.NumChunks() != 1 {
				t.Errorf("NewArena(%d) chunks = %d, want 1", tt.chunkSize, a.NumChunks())
			}
		})
	}
}

func TestArenaAllocBytes(t *testing.T) {
	a := NewArena(1024)

	b := a.AllocBytes(100)
	if len(b) != 100 {
		t.Errorf("AllocBytes(100) length = %d, want 100", len(b))
	}
	if a.AllocBytes(0) != nil {
		t.Error("AllocBytes(0) should return nil")
	}
	if a.AllocBytes(-1) != nil {
		t.Error("AllocBytes(-1) should return nil")
	}

	// Larger than the chunk: a dedicated chunk is added.
	big := a.AllocBytes(2000)
	if len(big) != 2000 {
		t.Errorf("AllocBytes(2000) length = %d, want 2000", len(big))
	}
	if a.NumChunks() != 2 {
		t.Errorf("NumChunks = %d, want 2", a.NumChunks())
	}
}

func TestArenaReset(t *testing.T) {
	a := NewArena(1024)
	a.AllocBytes(100)
	a.AllocBytes(200)

	if a.SizeInUse() == 0 {
		t.Error("expected non-zero size in use after allocations")
	}

	a.Reset()
	if a.SizeInUse() != 0 {
		t.Errorf("SizeInUse after Reset = %d, want 0", a.SizeInUse())
	}
	if a.NumChunks() == 0 {
		t.Error("expected chunks to remain after Reset")
	}
}

func TestArenaRelease(t *testing.T) {
	a := NewArena(1024)
	a.AllocBytes(100)
	a.Release()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on use after Release")
		}
	}()
	a.AllocBytes(100)
}

func TestArenaMetrics(t *testing.T) {
	a := NewArena(4096)
	a.AllocBytes(1000)

	m := a.Metrics()
	if m.SizeInUse < 1000 {
		t.Errorf("SizeInUse = %d, want >= 1000", m.SizeInUse)
	}
	if m.Capacity != 4096 {
		t.Errorf("Capacity = %d, want 4096", m.Capacity)
	}
	if m.NumChunks != 1 {
		t.Errorf("NumChunks = %d, want 1", m.NumChunks)
	}
	if m.Utilization <= 0 || m.Utilization > 1 {
		t.Errorf("Utilization = %f, want in (0, 1]", m.Utilization)
	}
}

func TestSafeArenaConcurrent(t *testing.T) {
	s := NewSafeArena(1 << 12)
	defer s.Release()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			alloc := ArenaAllocator[uint64]{Arena: s}
			for i := 0; i < 50; i++ {
				a := NewArrayFillIn[uint64](alloc, 16, uint64(i))
				if a.Len() != 16 || *a.Front() != uint64(i) {
					t.Error("arena-backed array corrupted under concurrency")
					return
				}
			}
		}()
	}
	wg.Wait()

	if s.Metrics().SizeInUse < 8*50*16*8 {
		t.Errorf("SizeInUse = %d, want at least %d", s.Metrics().SizeInUse, 8*50*16*8)
	}
}
