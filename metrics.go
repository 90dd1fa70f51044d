package seq

// ArenaMetrics is a snapshot of arena statistics.
type ArenaMetrics struct {
	SizeInUse   int     // bytes currently allocated, including alignment padding
	Capacity    int     // total capacity of all chunks in bytes
	NumChunks   int     // number of chunks
	ChunkSize   int     // configured chunk size
	Utilization float64 // SizeInUse / Capacity, 0 when empty
}

// SizeInUse returns the number of bytes currently allocated, including
// internal fragmentation due to alignment.
func (a *Arena) SizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += int(c.offset)
	}
	return sum
}

// Capacity returns the total capacity of all chunks in bytes.
func (a *Arena) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// NumChunks returns the number of chunks the arena holds.
func (a *Arena) NumChunks() int {
	return len(a.chunks)
}

// ChunkSize returns the configured chunk size.
func (a *Arena) ChunkSize() int {
	return a.size
}

// Utilization returns the ratio of bytes in use to total capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkSize:   a.size,
		Utilization: a.Utilization(),
	}
}
