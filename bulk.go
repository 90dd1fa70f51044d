package seq

// Bulk initialization helpers shared by BoundedList and DynArray. The
// fallible variants unwind on error by clearing everything they wrote,
// so no half-built prefix survives into the caller's view and dropped
// values stop pinning their referents.

// buildFunc fills dst from gen. On error it clears dst entirely and
// returns the error; dst holds only zero values afterwards.
func buildFunc[T any](dst []T, gen func(i int) (T, error)) error {
	for i := range dst {
		v, err := gen(i)
		if err != nil {
			clear(dst[:i+1])
			return err
		}
		dst[i] = v
	}
	return nil
}

// cloneFunc copies src into dst element by element through clone. On
// error it clears dst and returns the error. len(dst) must equal
// len(src).
func cloneFunc[T any](dst, src []T, clone func(T) (T, error)) error {
	for i, v := range src {
		c, err := clone(v)
		if err != nil {
			clear(dst[:i+1])
			return err
		}
		dst[i] = c
	}
	return nil
}

// fillValues overwrites every slot of dst with a copy of v. A zero fill
// value degenerates to clear, the memset path.
func fillValues[T any](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

// copySeeded copies seed into the front of dst (truncating seed if it is
// longer) and fills the remainder with fallback. It returns the number
// of seeded elements.
func copySeeded[T any](dst, seed []T, fallback T) int {
	n := copy(dst, seed)
	fillValues(dst[n:], fallback)
	return n
}
