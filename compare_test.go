package seq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	a := ArrayOf[int64](123933458, 1233457654, 12236353338)
	b := ArrayOf[int64](123933458, 1233457654, 12236353338)
	assert.True(t, Equal[int64](a, b))

	b.Set(1, 0)
	assert.False(t, Equal[int64](a, b))

	// Length differences dominate element equality.
	assert.False(t, Equal[int64](a, ArrayOf[int64](123933458)))
}

func TestEqualAcrossKinds(t *testing.T) {
	l := BoundedOf(10, 1, 2, 3)
	a := ArrayOf(1, 2, 3)

	assert.True(t, Equal[int](l, a))
	assert.True(t, Equal[int](l, Slice[int]{1, 2, 3}))
	assert.False(t, Equal[int](a, Slice[int]{1, 2}))
}

func TestCompareLexicographic(t *testing.T) {
	assert.True(t, Less[float64](ArrayOf(1.5, 2.5, 4.5), ArrayOf(1.5, 2.5, 5.5)))
	assert.False(t, Less[float64](ArrayOf(1.5, 2.5, 5.5), ArrayOf(1.5, 2.5, 4.5)))

	assert.Equal(t, 0, Compare[int](ArrayOf(1, 2, 3), ArrayOf(1, 2, 3)))
	assert.Equal(t, -1, Compare[int](NewArraySeeded(3, []int{1, 2, 2}), NewArraySeeded(3, []int{1, 2, 3})))
	assert.Equal(t, 1, Compare[int](ArrayOf(2), ArrayOf(1, 9, 9)))

	// A strict prefix orders first.
	assert.Equal(t, -1, Compare[int](ArrayOf(1, 2), ArrayOf(1, 2, 0)))

	// Empty sequences order before everything but themselves.
	assert.Equal(t, -1, Compare[int](NewArray[int](0), ArrayOf(0)))
	assert.Equal(t, 0, Compare[int](NewArray[int](0), NewBounded[int](5)))
}

func TestCompareFuncAndEqualFunc(t *testing.T) {
	a := BoundedOf(4, "A", "b")
	b := Slice[string]{"a", "B"}

	assert.True(t, EqualFunc[string, string](a, b, strings.EqualFold))
	assert.Equal(t, 0, CompareFunc[string, string](a, b, func(x, y string) int {
		return strings.Compare(strings.ToLower(x), strings.ToLower(y))
	}))
}
