package smallvec

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasPointers(t *testing.T) {
	type flat struct {
		A int
		B [4]float64
		C bool
	}
	type withString struct {
		A int
		S string
	}
	type nested struct {
		F flat
		P *flat
	}

	assert.False(t, hasPointers[int]())
	assert.False(t, hasPointers[uint8]())
	assert.False(t, hasPointers[float64]())
	assert.False(t, hasPointers[complex128]())
	assert.False(t, hasPointers[[8]int32]())
	assert.False(t, hasPointers[[0]*int](), "empty array holds nothing")
	assert.False(t, hasPointers[flat]())
	assert.False(t, hasPointers[struct{}]())

	assert.True(t, hasPointers[*int]())
	assert.True(t, hasPointers[string]())
	assert.True(t, hasPointers[[]byte]())
	assert.True(t, hasPointers[map[int]int]())
	assert.True(t, hasPointers[chan int]())
	assert.True(t, hasPointers[func()]())
	assert.True(t, hasPointers[any]())
	assert.True(t, hasPointers[unsafe.Pointer]())
	assert.True(t, hasPointers[withString]())
	assert.True(t, hasPointers[nested]())
	assert.True(t, hasPointers[[2]*int]())
}

func TestMaxElems(t *testing.T) {
	assert.Equal(t, math.MaxInt, maxElems[byte]())
	assert.Equal(t, math.MaxInt, maxElems[struct{}]())
	assert.Equal(t, math.MaxInt/8, maxElems[uint64]())

	type pair struct{ a, b uint64 }
	assert.Equal(t, math.MaxInt/16, maxElems[pair]())
}

// spareSlots exposes the slots in [len, cap) for lifecycle inspection.
func spareSlots[T any](v *SmallVec[T]) []T {
	return v.buf[len(v.buf):cap(v.buf)]
}

func TestVacatedSlotsAreZeroedForPointerTypes(t *testing.T) {
	x, y, z := 1, 2, 3

	t.Run("pop", func(t *testing.T) {
		v := New[*int](4)
		v.Append(&x, &y, &z)
		v.Pop()
		v.PopN(2)
		for i, p := range spareSlots(v) {
			require.Nilf(t, p, "spare slot %d pins a dead element", i)
		}
	})

	t.Run("clear", func(t *testing.T) {
		v := New[*int](4)
		v.Append(&x, &y)
		v.Clear()
		for i, p := range spareSlots(v) {
			require.Nilf(t, p, "spare slot %d pins a dead element", i)
		}
	})

	t.Run("erase", func(t *testing.T) {
		v := New[*int](4)
		v.Append(&x, &y, &z)
		v.Erase(0)
		require.Equal(t, []*int{&y, &z}, v.Slice())
		for i, p := range spareSlots(v) {
			require.Nilf(t, p, "spare slot %d pins a dead element", i)
		}
	})

	t.Run("resize down", func(t *testing.T) {
		v := New[*int](4)
		v.Append(&x, &y, &z)
		v.Resize(1)
		for i, p := range spareSlots(v) {
			require.Nilf(t, p, "spare slot %d pins a dead element", i)
		}
	})

	t.Run("truncate", func(t *testing.T) {
		v := New[*int](4)
		v.Append(&x, &y, &z)
		v.Truncate(0)
		for i, p := range spareSlots(v) {
			require.Nilf(t, p, "spare slot %d pins a dead element", i)
		}
	})
}

func TestGrowthReleasesAbandonedInlineBuffer(t *testing.T) {
	// When a pinned inline buffer is abandoned by the spill, the caller's
	// array must not keep the relocated elements alive.
	x, y := 1, 2
	var backing [2]*int
	v := NewIn(backing[:])
	v.Append(&x, &y)
	v.Push(&x) // spills

	require.False(t, v.Inline())
	for i, p := range backing {
		assert.Nilf(t, p, "abandoned inline slot %d still pins an element", i)
	}
	assert.Equal(t, []*int{&x, &y, &x}, v.Slice())
}

func TestPointerFreeTypesSkipZeroing(t *testing.T) {
	v := New[int](4)
	require.True(t, v.noClear)
	v.Append(1, 2, 3)
	v.PopN(3)

	// The stale values are observable in the spare capacity, which is
	// exactly what ResizeForOverwrite exploits.
	assert.Equal(t, []int{1, 2, 3, 0}, spareSlots(v))
}

func TestOverlaps(t *testing.T) {
	v := Of(1, 2, 3, 4)

	assert.True(t, v.overlaps(v.Slice()))
	assert.True(t, v.overlaps(v.Slice()[1:2]))
	assert.True(t, v.overlaps(v.buf[:cap(v.buf)]))

	assert.False(t, v.overlaps(nil))
	assert.False(t, v.overlaps([]int{1, 2}))

	other := Of(1, 2, 3, 4)
	assert.False(t, v.overlaps(other.Slice()))

	empty := New[int](0)
	assert.False(t, empty.overlaps([]int{1}))
}
