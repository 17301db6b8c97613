package smallvec

import "fmt"

// SmallVec is a growable vector that keeps up to InlineCap() elements in an
// initial buffer owned by the vector and spills to geometrically grown heap
// storage beyond that. Use it by pointer. The zero value is a valid empty
// vector with inline capacity 0 (a plain heap-growing vector).
//
// Not goroutine-safe; treat it like a slice.
type SmallVec[T any] struct {
	// buf carries the full state: len(buf) live elements in the first
	// slots, cap(buf) total slots. Slots in [len, cap) hold the zero
	// value for pointer-bearing element types.
	buf       []T
	inlineCap int
	// noClear is the cached lifecycle policy: true iff T is pointer-free,
	// so vacated slots never need zeroing.
	noClear bool
	growths uint64
}

// New creates an empty vector with the given inline capacity. The initial
// buffer is allocated once and reused until the vector outgrows it.
// inlineCap <= 0 means no inline buffer.
func New[T any](inlineCap int) *SmallVec[T] {
	if inlineCap < 0 {
		inlineCap = 0
	}
	return &SmallVec[T]{
		buf:       make([]T, 0, inlineCap),
		inlineCap: inlineCap,
		noClear:   !hasPointers[T](),
	}
}

// NewIn creates an empty vector whose inline buffer is pinned to the
// caller's storage; len(backing) becomes the inline capacity. If backing is
// a stack array that does not escape, the vector stays allocation-free
// until it spills. The backing memory is owned by the vector until the
// vector spills or is moved from; the caller must not touch it meanwhile.
func NewIn[T any](backing []T) *SmallVec[T] {
	v := &SmallVec[T]{
		buf:       backing[:0:len(backing)],
		inlineCap: len(backing),
		noClear:   !hasPointers[T](),
	}
	// Whatever the caller left in the backing array counts as garbage.
	if !v.noClear {
		clear(backing)
	}
	return v
}

// Of builds a vector holding exactly the given values, with the inline
// capacity matching the value count.
func Of[T any](vals ...T) *SmallVec[T] {
	v := New[T](len(vals))
	v.buf = v.buf[:len(vals)]
	copy(v.buf, vals)
	return v
}

// FromSlice builds a vector with the contents of src copied in. The inline
// capacity matches len(src); src is not retained.
func FromSlice[T any](src []T) *SmallVec[T] {
	return Of(src...)
}

// Repeat builds a vector holding n copies of val.
func Repeat[T any](n int, val T) *SmallVec[T] {
	if n < 0 {
		n = 0
	}
	v := New[T](n)
	v.buf = v.buf[:n]
	for i := range v.buf {
		v.buf[i] = val
	}
	return v
}

// Map builds a vector with fn applied to each element of src, in order.
func Map[S, D any](src []S, fn func(S) D) *SmallVec[D] {
	v := New[D](len(src))
	v.buf = v.buf[:len(src)]
	for i, x := range src {
		v.buf[i] = fn(x)
	}
	return v
}

// Clone returns a deep copy with the same inline capacity and contents.
// The clone is in inline mode iff its length fits the inline capacity.
func (v *SmallVec[T]) Clone() *SmallVec[T] {
	n := len(v.buf)
	capacity := v.inlineCap
	if n > capacity {
		capacity = n
	}
	nv := &SmallVec[T]{
		buf:       make([]T, n, capacity),
		inlineCap: v.inlineCap,
		noClear:   v.noClear,
	}
	copy(nv.buf, v.buf)
	return nv
}

// Len returns the number of live elements.
func (v *SmallVec[T]) Len() int { return len(v.buf) }

// Cap returns the number of slots currently allocated, inline or heap.
func (v *SmallVec[T]) Cap() int { return cap(v.buf) }

// Empty reports whether the vector holds no elements.
func (v *SmallVec[T]) Empty() bool { return len(v.buf) == 0 }

// InlineCap returns the fixed inline capacity chosen at construction.
func (v *SmallVec[T]) InlineCap() int { return v.inlineCap }

// Inline reports whether the vector still uses its inline buffer. This is
// derived from capacity, not stored: once Cap() exceeds InlineCap() the
// vector has spilled to the heap and never returns.
func (v *SmallVec[T]) Inline() bool { return cap(v.buf) <= v.inlineCap }

// Slice returns the live elements as a slice sharing the vector's storage.
// It is invalidated by any operation that grows or shifts the storage.
// Indexing it is the unchecked fast path; At is the checked one.
func (v *SmallVec[T]) Slice() []T { return v.buf[:len(v.buf):len(v.buf)] }

// Reserve ensures capacity for at least n elements, reallocating at most
// once. It never shrinks and never changes Len.
func (v *SmallVec[T]) Reserve(n int) {
	if n <= cap(v.buf) {
		return
	}
	v.grow(n)
}

// grow is the single reallocation path: every inline-to-heap and
// heap-to-larger-heap transition goes through here. The new capacity is
// max(minCap, 2*Cap(), InlineCap()), clamped to the addressable element
// count; live elements are relocated front to back by bulk copy.
func (v *SmallVec[T]) grow(minCap int) {
	limit := maxElems[T]()
	if minCap < 0 || minCap > limit {
		panic(fmt.Sprintf("smallvec: capacity overflow (need %d elements, limit %d)", minCap, limit))
	}
	newCap := minCap
	if c := cap(v.buf); c > 0 && c <= limit/2 && 2*c > newCap {
		newCap = 2 * c
	}
	if newCap < v.inlineCap {
		newCap = v.inlineCap
	}
	next := make([]T, len(v.buf), newCap)
	copy(next, v.buf)
	// Release the old live range; the abandoned buffer may be pinned by
	// the caller (NewIn) and must not keep elements alive.
	v.clearRange(0, len(v.buf))
	v.buf = next
	v.growths++
}

// Clear removes all elements. Capacity and storage mode are unchanged.
func (v *SmallVec[T]) Clear() {
	v.clearRange(0, len(v.buf))
	v.buf = v.buf[:0]
}

// TakeFrom moves the contents of other into v, replacing v's contents.
// When other has spilled to the heap the buffer itself is transferred in
// O(1) without touching elements; otherwise the elements are copied out of
// other's inline buffer. Either way other ends up empty and remains usable.
// TakeFrom(v) on itself is a no-op.
func (v *SmallVec[T]) TakeFrom(other *SmallVec[T]) {
	if v == other {
		return
	}
	if !other.Inline() && cap(other.buf) > v.inlineCap {
		// Steal the heap buffer. A dropped heap buffer is reclaimed
		// whole, but an abandoned inline buffer may be caller-pinned
		// storage (NewIn) and must not keep dead elements alive.
		if v.Inline() {
			v.clearRange(0, len(v.buf))
		}
		v.buf = other.buf
		other.buf = nil
		return
	}
	v.Clear()
	v.Reserve(len(other.buf))
	v.buf = v.buf[:len(other.buf)]
	copy(v.buf, other.buf)
	other.Clear()
}

// Swap exchanges the complete contents and storage of the two vectors in
// O(1), including their inline buffers and inline capacities.
func (v *SmallVec[T]) Swap(other *SmallVec[T]) {
	if v == other {
		return
	}
	*v, *other = *other, *v
}
