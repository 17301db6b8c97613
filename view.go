package smallvec

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// At returns the element at index i with bounds checking.
func (v *SmallVec[T]) At(i int) T {
	if i < 0 || i >= len(v.buf) {
		panic(fmt.Sprintf("smallvec: index out of range [%d] with length %d", i, len(v.buf)))
	}
	return v.buf[i]
}

// Set replaces the element at index i with bounds checking.
func (v *SmallVec[T]) Set(i int, val T) {
	if i < 0 || i >= len(v.buf) {
		panic(fmt.Sprintf("smallvec: index out of range [%d] with length %d", i, len(v.buf)))
	}
	v.buf[i] = val
}

// Front returns the first element. Panics on an empty vector.
func (v *SmallVec[T]) Front() T {
	if len(v.buf) == 0 {
		panic("smallvec: front of empty vector")
	}
	return v.buf[0]
}

// Back returns the last element. Panics on an empty vector.
func (v *SmallVec[T]) Back() T {
	if len(v.buf) == 0 {
		panic("smallvec: back of empty vector")
	}
	return v.buf[len(v.buf)-1]
}

// All returns an index/value iterator over the elements, front to back.
// Mutating the vector while iterating invalidates the iterator, like
// ranging over a slice that is being reallocated.
func (v *SmallVec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.buf {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values returns a value iterator over the elements, front to back.
func (v *SmallVec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.buf {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward returns an index/value iterator over the elements, back to
// front.
func (v *SmallVec[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(v.buf) - 1; i >= 0; i-- {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// String formats the live elements like a Go slice.
func (v *SmallVec[T]) String() string {
	return fmt.Sprintf("%v", v.buf)
}

// Equal reports whether a and b have the same length and equal elements in
// order.
func Equal[T comparable](a, b *SmallVec[T]) bool {
	return slices.Equal(a.buf, b.buf)
}

// EqualFunc is Equal with a caller-supplied element predicate, allowing the
// two vectors to hold different element types.
func EqualFunc[A, B any](a *SmallVec[A], b *SmallVec[B], eq func(A, B) bool) bool {
	return slices.EqualFunc(a.buf, b.buf, eq)
}

// Compare orders a and b lexicographically: elementwise until a mismatch,
// then by length. The result follows the cmp.Compare convention.
func Compare[T cmp.Ordered](a, b *SmallVec[T]) int {
	return slices.Compare(a.buf, b.buf)
}
