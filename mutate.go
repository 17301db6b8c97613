package smallvec

import "fmt"

// Push appends one element, growing storage first if the vector is full.
// Amortized O(1). The argument is a copy, so pushing an element of the
// vector itself (v.Push(v.Back())) is safe even when the push grows.
func (v *SmallVec[T]) Push(val T) {
	if len(v.buf) == cap(v.buf) {
		v.grow(len(v.buf) + 1)
	}
	v.buf = append(v.buf, val)
}

// Pop removes the last element. Panics on an empty vector.
func (v *SmallVec[T]) Pop() {
	n := len(v.buf)
	if n == 0 {
		panic("smallvec: pop from empty vector")
	}
	v.clearRange(n-1, n)
	v.buf = v.buf[:n-1]
}

// PopVal removes the last element and returns it.
func (v *SmallVec[T]) PopVal() T {
	n := len(v.buf)
	if n == 0 {
		panic("smallvec: pop from empty vector")
	}
	val := v.buf[n-1]
	v.clearRange(n-1, n)
	v.buf = v.buf[:n-1]
	return val
}

// PopN removes the last n elements. Panics if n is negative or exceeds Len.
func (v *SmallVec[T]) PopN(n int) {
	if n < 0 || n > len(v.buf) {
		panic(fmt.Sprintf("smallvec: pop of %d elements with length %d", n, len(v.buf)))
	}
	v.clearRange(len(v.buf)-n, len(v.buf))
	v.buf = v.buf[:len(v.buf)-n]
}

// Resize sets the length to n. Shrinking destroys the tail; growing
// appends zero values. Capacity never shrinks.
func (v *SmallVec[T]) Resize(n int) {
	v.resize(n, true)
}

// ResizeForOverwrite is Resize for callers about to overwrite the new
// slots: for pointer-free element types the new slots are left with
// whatever stale values the spare capacity held. Identical to Resize for
// pointer-bearing types, whose spare slots are always zero.
func (v *SmallVec[T]) ResizeForOverwrite(n int) {
	v.resize(n, false)
}

func (v *SmallVec[T]) resize(n int, zeroNew bool) {
	switch {
	case n < 0:
		panic(fmt.Sprintf("smallvec: resize to negative length %d", n))
	case n < len(v.buf):
		v.clearRange(n, len(v.buf))
		v.buf = v.buf[:n]
	case n > len(v.buf):
		v.Reserve(n)
		old := len(v.buf)
		v.buf = v.buf[:n]
		if zeroNew {
			clear(v.buf[old:])
		}
	}
}

// ResizeFill sets the length to n, filling any new slots with fill.
func (v *SmallVec[T]) ResizeFill(n int, fill T) {
	if n < 0 {
		panic(fmt.Sprintf("smallvec: resize to negative length %d", n))
	}
	if n <= len(v.buf) {
		v.clearRange(n, len(v.buf))
		v.buf = v.buf[:n]
		return
	}
	v.Reserve(n)
	old := len(v.buf)
	v.buf = v.buf[:n]
	for i := old; i < n; i++ {
		v.buf[i] = fill
	}
}

// Truncate shrinks the length to n. Unlike Resize it must never grow:
// n > Len panics.
func (v *SmallVec[T]) Truncate(n int) {
	if n < 0 || n > len(v.buf) {
		panic(fmt.Sprintf("smallvec: truncate cannot grow the vector (length %d, requested %d)", len(v.buf), n))
	}
	v.clearRange(n, len(v.buf))
	v.buf = v.buf[:n]
}

// Insert places val at index i, shifting elements at and after i right by
// one. i may equal Len, which appends. The argument is a copy, so
// inserting an element of the vector itself is safe.
func (v *SmallVec[T]) Insert(i int, val T) {
	n := len(v.buf)
	if i < 0 || i > n {
		panic(fmt.Sprintf("smallvec: insert index out of range [%d] with length %d", i, n))
	}
	if n == cap(v.buf) {
		v.grow(n + 1)
	}
	v.buf = v.buf[:n+1]
	copy(v.buf[i+1:], v.buf[i:n])
	v.buf[i] = val
}

// InsertN places n copies of val at index i. Inserting zero elements is a
// no-op (the index is still validated).
func (v *SmallVec[T]) InsertN(i, n int, val T) {
	length := len(v.buf)
	if i < 0 || i > length {
		panic(fmt.Sprintf("smallvec: insert index out of range [%d] with length %d", i, length))
	}
	if n < 0 {
		panic(fmt.Sprintf("smallvec: insert of %d elements", n))
	}
	if n == 0 {
		return
	}
	v.Reserve(length + n)
	v.buf = v.buf[:length+n]
	copy(v.buf[i+n:], v.buf[i:length])
	for j := i; j < i+n; j++ {
		v.buf[j] = val
	}
}

// InsertSlice places a copy of vals at index i, shifting the tail right.
// vals must not alias the vector's own storage: growth or shifting would
// relocate the source mid-operation, so overlap panics.
func (v *SmallVec[T]) InsertSlice(i int, vals []T) {
	length := len(v.buf)
	if i < 0 || i > length {
		panic(fmt.Sprintf("smallvec: insert index out of range [%d] with length %d", i, length))
	}
	if v.overlaps(vals) {
		panic("smallvec: source range aliases vector storage")
	}
	n := len(vals)
	if n == 0 {
		return
	}
	v.Reserve(length + n)
	v.buf = v.buf[:length+n]
	copy(v.buf[i+n:], v.buf[i:length])
	copy(v.buf[i:], vals)
}

// Erase removes the element at index i, shifting the tail left by one.
// Capacity is unchanged; no reallocation ever happens on erase.
func (v *SmallVec[T]) Erase(i int) {
	n := len(v.buf)
	if i < 0 || i >= n {
		panic(fmt.Sprintf("smallvec: erase index out of range [%d] with length %d", i, n))
	}
	copy(v.buf[i:], v.buf[i+1:])
	v.clearRange(n-1, n)
	v.buf = v.buf[:n-1]
}

// EraseRange removes the elements in [first, last), shifting the tail
// left. An empty range is a no-op. Capacity is unchanged.
func (v *SmallVec[T]) EraseRange(first, last int) {
	n := len(v.buf)
	if first < 0 || last < first || last > n {
		panic(fmt.Sprintf("smallvec: erase range [%d:%d] out of range with length %d", first, last, n))
	}
	k := last - first
	if k == 0 {
		return
	}
	copy(v.buf[first:], v.buf[last:])
	v.clearRange(n-k, n)
	v.buf = v.buf[:n-k]
}

// Append adds the given values at the end. Beware that splatting the
// vector's own storage (v.Append(v.Slice()...)) passes that storage
// through unchanged and panics like AppendSlice.
func (v *SmallVec[T]) Append(vals ...T) {
	v.AppendSlice(vals)
}

// AppendSlice adds a copy of vals at the end. vals must not alias the
// vector's own storage; overlap panics.
func (v *SmallVec[T]) AppendSlice(vals []T) {
	if v.overlaps(vals) {
		panic("smallvec: source range aliases vector storage")
	}
	if len(vals) == 0 {
		return
	}
	v.Reserve(len(v.buf) + len(vals))
	v.buf = append(v.buf, vals...)
}

// AppendRepeat adds n copies of val at the end.
func (v *SmallVec[T]) AppendRepeat(n int, val T) {
	if n < 0 {
		panic(fmt.Sprintf("smallvec: append of %d elements", n))
	}
	v.Reserve(len(v.buf) + n)
	for i := 0; i < n; i++ {
		v.buf = append(v.buf, val)
	}
}

// AppendVec adds a copy of other's elements at the end. Appending a vector
// to itself panics with the aliasing diagnostic.
func (v *SmallVec[T]) AppendVec(other *SmallVec[T]) {
	v.AppendSlice(other.buf)
}

// Assign replaces the contents with the given values, reusing existing
// capacity where possible.
func (v *SmallVec[T]) Assign(vals ...T) {
	v.AssignSlice(vals)
}

// AssignSlice replaces the contents with a copy of vals. vals must not
// alias the vector's own storage; overlap panics.
func (v *SmallVec[T]) AssignSlice(vals []T) {
	if v.overlaps(vals) {
		panic("smallvec: source range aliases vector storage")
	}
	v.Clear()
	v.Reserve(len(vals))
	v.buf = v.buf[:len(vals)]
	copy(v.buf, vals)
}

// AssignRepeat replaces the contents with n copies of val.
func (v *SmallVec[T]) AssignRepeat(n int, val T) {
	if n < 0 {
		panic(fmt.Sprintf("smallvec: assign of %d elements", n))
	}
	v.Clear()
	v.Reserve(n)
	v.buf = v.buf[:n]
	for i := range v.buf {
		v.buf[i] = val
	}
}

// AssignVec replaces the contents with a copy of other's elements.
// Assigning a vector to itself is a no-op.
func (v *SmallVec[T]) AssignVec(other *SmallVec[T]) {
	if v == other {
		return
	}
	v.AssignSlice(other.buf)
}
