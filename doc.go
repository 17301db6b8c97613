// Package smallvec implements a hybrid inline/heap growable vector for Go.
//
// # Overview
//
// A SmallVec stores up to a fixed number of elements ("inline capacity")
// in an initial buffer owned by the vector, and transparently spills to a
// heap-allocated buffer once that capacity is exceeded. This avoids heap
// traffic entirely for the common case where a sequence stays small.
// Typical uses:
//
//   - Scratch buffers in hot paths that usually hold a handful of items
//   - Per-request accumulation where the element count is almost always tiny
//   - Replacing append-heavy code that reallocates for predictably small data
//   - Reducing garbage collection pressure from short-lived slices
//
// # Basic Usage
//
//	v := smallvec.New[int](4) // inline capacity of 4 elements
//	v.Push(1)
//	v.Push(2)
//	v.Append(3, 4)          // still inline: no heap growth yet
//	v.Push(5)               // spills to heap storage
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// The inline buffer can also be pinned to caller-chosen storage, which lets
// the compiler keep it on the stack when it does not escape:
//
//	var buf [8]byte
//	v := smallvec.NewIn(buf[:])
//
// # Storage Modes
//
// The vector is in "inline" mode while Cap() <= InlineCap() and in "heap"
// mode afterwards. The transition is one-way: once the vector has spilled
// to the heap it never moves back to the inline buffer, so the amortized
// growth cost stays geometric for the lifetime of the vector. Mode is a
// derived property (see Inline), not separate state.
//
// # Reference Invalidation
//
// Slice, Front, Back and the iterators expose the vector's backing storage
// directly. Any operation that can grow or shift the storage (Push, Insert,
// Append, Assign, Resize, Reserve, ...) invalidates them. Feeding a vector
// its own storage back as the source of a bulk operation is a usage error
// that the implementation detects and reports with a panic rather than
// silently corrupting data:
//
//	v.AppendSlice(v.Slice()) // panics: source aliases vector storage
//
// # Element Lifecycle
//
// For element types that contain pointers, every slot vacated by Pop,
// Erase, Clear, Resize and friends is zeroed so the removed elements become
// eligible for garbage collection. For pointer-free element types the
// zeroing is skipped; the classification is decided once per vector at
// construction time, not per call.
//
// # Thread Safety
//
// A SmallVec is not synchronized, exactly like a plain Go slice or map.
// Concurrent mutation, or reading concurrently with a mutation, is a caller
// error.
//
// # Errors
//
// All failure conditions are programmer errors and surface as panics with a
// "smallvec:" prefix: out-of-range indexes, popping an empty vector,
// growing past the addressable element count, truncating upward, and
// aliased bulk sources. None of them are meant to be recovered.
package smallvec
