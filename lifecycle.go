package smallvec

import (
	"math"
	"reflect"
	"unsafe"
)

// hasPointers reports whether values of type T contain pointers the garbage
// collector cares about. Vectors of pointer-free element types skip all slot
// zeroing; everything else must zero vacated slots so removed elements become
// collectable. Decided once per constructed vector, never per operation.
func hasPointers[T any]() bool {
	return typeHasPointers(reflect.TypeFor[T]())
}

func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointer, UnsafePointer, Slice, Map, Chan, String, Interface, Func.
		return true
	}
}

// maxElems returns the largest slot count whose byte size is still
// representable, the clamp for every growth computation.
func maxElems[T any]() int {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / int(size)
}

// clearRange zeroes the slots in [i, j) when the element type requires it.
// A zero-value SmallVec has noClear unset and therefore always zeroes,
// which is the safe direction.
func (v *SmallVec[T]) clearRange(i, j int) {
	if v.noClear {
		return
	}
	clear(v.buf[i:j])
}

// overlaps reports whether vals shares memory with any part of the vector's
// current storage, live or spare. Bulk-mutation sources that overlap are
// rejected up front: growth or shifting would relocate or overwrite the
// source mid-operation.
func (v *SmallVec[T]) overlaps(vals []T) bool {
	if len(vals) == 0 || cap(v.buf) == 0 {
		return false
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return false
	}
	src := uintptr(unsafe.Pointer(unsafe.SliceData(vals)))
	dst := uintptr(unsafe.Pointer(unsafe.SliceData(v.buf)))
	srcEnd := src + uintptr(len(vals))*size
	dstEnd := dst + uintptr(cap(v.buf))*size
	return src < dstEnd && dst < srcEnd
}
