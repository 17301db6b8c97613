package smallvec

// Growths returns the number of reallocations the vector has performed,
// including the inline-to-heap spill.
func (v *SmallVec[T]) Growths() uint64 {
	return v.growths
}

// Utilization returns the ratio of live elements to allocated slots
// (0.0 to 1.0). Returns 0.0 for a vector with no capacity.
func (v *SmallVec[T]) Utilization() float64 {
	if cap(v.buf) == 0 {
		return 0
	}
	return float64(len(v.buf)) / float64(cap(v.buf))
}

// Metrics returns a snapshot of vector statistics.
func (v *SmallVec[T]) Metrics() VecMetrics {
	return VecMetrics{
		Len:         len(v.buf),
		Cap:         cap(v.buf),
		InlineCap:   v.inlineCap,
		Spilled:     !v.Inline(),
		Growths:     v.growths,
		Utilization: v.Utilization(),
	}
}

// VecMetrics contains statistical information about a vector.
type VecMetrics struct {
	Len         int     // Live element count
	Cap         int     // Allocated slot count
	InlineCap   int     // Fixed inline capacity
	Spilled     bool    // True once the vector has moved to heap storage
	Growths     uint64  // Number of reallocations performed
	Utilization float64 // Ratio of live elements to slots (0.0-1.0)
}
