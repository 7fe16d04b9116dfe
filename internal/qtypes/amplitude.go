package qtypes

// Amplitude is the type constraint for statevector elements. Control-gate
// benchmarks run on real arrays standing in for complex amplitudes; the
// index selection is identical for both, so the strategies are generic
// over the element type.
type Amplitude interface {
	~float64 | ~complex128
}
