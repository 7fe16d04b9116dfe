package statevec

import (
	"fmt"
	"math"
	"math/bits"
)

// MaxQubits is the largest register size NewVector accepts. Amplitude
// indices must stay within the positive range of int for slice addressing.
const MaxQubits = 62

// NewVector allocates a zeroed statevector of 2^numQubits amplitudes.
func NewVector[T Amplitude](numQubits int) ([]T, error) {
	if numQubits < 1 || numQubits > MaxQubits {
		return nil, fmt.Errorf("%w: %d qubits, want 1..%d", ErrInvalidQubits, numQubits, MaxQubits)
	}

	return make([]T, 1<<numQubits), nil
}

// NumQubits returns the register size for a statevector length, or an error
// if the length is not a power of two.
func NumQubits(length int) (int, error) {
	if length <= 0 {
		return 0, ErrNilVector
	}

	if length&(length-1) != 0 {
		return 0, fmt.Errorf("%w: length %d", ErrInvalidLength, length)
	}

	return bits.Len(uint(length)) - 1, nil
}

// FillOnes sets every amplitude to one, the canonical pre-trial value of
// the control-gate benchmarks.
func FillOnes[T Amplitude](amps []T) {
	for i := range amps {
		amps[i] = 1
	}
}

// FillRandom overwrites psi with a random state of unit norm: components
// drawn uniformly from [-1, 1), then the vector normalized as a whole.
func FillRandom(rng *RNG, psi []complex128) {
	var mag float64

	for i := range psi {
		a := rng.Complex(complex(-1, -1), complex(1, 1))
		psi[i] = a
		mag += real(a)*real(a) + imag(a)*imag(a)
	}

	if mag == 0 {
		return
	}

	inv := complex(1/math.Sqrt(mag), 0)
	for i := range psi {
		psi[i] *= inv
	}
}

// Norm returns the 2-norm of the statevector.
func Norm(psi []complex128) float64 {
	var mag float64
	for _, a := range psi {
		mag += real(a)*real(a) + imag(a)*imag(a)
	}

	return math.Sqrt(mag)
}
