package statevec

import (
	"fmt"
	"math"

	"github.com/qsimlab/statevec/internal/bitops"
	"github.com/qsimlab/statevec/internal/parallel"
)

// invSqrt2 scales both halves of a Hadamard pair.
var invSqrt2 = complex(1/math.Sqrt2, 0)

// expI returns e^(i*theta).
func expI(theta float64) complex128 {
	return complex(math.Cos(theta), math.Sin(theta))
}

// ApplyHadamard replaces each amplitude pair differing only in bit t with
// the pair's normalized sum and difference.
func ApplyHadamard(psi []complex128, t int) error {
	numQubits, err := NumQubits(len(psi))
	if err != nil {
		return err
	}

	if t < 0 || t >= numQubits {
		return fmt.Errorf("%w: target %d in %d-qubit register", ErrQubitOutOfRange, t, numQubits)
	}

	applyHadamard(psi, t)

	return nil
}

func applyHadamard(psi []complex128, t int) {
	parallel.For(len(psi)>>1, func(lo, hi int) {
		for m := lo; m < hi; m++ {
			j := uint64(m) >> t
			k := bitops.Truncate(uint64(m), t)
			j0k := bitops.FromAffix(j, k, t)
			j1k := bitops.FlipBit(j0k, t)

			a0 := psi[j0k]
			a1 := psi[j1k]
			psi[j0k] = invSqrt2*a0 + invSqrt2*a1
			psi[j1k] = invSqrt2*a0 - invSqrt2*a1
		}
	})
}

// ApplyControlledPhase multiplies every amplitude whose index has both bit
// c and bit t set by e^(i*theta). The gate is symmetric in its two qubits.
func ApplyControlledPhase(psi []complex128, c, t int, theta float64) error {
	numQubits, err := NumQubits(len(psi))
	if err != nil {
		return err
	}

	if c < 0 || c >= numQubits || t < 0 || t >= numQubits {
		return fmt.Errorf("%w: qubits %d,%d in %d-qubit register", ErrQubitOutOfRange, c, t, numQubits)
	}

	if c == t {
		return fmt.Errorf("%w: control and target are both %d", ErrSameQubit, c)
	}

	applyControlledPhase(psi, c, t, theta)

	return nil
}

func applyControlledPhase(psi []complex128, c, t int, theta float64) {
	t1, t2 := c, t
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	fac := expI(theta)
	midBits := t2 - (t1 + 1)

	// The quarter of the indices with both bits set, enumerated as
	// prefix/infix/suffix triples flattened into one range.
	parallel.For(len(psi)>>2, func(lo, hi int) {
		for m := lo; m < hi; m++ {
			l := bitops.Truncate(uint64(m), t1)
			mid := uint64(m) >> t1
			k := bitops.Truncate(mid, midBits)
			j := mid >> midBits

			idx := bitops.FromAffixes(j, k, l, t2, t1)
			idx = bitops.FlipBit(bitops.FlipBit(idx, t2), t1)
			psi[idx] *= fac
		}
	})
}

// ApplySwap exchanges the amplitudes of every index pair that differs in
// exactly bits t1 and t2 (one set, one clear), reordering the two qubits.
// Argument order does not matter.
func ApplySwap(psi []complex128, t1, t2 int) error {
	numQubits, err := NumQubits(len(psi))
	if err != nil {
		return err
	}

	if t1 < 0 || t1 >= numQubits || t2 < 0 || t2 >= numQubits {
		return fmt.Errorf("%w: qubits %d,%d in %d-qubit register", ErrQubitOutOfRange, t1, t2, numQubits)
	}

	if t1 == t2 {
		return fmt.Errorf("%w: swap of qubit %d with itself", ErrSameQubit, t1)
	}

	if t1 > t2 {
		t1, t2 = t2, t1
	}

	applySwap(psi, t1, t2)

	return nil
}

// applySwap requires t1 < t2.
func applySwap(psi []complex128, t1, t2 int) {
	midBits := t2 - (t1 + 1)

	parallel.For(len(psi)>>2, func(lo, hi int) {
		for m := lo; m < hi; m++ {
			l := bitops.Truncate(uint64(m), t1)
			mid := uint64(m) >> t1
			k := bitops.Truncate(mid, midBits)
			j := mid >> midBits

			j0k0l := bitops.FromAffixes(j, k, l, t2, t1)
			j0k1l := bitops.FlipBit(j0k0l, t1)
			j1k0l := bitops.FlipBit(j0k0l, t2)

			psi[j0k1l], psi[j1k0l] = psi[j1k0l], psi[j0k1l]
		}
	})
}

// ApplyPhaseChain applies the ladder of controlled-phase gates sharing
// control qubit t: targets walk from t-1 down to 0 with phase 2π/2^m,
// where m starts at 2 and increases by one per step away from t.
func ApplyPhaseChain(psi []complex128, t int) error {
	numQubits, err := NumQubits(len(psi))
	if err != nil {
		return err
	}

	if t < 0 || t >= numQubits {
		return fmt.Errorf("%w: control %d in %d-qubit register", ErrQubitOutOfRange, t, numQubits)
	}

	applyPhaseChain(psi, t)

	return nil
}

func applyPhaseChain(psi []complex128, t int) {
	m := 2
	for target := t - 1; target >= 0; target-- {
		theta := 2 * math.Pi / float64(bitops.Pow2(m))
		applyControlledPhase(psi, t, target, theta)
		m++
	}
}

// ApplyMergedPhase applies the same total rotation as ApplyPhaseChain in a
// single diagonal pass: every amplitude whose index has bit t set picks up
// the phase (π/2^t)·(low t bits of the index). The ladder of t separate
// gate passes collapses into one half-array sweep.
func ApplyMergedPhase(psi []complex128, t int) error {
	numQubits, err := NumQubits(len(psi))
	if err != nil {
		return err
	}

	if t < 0 || t >= numQubits {
		return fmt.Errorf("%w: control %d in %d-qubit register", ErrQubitOutOfRange, t, numQubits)
	}

	applyMergedPhase(psi, t)

	return nil
}

func applyMergedPhase(psi []complex128, t int) {
	fac := math.Pi / float64(bitops.Pow2(t))

	parallel.For(len(psi)>>1, func(lo, hi int) {
		for m := lo; m < hi; m++ {
			j := uint64(m) >> t
			k := bitops.Truncate(uint64(m), t)
			j1k := bitops.FlipBit(bitops.FromAffix(j, k, t), t)

			theta := fac * float64(bitops.Truncate(j1k, t))
			psi[j1k] *= expI(theta)
		}
	})
}

// ApplyQFTCircuit runs the Quantum Fourier Transform as the literal gate
// sequence: for each qubit from the top down, a Hadamard followed by its
// controlled-phase ladder; then a qubit-order reversal via swaps.
func ApplyQFTCircuit(psi []complex128) error {
	numQubits, err := NumQubits(len(psi))
	if err != nil {
		return err
	}

	if numQubits == 0 {
		return nil
	}

	for t := numQubits - 1; t > 0; t-- {
		applyHadamard(psi, t)
		applyPhaseChain(psi, t)
	}

	applyHadamard(psi, 0)
	reverseQubitOrder(psi, numQubits)

	return nil
}

// ApplyQFT runs the transform with every phase ladder replaced by its
// merged single-pass form. The result matches ApplyQFTCircuit up to
// floating-point rounding.
func ApplyQFT(psi []complex128) error {
	numQubits, err := NumQubits(len(psi))
	if err != nil {
		return err
	}

	if numQubits == 0 {
		return nil
	}

	for t := numQubits - 1; t > 0; t-- {
		applyHadamard(psi, t)
		applyMergedPhase(psi, t)
	}

	applyHadamard(psi, 0)
	reverseQubitOrder(psi, numQubits)

	return nil
}

func reverseQubitOrder(psi []complex128, numQubits int) {
	for t := range numQubits / 2 {
		applySwap(psi, t, numQubits-1-t)
	}
}
