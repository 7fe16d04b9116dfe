package statevec

import (
	"math/cmplx"
	"testing"
)

// Shared test helper functions used across multiple test files

func assertApproxComplex128Tolf(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}

func maxDeltaComplex128(a, b []complex128) float64 {
	maxErr := 0.0
	for i := range a {
		if d := cmplx.Abs(a[i] - b[i]); d > maxErr {
			maxErr = d
		}
	}

	return maxErr
}

func cloneAmps(psi []complex128) []complex128 {
	return append([]complex128(nil), psi...)
}

func randomState(t *testing.T, numQubits int, seed int64) []complex128 {
	t.Helper()

	psi, err := NewVector[complex128](numQubits)
	if err != nil {
		t.Fatalf("NewVector(%d) = %v", numQubits, err)
	}

	FillRandom(NewRNG(seed), psi)

	return psi
}
