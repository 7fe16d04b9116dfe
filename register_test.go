package statevec

import (
	"errors"
	"math"
	"testing"
)

func TestNewVectorLength(t *testing.T) {
	for numQubits := 1; numQubits <= 12; numQubits++ {
		psi, err := NewVector[complex128](numQubits)
		if err != nil {
			t.Fatalf("NewVector(%d) = %v", numQubits, err)
		}

		if len(psi) != 1<<numQubits {
			t.Fatalf("NewVector(%d) length = %d, want %d", numQubits, len(psi), 1<<numQubits)
		}

		for i, a := range psi {
			if a != 0 {
				t.Fatalf("NewVector(%d)[%d] = %v, want 0", numQubits, i, a)
			}
		}
	}
}

func TestNewVectorFloat64(t *testing.T) {
	amps, err := NewVector[float64](4)
	if err != nil {
		t.Fatalf("NewVector[float64](4) = %v", err)
	}

	if len(amps) != 16 {
		t.Fatalf("NewVector[float64](4) length = %d, want 16", len(amps))
	}
}

func TestNewVectorRejectsBadSizes(t *testing.T) {
	for _, numQubits := range []int{-1, 0, MaxQubits + 1} {
		_, err := NewVector[complex128](numQubits)
		if !errors.Is(err, ErrInvalidQubits) {
			t.Fatalf("NewVector(%d) = %v, want ErrInvalidQubits", numQubits, err)
		}
	}
}

func TestNumQubits(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{1, 0},
		{2, 1},
		{4, 2},
		{8, 3},
		{1 << 20, 20},
	}

	for _, tt := range tests {
		got, err := NumQubits(tt.length)
		if err != nil {
			t.Fatalf("NumQubits(%d) = %v", tt.length, err)
		}

		if got != tt.want {
			t.Fatalf("NumQubits(%d) = %d, want %d", tt.length, got, tt.want)
		}
	}
}

func TestNumQubitsRejectsEmpty(t *testing.T) {
	for _, length := range []int{0, -1} {
		_, err := NumQubits(length)
		if !errors.Is(err, ErrNilVector) {
			t.Fatalf("NumQubits(%d) = %v, want ErrNilVector", length, err)
		}
	}
}

func TestNumQubitsRejectsNonPowerOfTwo(t *testing.T) {
	for _, length := range []int{3, 5, 6, 7, 12, 1000} {
		_, err := NumQubits(length)
		if !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("NumQubits(%d) = %v, want ErrInvalidLength", length, err)
		}
	}
}

func TestFillOnes(t *testing.T) {
	psi, _ := NewVector[complex128](5)
	FillOnes(psi)

	for i, a := range psi {
		if a != 1 {
			t.Fatalf("psi[%d] = %v, want 1", i, a)
		}
	}
}

func TestFillRandomIsNormalized(t *testing.T) {
	psi, _ := NewVector[complex128](8)
	FillRandom(NewRNG(42), psi)

	if norm := Norm(psi); math.Abs(norm-1) > 1e-12 {
		t.Fatalf("Norm after FillRandom = %v, want 1", norm)
	}
}

func TestFillRandomIsDeterministic(t *testing.T) {
	a, _ := NewVector[complex128](6)
	b, _ := NewVector[complex128](6)
	FillRandom(NewRNG(7), a)
	FillRandom(NewRNG(7), b)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at index %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestNorm(t *testing.T) {
	psi := []complex128{3, 4i}
	if got := Norm(psi); math.Abs(got-5) > 1e-12 {
		t.Fatalf("Norm = %v, want 5", got)
	}
}
