package statevec

import (
	"testing"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(1234)
	b := NewRNG(1234)

	for i := range 100 {
		if va, vb := a.Float64Range(0, 1), b.Float64Range(0, 1); va != vb {
			t.Fatalf("same seed diverged at draw %d: %v vs %v", i, va, vb)
		}
	}

	if a.Seed() != 1234 {
		t.Fatalf("Seed() = %d, want 1234", a.Seed())
	}
}

func TestFloat64RangeBounds(t *testing.T) {
	r := NewRNG(99)

	for range 1000 {
		v := r.Float64Range(-2.5, 3.5)
		if v < -2.5 || v >= 3.5 {
			t.Fatalf("Float64Range(-2.5, 3.5) = %v, out of bounds", v)
		}
	}
}

func TestComplexBounds(t *testing.T) {
	r := NewRNG(99)

	for range 1000 {
		v := r.Complex(complex(-1, -1), complex(1, 1))
		if real(v) < -1 || real(v) >= 1 || imag(v) < -1 || imag(v) >= 1 {
			t.Fatalf("Complex = %v, out of bounds", v)
		}
	}
}

func TestSortedDistinct(t *testing.T) {
	r := NewRNG(5)

	for range 100 {
		picks := r.SortedDistinct(4, 10)
		if len(picks) != 4 {
			t.Fatalf("len = %d, want 4", len(picks))
		}

		for i, p := range picks {
			if p < 0 || p >= 10 {
				t.Fatalf("pick %d out of range [0, 10)", p)
			}

			if i > 0 && picks[i-1] >= p {
				t.Fatalf("picks %v not strictly increasing", picks)
			}
		}
	}
}

func TestSortedDistinctFullRange(t *testing.T) {
	picks := NewRNG(5).SortedDistinct(6, 6)

	for i, p := range picks {
		if p != i {
			t.Fatalf("SortedDistinct(6, 6) = %v, want [0 1 2 3 4 5]", picks)
		}
	}
}

func TestSortedDistinctPanicsOnBadArgs(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("SortedDistinct(5, 3) did not panic")
		}
	}()

	NewRNG(1).SortedDistinct(5, 3)
}
