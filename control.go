package statevec

import (
	"fmt"

	"github.com/qsimlab/statevec/internal/bitops"
	"github.com/qsimlab/statevec/internal/parallel"
)

// ApplyControlled replaces every amplitude whose index has bit ctrl set
// with f(amplitude), leaving all other amplitudes untouched. The strategy
// changes only how the affected indices are enumerated; every strategy
// produces identical output for the same input.
//
// StrategyBlend evaluates f on every amplitude, including the ones it does
// not change, so f must be side-effect free and defined on the whole domain.
func ApplyControlled[T Amplitude](amps []T, ctrl int, f func(T) T, s Strategy) error {
	numQubits, err := NumQubits(len(amps))
	if err != nil {
		return err
	}

	if ctrl < 0 || ctrl >= numQubits {
		return fmt.Errorf("%w: control %d in %d-qubit register", ErrQubitOutOfRange, ctrl, numQubits)
	}

	if f == nil {
		return ErrNilTransform
	}

	switch s {
	case StrategyScan:
		controlledScan(amps, ctrl, f)
	case StrategyBlend:
		controlledBlend(amps, ctrl, f)
	case StrategyAffix:
		controlledAffix(amps, ctrl, f)
	case StrategyPaired:
		controlledPaired(amps, ctrl, f)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownStrategy, uint32(s))
	}

	return nil
}

// controlledScan visits all 2^N indices and branches on the control bit.
func controlledScan[T Amplitude](amps []T, c int, f func(T) T) {
	parallel.For(len(amps), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if bitops.GetBit(uint64(i), c) == 1 {
				amps[i] = f(amps[i])
			}
		}
	})
}

// controlledBlend visits all 2^N indices and mixes the old and transformed
// values with a 0/1 weight, trading the data-dependent branch for an
// unconditional f evaluation per amplitude.
func controlledBlend[T Amplitude](amps []T, c int, f func(T) T) {
	weights := [2]T{0, 1}

	parallel.For(len(amps), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			b := weights[bitops.GetBit(uint64(i), c)]
			amps[i] = (1-b)*amps[i] + b*f(amps[i])
		}
	})
}

// controlledAffix enumerates prefix/suffix pairs around the control bit and
// reconstructs only the indices whose control bit is set, so exactly half
// the array is visited. The two loop dimensions are flattened into one
// index space to keep the partition contiguous.
func controlledAffix[T Amplitude](amps []T, c int, f func(T) T) {
	parallel.For(len(amps)>>1, func(lo, hi int) {
		for m := lo; m < hi; m++ {
			// m splits as prefix j above the control bit, suffix i below it.
			j := uint64(m) >> c
			i := bitops.Truncate(uint64(m), c)
			j1i := bitops.FlipBit(bitops.FromAffix(j, i, c), c)
			amps[j1i] = f(amps[j1i])
		}
	})
}

// controlledPaired walks the compressed half-length index space, expanding
// each value by inserting a zero at the control position and flipping it.
func controlledPaired[T Amplitude](amps []T, c int, f func(T) T) {
	parallel.For(len(amps)>>1, func(lo, hi int) {
		for m := lo; m < hi; m++ {
			i := bitops.FlipBit(bitops.InsertZeroBit(uint64(m), c), c)
			amps[i] = f(amps[i])
		}
	})
}
