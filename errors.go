package statevec

import "errors"

// Sentinel errors returned by statevector operations.
var (
	// ErrNilVector is returned when a nil or empty amplitude slice is passed
	// to an applier.
	ErrNilVector = errors.New("statevec: nil or empty statevector")

	// ErrInvalidLength is returned when a statevector's length is not a
	// power of two.
	ErrInvalidLength = errors.New("statevec: statevector length is not a power of two")

	// ErrInvalidQubits is returned when a register size is not in
	// [1, MaxQubits].
	ErrInvalidQubits = errors.New("statevec: invalid register size")

	// ErrQubitOutOfRange is returned when a qubit index is negative or not
	// below the register size.
	ErrQubitOutOfRange = errors.New("statevec: qubit index out of range")

	// ErrInvalidControls is returned when a control set is empty, contains
	// out-of-range positions, or is not strictly increasing.
	ErrInvalidControls = errors.New("statevec: invalid control set")

	// ErrSameQubit is returned when a two-qubit gate is given the same qubit
	// twice.
	ErrSameQubit = errors.New("statevec: target qubits must differ")

	// ErrNilTransform is returned when a controlled applier is passed a nil
	// transform function.
	ErrNilTransform = errors.New("statevec: nil transform")

	// ErrUnknownStrategy is returned when a Strategy value has no
	// implementation for the requested operation.
	ErrUnknownStrategy = errors.New("statevec: unknown or unsupported strategy")
)
