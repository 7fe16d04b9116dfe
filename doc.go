// Package statevec applies controlled unitary operations to dense qubit
// statevectors and compares the index-enumeration strategies for doing so.
//
// A register of N qubits is a slice of 2^N amplitudes; bit b of an
// amplitude's index is the value of qubit b. The controlled appliers
// transform exactly the amplitudes whose index satisfies the control bits,
// selected by one of four interchangeable strategies that trade branching
// against the number of array slots visited. The package also implements
// the Quantum Fourier Transform twice: as the literal gate circuit, and
// with each controlled-phase ladder collapsed into a single diagonal pass.
// The bench and assoc packages time these against each other and export
// the statistics for analysis.
package statevec
