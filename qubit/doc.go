// SPDX-License-Identifier: MIT

// Package qubit provides SparseObservable, a Pauli-sum operator on a fixed
// number of qubits stored in the same compressed sparse row layout as
// core.Operator:
//
//	coeffs     []complex128 // one per term
//	paulis     []Pauli      // non-identity Pauli letters, all terms concatenated
//	indices    []uint32     // qubit index of each letter, strictly increasing per term
//	boundaries []int        // len(coeffs)+1 term boundaries
//
// Qubits absent from a term carry the identity. The zero-length term is the
// identity operator.
//
// Products follow the single-qubit Pauli algebra with phase tracking:
//
//	XY = iZ   YZ = iX   ZX = iY   YX = −iZ   ZY = −iX   XZ = −iY   PP = I
//
// Like core.Operator, nothing is canonicalized implicitly; Canonicalize
// merges identical Pauli strings and prunes small coefficients.
//
// Errors:
//
//	ErrShape           - malformed boundaries or length mismatch.
//	ErrOutOfRange      - qubit index ≥ NumQubits, or mismatched qubit counts.
//	ErrUnsortedIndices - qubit indices of a term not strictly increasing.
//	ErrPauli           - unknown Pauli letter.
package qubit
