// SPDX-License-Identifier: MIT

package qubit

import "errors"

// Sentinel errors for observable construction. Detection sites wrap them with
// context; match with errors.Is.
var (
	// ErrShape indicates malformed CSR input.
	ErrShape = errors.New("qubit: malformed observable shape")

	// ErrOutOfRange indicates a qubit index beyond the declared qubit count,
	// or operands declared on different qubit counts.
	ErrOutOfRange = errors.New("qubit: qubit index out of range")

	// ErrUnsortedIndices indicates qubit indices within a term that are not
	// strictly increasing.
	ErrUnsortedIndices = errors.New("qubit: term indices must be strictly increasing")

	// ErrPauli indicates a Pauli letter outside {X, Y, Z}.
	ErrPauli = errors.New("qubit: unknown Pauli letter")
)
