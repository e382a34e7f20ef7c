// SPDX-License-Identifier: MIT

package core

import "errors"

// Sentinel errors for the term store. Every message is prefixed with "core: ";
// detection sites wrap them with context via fmt.Errorf("ctx: %w", ErrX), so
// callers must match with errors.Is.
var (
	// ErrShape indicates malformed CSR input: offsets not starting at zero,
	// decreasing offsets, or array lengths that disagree with each other.
	ErrShape = errors.New("core: malformed operator shape")

	// ErrTolerance indicates a negative or NaN tolerance.
	ErrTolerance = errors.New("core: tolerance must be non-negative and not NaN")

	// ErrOutOfRange indicates a term index outside [0, Len()).
	ErrOutOfRange = errors.New("core: term index out of range")

	// ErrDivideByZero indicates Div was called with a zero scalar.
	ErrDivideByZero = errors.New("core: division by zero")
)
