// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
)

// ValidateTolerance returns ErrTolerance (wrapped) for negative or NaN tol.
// +Inf is accepted and treats every coefficient as negligible.
func ValidateTolerance(tol float64) error {
	if math.IsNaN(tol) || tol < 0 {
		return fmt.Errorf("tolerance %v: %w", tol, ErrTolerance)
	}

	return nil
}

// validateCSR checks the offsets array against the coefficient and factor counts.
func validateCSR(terms, factors int, offsets []int) error {
	if len(offsets) != terms+1 {
		return fmt.Errorf("%d offsets for %d terms: %w", len(offsets), terms, ErrShape)
	}
	if offsets[0] != 0 {
		return fmt.Errorf("offsets[0] = %d: %w", offsets[0], ErrShape)
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return fmt.Errorf("offsets[%d] = %d < offsets[%d] = %d: %w", i, offsets[i], i-1, offsets[i-1], ErrShape)
		}
	}
	if last := offsets[terms]; last != factors {
		return fmt.Errorf("final offset %d != %d factors: %w", last, factors, ErrShape)
	}

	return nil
}
