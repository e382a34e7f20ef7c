// SPDX-License-Identifier: MIT

package majorana

import "fmt"

// IsHermitian reports whether op equals its adjoint within tol, comparing the
// normal-ordered difference op − op† against zero.
func IsHermitian(op *Operator, tol float64) (bool, error) {
	ok, err := NormalOrdered(op.Sub(op.Adjoint())).IsZero(tol)
	if err != nil {
		return false, fmt.Errorf("majorana.IsHermitian: %w", err)
	}

	return ok, nil
}

// IsEven reports whether every term has an even number of factors.
func IsEven(op *Operator) bool {
	for _, t := range op.All() {
		if len(t.Factors)%2 != 0 {
			return false
		}
	}

	return true
}
