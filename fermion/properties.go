// SPDX-License-Identifier: MIT

package fermion

import "fmt"

// IsHermitian reports whether op equals its adjoint within tol.
//
// The difference op − op† is normal-ordered before the comparison, so
// operators that are Hermitian only up to reordering (a_0 a†_0 vs 1 − a†_0 a_0)
// are recognised as well.
func IsHermitian(op *Operator, tol float64) (bool, error) {
	diff := NormalOrdered(op.Sub(op.Adjoint()))
	ok, err := diff.IsZero(tol)
	if err != nil {
		return false, fmt.Errorf("fermion.IsHermitian: %w", err)
	}

	return ok, nil
}

// ConservesParticleNumber reports whether every term holds as many creation
// as annihilation factors. The zero operator conserves particle number.
func ConservesParticleNumber(op *Operator) bool {
	for _, t := range op.All() {
		balance := 0
		for _, f := range t.Factors {
			if f.Creation {
				balance++
			} else {
				balance--
			}
		}
		if balance != 0 {
			return false
		}
	}

	return true
}
