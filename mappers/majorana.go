// SPDX-License-Identifier: MIT

package mappers

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fermiops/core"
	"github.com/katalvlaran/fermiops/fermion"
	"github.com/katalvlaran/fermiops/majorana"
)

// maxPairedMode is the largest fermionic mode whose Majorana partner 2j+1 fits in uint32.
const maxPairedMode = (math.MaxUint32 - 1) / 2

// FermionToMajorana rewrites op in the Majorana basis. The result is not
// normal-ordered or simplified.
//
// Errors: ErrOutOfRange if a mode exceeds the pairable range.
func FermionToMajorana(op *fermion.Operator, opts ...core.Option) (*majorana.Operator, error) {
	for _, t := range op.All() {
		for _, f := range t.Factors {
			if f.Mode > maxPairedMode {
				return nil, fmt.Errorf("mappers.FermionToMajorana: mode %d: %w", f.Mode, ErrOutOfRange)
			}
		}
	}

	return MapTerms(op, OperatorAlgebra[majorana.Factor]{}, fermionImage, opts...), nil
}

// fermionImage returns ½ γ_2j ∓ ½i γ_2j+1 for a†_j / a_j.
func fermionImage(f fermion.Factor) *majorana.Operator {
	im := complex(0, 0.5)
	if f.Creation {
		im = -im
	}

	return majorana.FromTerms(
		majorana.T(0.5, 2*f.Mode),
		majorana.T(im, 2*f.Mode+1),
	)
}

// MajoranaToFermion rewrites op in the fermionic basis, pairing γ_2j and
// γ_2j+1 into mode j. The result is not normal-ordered or simplified.
func MajoranaToFermion(op *majorana.Operator, opts ...core.Option) *fermion.Operator {
	return MapTerms(op, OperatorAlgebra[fermion.Factor]{}, majoranaImage, opts...)
}

// majoranaImage returns a†_j + a_j for γ_2j and i a†_j − i a_j for γ_2j+1.
func majoranaImage(g majorana.Factor) *fermion.Operator {
	j := g.Mode / 2
	if g.Mode%2 == 0 {
		return fermion.FromTerms(
			fermion.T(1, fermion.Cre(j)),
			fermion.T(1, fermion.Ann(j)),
		)
	}

	return fermion.FromTerms(
		fermion.T(1i, fermion.Cre(j)),
		fermion.T(-1i, fermion.Ann(j)),
	)
}
