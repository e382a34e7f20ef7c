// SPDX-License-Identifier: MIT

package majorana

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/katalvlaran/fermiops/core"
)

// Factor is a single Majorana operator γ_Mode.
type Factor struct {
	Mode uint32
}

// G returns γ_mode.
func G(mode uint32) Factor { return Factor{Mode: mode} }

// Adjoint returns f; Majorana operators are Hermitian.
func (f Factor) Adjoint() Factor { return f }

// AppendKey appends the big-endian mode.
func (f Factor) AppendKey(dst []byte) []byte {
	return binary.BigEndian.AppendUint32(dst, f.Mode)
}

// String renders "_i".
func (f Factor) String() string { return "_" + strconv.FormatUint(uint64(f.Mode), 10) }

// Operator is a Majorana operator.
type Operator = core.Operator[Factor]

// Term is one summand of an Operator.
type Term = core.Term[Factor]

// New builds an Operator from flat mode indices and term offsets.
// Errors wrap core.ErrShape.
func New(coeffs []complex128, modes []uint32, offsets []int) (*Operator, error) {
	factors := make([]Factor, len(modes))
	for i, m := range modes {
		factors[i] = Factor{Mode: m}
	}
	op, err := core.New(coeffs, factors, offsets)
	if err != nil {
		return nil, fmt.Errorf("majorana: %w", err)
	}

	return op, nil
}

// Zero returns the empty Majorana operator.
func Zero() *Operator { return core.Zero[Factor]() }

// One returns the Majorana identity.
func One() *Operator { return core.One[Factor]() }

// FromTerms builds an operator from explicit terms.
func FromTerms(terms ...Term) *Operator { return core.FromTerms(terms...) }

// T is shorthand for a Term over the given modes.
func T(coeff complex128, modes ...uint32) Term {
	factors := make([]Factor, len(modes))
	for i, m := range modes {
		factors[i] = Factor{Mode: m}
	}

	return Term{Coeff: coeff, Factors: factors}
}
