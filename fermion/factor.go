// SPDX-License-Identifier: MIT

package fermion

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/katalvlaran/fermiops/core"
)

// Factor is a single fermionic ladder operator.
type Factor struct {
	// Creation selects a†_Mode (true) or a_Mode (false).
	Creation bool
	// Mode is the spin-orbital index.
	Mode uint32
}

// Cre returns the creation operator a†_mode.
func Cre(mode uint32) Factor { return Factor{Creation: true, Mode: mode} }

// Ann returns the annihilation operator a_mode.
func Ann(mode uint32) Factor { return Factor{Mode: mode} }

// Adjoint swaps creation and annihilation on the same mode.
func (f Factor) Adjoint() Factor { return Factor{Creation: !f.Creation, Mode: f.Mode} }

// AppendKey appends a 5-byte key: action byte, then big-endian mode.
func (f Factor) AppendKey(dst []byte) []byte {
	action := byte(0)
	if f.Creation {
		action = 1
	}

	return binary.BigEndian.AppendUint32(append(dst, action), f.Mode)
}

// String renders "+_p" for creation and "-_p" for annihilation.
func (f Factor) String() string {
	if f.Creation {
		return "+_" + strconv.FormatUint(uint64(f.Mode), 10)
	}

	return "-_" + strconv.FormatUint(uint64(f.Mode), 10)
}

// Operator is a fermionic operator.
type Operator = core.Operator[Factor]

// Term is one summand of an Operator.
type Term = core.Term[Factor]

// New builds an Operator from the flat binding layout: per-factor actions
// (true = creation) and mode indices, plus term offsets. Inputs are copied.
// Errors wrap core.ErrShape.
func New(coeffs []complex128, actions []bool, indices []uint32, offsets []int) (*Operator, error) {
	if len(actions) != len(indices) {
		return nil, fmt.Errorf("fermion.New: %d actions vs %d indices: %w", len(actions), len(indices), core.ErrShape)
	}
	factors := make([]Factor, len(actions))
	for i, cre := range actions {
		factors[i] = Factor{Creation: cre, Mode: indices[i]}
	}
	op, err := core.New(coeffs, factors, offsets)
	if err != nil {
		return nil, fmt.Errorf("fermion: %w", err)
	}

	return op, nil
}

// Zero returns the empty fermionic operator.
func Zero() *Operator { return core.Zero[Factor]() }

// One returns the fermionic identity.
func One() *Operator { return core.One[Factor]() }

// FromTerms builds an operator from explicit terms.
func FromTerms(terms ...Term) *Operator { return core.FromTerms(terms...) }

// T is shorthand for a Term with the given coefficient and factors.
func T(coeff complex128, factors ...Factor) Term {
	return Term{Coeff: coeff, Factors: factors}
}
