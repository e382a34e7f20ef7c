// SPDX-License-Identifier: MIT

package fcidump

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/fermiops/fermion"
	"github.com/katalvlaran/fermiops/integrals"
)

// DefaultISym is the wave-function symmetry assumed when the header omits ISYM.
const DefaultISym = 1

// FCIDump is the in-memory content of an FCIDump file.
//
// Integral tables use the packed layouts of package integrals:
// OneBodyA/OneBodyB hold NumPairs(Norb) entries, TwoBodyAA/TwoBodyBB hold
// S8Len(Norb) entries and TwoBodyAB holds NumPairs(Norb)² entries. The beta
// tables are either all nil (restricted) or all allocated (unrestricted).
type FCIDump struct {
	Norb  uint32
	Nelec uint32
	Ms2   uint32
	ISym  uint32

	// OrbSym lists the irreducible representation of every orbital; empty if absent.
	OrbSym []uint32

	Constant    float64
	HasConstant bool

	// OrbitalEnergies is nil unless the file carried "i 0 0 0" lines.
	OrbitalEnergies []float64

	OneBodyA  []float64
	OneBodyB  []float64
	TwoBodyAA []float64
	TwoBodyAB []float64
	TwoBodyBB []float64
}

// tablesFit reports whether every packed table for norb orbitals has a
// length representable as int. The αβ table (NumPairs²) is the largest.
func tablesFit(norb uint32) bool {
	np := uint64(norb) * (uint64(norb) + 1) / 2
	hi, lo := bits.Mul64(np, np+1)

	return hi == 0 && lo <= math.MaxInt
}

// newDump allocates the restricted tables for norb orbitals.
func newDump(norb uint32) *FCIDump {
	return &FCIDump{
		Norb:      norb,
		ISym:      DefaultISym,
		OneBodyA:  make([]float64, integrals.NumPairs(norb)),
		TwoBodyAA: make([]float64, integrals.S8Len(norb)),
	}
}

// Unrestricted reports whether the dump carries separate beta tables.
func (d *FCIDump) Unrestricted() bool { return d.OneBodyB != nil }

// ensureBeta allocates all beta tables on first use.
func (d *FCIDump) ensureBeta() {
	if d.OneBodyB != nil {
		return
	}
	np := integrals.NumPairs(d.Norb)
	d.OneBodyB = make([]float64, np)
	d.TwoBodyAB = make([]float64, np*np)
	d.TwoBodyBB = make([]float64, integrals.S8Len(d.Norb))
}

// Validate checks table lengths against Norb and the all-or-nothing rule for
// beta tables.
func (d *FCIDump) Validate() error {
	if d == nil {
		return fmt.Errorf("Validate: nil FCIDump: %w", ErrInvalid)
	}
	if !tablesFit(d.Norb) {
		return fmt.Errorf("Validate: Norb=%d overflows table sizes: %w", d.Norb, ErrInvalid)
	}
	np, s8 := integrals.NumPairs(d.Norb), integrals.S8Len(d.Norb)
	check := func(name string, got, want int) error {
		if got != want {
			return fmt.Errorf("Validate: %s has %d entries, want %d: %w", name, got, want, ErrInvalid)
		}
		return nil
	}
	if err := check("OneBodyA", len(d.OneBodyA), np); err != nil {
		return err
	}
	if err := check("TwoBodyAA", len(d.TwoBodyAA), s8); err != nil {
		return err
	}
	beta := d.OneBodyB != nil || d.TwoBodyAB != nil || d.TwoBodyBB != nil
	if beta {
		if err := check("OneBodyB", len(d.OneBodyB), np); err != nil {
			return err
		}
		if err := check("TwoBodyAB", len(d.TwoBodyAB), np*np); err != nil {
			return err
		}
		if err := check("TwoBodyBB", len(d.TwoBodyBB), s8); err != nil {
			return err
		}
	}
	if len(d.OrbSym) != 0 {
		if err := check("OrbSym", len(d.OrbSym), int(d.Norb)); err != nil {
			return err
		}
	}
	if d.OrbitalEnergies != nil {
		if err := check("OrbitalEnergies", len(d.OrbitalEnergies), int(d.Norb)); err != nil {
			return err
		}
	}

	return nil
}

// FermionOperator builds the electronic Hamiltonian on 2·Norb modes.
//
// The constant, when present, comes first as an identity term. A restricted
// dump expands its tables through the spin-symmetric constructors; an
// unrestricted one through the spin-resolved constructors. Orbital energies
// are metadata and do not contribute.
func (d *FCIDump) FermionOperator() (*fermion.Operator, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	op := fermion.Zero()
	if d.HasConstant {
		op.AddTerm(nil, complex(d.Constant, 0))
	}

	var err error
	if d.Unrestricted() {
		if err = integrals.Add1BodyTrilSpin(op, d.OneBodyA, d.OneBodyB, d.Norb); err == nil {
			err = integrals.Add2BodyTrilSpin(op, d.TwoBodyAA, d.TwoBodyAB, d.TwoBodyBB, d.Norb)
		}
	} else {
		if err = integrals.Add1BodyTrilSpinSym(op, d.OneBodyA, d.Norb); err == nil {
			err = integrals.Add2BodyTrilSpinSym(op, d.TwoBodyAA, d.Norb)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("FermionOperator: %w", err)
	}

	return op, nil
}
