// SPDX-License-Identifier: MIT

package integrals

import (
	"fmt"

	"github.com/katalvlaran/fermiops/fermion"
	"gonum.org/v1/gonum/mat"
)

// insert1Body appends c·a†_i a_a and, off the diagonal, its mirror c·a†_a a_i.
func insert1Body(op *fermion.Operator, c complex128, i, a uint32) {
	op.AddTerm([]fermion.Factor{fermion.Cre(i), fermion.Ann(a)}, c)
	if i != a {
		op.AddTerm([]fermion.Factor{fermion.Cre(a), fermion.Ann(i)}, c)
	}
}

// addTril appends the packed one-body integrals h on modes shifted by offset.
func addTril(op *fermion.Operator, h []float64, offset uint32) {
	for ia, v := range h {
		if v == 0 {
			continue
		}
		i, a := InflateIndex(ia)
		insert1Body(op, complex(v, 0), uint32(i)+offset, uint32(a)+offset)
	}
}

// Add1BodyTril appends the spin-less packed one-body integrals h to op.
func Add1BodyTril(op *fermion.Operator, h []float64, norb uint32) error {
	if err := checkLen("Add1BodyTril: h", len(h), NumPairs(norb)); err != nil {
		return err
	}
	addTril(op, h, 0)

	return nil
}

// From1BodyTril builds Σ h_pq a†_p a_q on norb spin-less modes.
func From1BodyTril(h []float64, norb uint32) (*fermion.Operator, error) {
	op := fermion.Zero()
	if err := Add1BodyTril(op, h, norb); err != nil {
		return nil, err
	}

	return op, nil
}

// Add1BodyTrilSpinSym appends the packed restricted one-body integrals to op,
// once on the alpha modes and once on the beta modes.
func Add1BodyTrilSpinSym(op *fermion.Operator, h []float64, norb uint32) error {
	if err := checkLen("Add1BodyTrilSpinSym: h", len(h), NumPairs(norb)); err != nil {
		return err
	}
	for ia, v := range h {
		if v == 0 {
			continue
		}
		i, a := InflateIndex(ia)
		c := complex(v, 0)
		insert1Body(op, c, uint32(i), uint32(a))
		insert1Body(op, c, uint32(i)+norb, uint32(a)+norb)
	}

	return nil
}

// From1BodyTrilSpinSym builds the restricted one-body operator on 2·norb modes.
func From1BodyTrilSpinSym(h []float64, norb uint32) (*fermion.Operator, error) {
	op := fermion.Zero()
	if err := Add1BodyTrilSpinSym(op, h, norb); err != nil {
		return nil, err
	}

	return op, nil
}

// Add1BodyTrilSpin appends the packed unrestricted one-body integrals: all
// alpha terms (ha) first, then all beta terms (hb).
func Add1BodyTrilSpin(op *fermion.Operator, ha, hb []float64, norb uint32) error {
	if err := checkLen("Add1BodyTrilSpin: ha", len(ha), NumPairs(norb)); err != nil {
		return err
	}
	if err := checkLen("Add1BodyTrilSpin: hb", len(hb), NumPairs(norb)); err != nil {
		return err
	}
	addTril(op, ha, 0)
	addTril(op, hb, norb)

	return nil
}

// From1BodyTrilSpin builds the unrestricted one-body operator on 2·norb modes.
func From1BodyTrilSpin(ha, hb []float64, norb uint32) (*fermion.Operator, error) {
	op := fermion.Zero()
	if err := Add1BodyTrilSpin(op, ha, hb, norb); err != nil {
		return nil, err
	}

	return op, nil
}

// addFull appends every non-zero h[p][q] as h_pq a†_p a_q on modes shifted by offset.
func addFull(op *fermion.Operator, h mat.Matrix, offset uint32) {
	r, c := h.Dims()
	for p := range r {
		for q := range c {
			if v := h.At(p, q); v != 0 {
				op.AddTerm([]fermion.Factor{fermion.Cre(uint32(p) + offset), fermion.Ann(uint32(q) + offset)}, complex(v, 0))
			}
		}
	}
}

func squareDim(name string, h mat.Matrix) (int, error) {
	r, c := h.Dims()
	if r != c {
		return 0, fmt.Errorf("%s: %d×%d matrix is not square: %w", name, r, c, ErrShape)
	}

	return r, nil
}

// From1BodyFull builds Σ h_pq a†_p a_q on spin-less modes from a square matrix.
// No symmetry is assumed; every non-zero element becomes one term.
func From1BodyFull(h mat.Matrix) (*fermion.Operator, error) {
	if _, err := squareDim("From1BodyFull: h", h); err != nil {
		return nil, err
	}
	op := fermion.Zero()
	addFull(op, h, 0)

	return op, nil
}

// From1BodyFullSpinSym builds the restricted one-body operator from a square
// norb×norb matrix, on alpha then beta modes.
func From1BodyFullSpinSym(h mat.Matrix) (*fermion.Operator, error) {
	n, err := squareDim("From1BodyFullSpinSym: h", h)
	if err != nil {
		return nil, err
	}
	op := fermion.Zero()
	addFull(op, h, 0)
	addFull(op, h, uint32(n))

	return op, nil
}

// From1BodyFullSpin builds the unrestricted one-body operator from two
// square matrices of equal size.
func From1BodyFullSpin(ha, hb mat.Matrix) (*fermion.Operator, error) {
	na, err := squareDim("From1BodyFullSpin: ha", ha)
	if err != nil {
		return nil, err
	}
	nb, err := squareDim("From1BodyFullSpin: hb", hb)
	if err != nil {
		return nil, err
	}
	if na != nb {
		return nil, fmt.Errorf("From1BodyFullSpin: %d vs %d orbitals: %w", na, nb, ErrShape)
	}
	op := fermion.Zero()
	addFull(op, ha, 0)
	addFull(op, hb, uint32(na))

	return op, nil
}
