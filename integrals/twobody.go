// SPDX-License-Identifier: MIT

package integrals

import (
	"github.com/katalvlaran/fermiops/fermion"
)

// insert2Body appends c · a†_i a†_j a_b a_a.
func insert2Body(op *fermion.Operator, c complex128, i, j, b, a uint32) {
	op.AddTerm([]fermion.Factor{fermion.Cre(i), fermion.Cre(j), fermion.Ann(b), fermion.Ann(a)}, c)
}

// S8Len is the packed length of an 8-fold symmetric tensor on norb orbitals.
// It does not check for overflow: on 64-bit platforms the result is exact for
// norb up to about 7·10⁴. Callers taking norb from untrusted input must bound
// it first.
func S8Len(norb uint32) int {
	np := NumPairs(norb)

	return np * (np + 1) / 2
}

// Add2BodyTrilSpinSym appends the restricted two-body operator built from
// 8-fold packed integrals eri to op. Each index combination contributes the
// four spin blocks αα, βα, αβ and ββ.
func Add2BodyTrilSpinSym(op *fermion.Operator, eri []float64, norb uint32) error {
	if err := checkLen("Add2BodyTrilSpinSym: eri", len(eri), S8Len(norb)); err != nil {
		return err
	}
	n := norb
	var qs []quad
	for iajb, v := range eri {
		if v == 0 {
			continue
		}
		c := complex(0.5*v, 0)
		qs = expandS8(qs[:0], iajb)
		for _, q := range qs {
			i, a, j, b := uint32(q.i), uint32(q.a), uint32(q.j), uint32(q.b)
			insert2Body(op, c, i, j, b, a)
			insert2Body(op, c, i+n, j, b, a+n)
			insert2Body(op, c, i, j+n, b+n, a)
			insert2Body(op, c, i+n, j+n, b+n, a+n)
		}
	}

	return nil
}

// From2BodyTrilSpinSym builds the restricted two-body operator on 2·norb modes.
func From2BodyTrilSpinSym(eri []float64, norb uint32) (*fermion.Operator, error) {
	op := fermion.Zero()
	if err := Add2BodyTrilSpinSym(op, eri, norb); err != nil {
		return nil, err
	}

	return op, nil
}

// Add2BodyTrilSpin appends the unrestricted two-body operator to op: the
// 8-fold packed αα block, the 4-fold packed αβ block (emitted together with
// its βα image), then the 8-fold packed ββ block.
func Add2BodyTrilSpin(op *fermion.Operator, aa, ab, bb []float64, norb uint32) error {
	if err := checkLen("Add2BodyTrilSpin: aa", len(aa), S8Len(norb)); err != nil {
		return err
	}
	np := NumPairs(norb)
	if err := checkLen("Add2BodyTrilSpin: ab", len(ab), np*np); err != nil {
		return err
	}
	if err := checkLen("Add2BodyTrilSpin: bb", len(bb), S8Len(norb)); err != nil {
		return err
	}

	n := norb
	var qs []quad
	for iajb, v := range aa {
		if v == 0 {
			continue
		}
		c := complex(0.5*v, 0)
		qs = expandS8(qs[:0], iajb)
		for _, q := range qs {
			insert2Body(op, c, uint32(q.i), uint32(q.j), uint32(q.b), uint32(q.a))
		}
	}
	for iajb, v := range ab {
		if v == 0 {
			continue
		}
		c := complex(0.5*v, 0)
		qs = expandS4(qs[:0], iajb, np)
		for _, q := range qs {
			i, a, j, b := uint32(q.i), uint32(q.a), uint32(q.j), uint32(q.b)
			insert2Body(op, c, i, j+n, b+n, a)
			insert2Body(op, c, j+n, i, a, b+n)
		}
	}
	for iajb, v := range bb {
		if v == 0 {
			continue
		}
		c := complex(0.5*v, 0)
		qs = expandS8(qs[:0], iajb)
		for _, q := range qs {
			insert2Body(op, c, uint32(q.i)+n, uint32(q.j)+n, uint32(q.b)+n, uint32(q.a)+n)
		}
	}

	return nil
}

// From2BodyTrilSpin builds the unrestricted two-body operator on 2·norb modes.
func From2BodyTrilSpin(aa, ab, bb []float64, norb uint32) (*fermion.Operator, error) {
	op := fermion.Zero()
	if err := Add2BodyTrilSpin(op, aa, ab, bb, norb); err != nil {
		return nil, err
	}

	return op, nil
}

// From2BodyFullSpinSym builds the restricted two-body operator from a dense
// row-major tensor eri[((i·n + a)·n + j)·n + b] = (ia|jb). No permutational
// symmetry is assumed; every non-zero element contributes its four spin blocks.
func From2BodyFullSpinSym(eri []float64, norb uint32) (*fermion.Operator, error) {
	n := int(norb)
	if err := checkLen("From2BodyFullSpinSym: eri", len(eri), n*n*n*n); err != nil {
		return nil, err
	}
	op := fermion.Zero()
	for idx, v := range eri {
		if v == 0 {
			continue
		}
		b, rest := idx%n, idx/n
		j, rest := rest%n, rest/n
		a, i := rest%n, rest/n
		c := complex(0.5*v, 0)
		ui, ua, uj, ub, un := uint32(i), uint32(a), uint32(j), uint32(b), norb
		insert2Body(op, c, ui, uj, ub, ua)
		insert2Body(op, c, ui+un, uj, ub, ua+un)
		insert2Body(op, c, ui, uj+un, ub+un, ua)
		insert2Body(op, c, ui+un, uj+un, ub+un, ua+un)
	}

	return op, nil
}
