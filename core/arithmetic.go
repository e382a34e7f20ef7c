// SPDX-License-Identifier: MIT
// Package core: linear structure and products of operators.
//
// Every function here returns a fresh Operator and leaves its inputs intact.
// None of them merge duplicates or reorder factors: Add is concatenation,
// Compose is the full Cartesian product.

package core

import (
	"fmt"
	"math/cmplx"
	"slices"
)

// Add returns op + other: the terms of op followed by the terms of other.
// Complexity: O(|op| + |other|).
func (op *Operator[F]) Add(other *Operator[F]) *Operator[F] {
	out := withCapacity[F](len(op.coeffs)+len(other.coeffs), len(op.factors)+len(other.factors))
	out.coeffs = append(append(out.coeffs, op.coeffs...), other.coeffs...)
	out.factors = append(append(out.factors, op.factors...), other.factors...)
	out.offsets = append(out.offsets, op.offsets[1:]...)
	shift := len(op.factors)
	for _, off := range other.offsets[1:] {
		out.offsets = append(out.offsets, off+shift)
	}

	return out
}

// Sub returns op − other (other's coefficients negated and appended).
func (op *Operator[F]) Sub(other *Operator[F]) *Operator[F] {
	return op.Add(other.Scale(-1))
}

// Scale returns c · op. Terms are kept even when c is zero.
func (op *Operator[F]) Scale(c complex128) *Operator[F] {
	out := op.Clone()
	for i := range out.coeffs {
		out.coeffs[i] *= c
	}

	return out
}

// Neg returns −op.
func (op *Operator[F]) Neg() *Operator[F] { return op.Scale(-1) }

// Div returns op / c.
func (op *Operator[F]) Div(c complex128) (*Operator[F], error) {
	if c == 0 {
		return nil, fmt.Errorf("Div: %w", ErrDivideByZero)
	}

	return op.Scale(1 / c), nil
}

// Compose returns the operator product op · other.
//
// Implementation:
//   - Outer loop over the terms of op, inner loop over the terms of other.
//   - Each output term carries op's factors followed by other's factors and
//     the product of the two coefficients.
//
// The result has exactly |op|·|other| terms, in that Cartesian order.
// Complexity: O(|op|·|other|·(m_op + m_other)) where m is the longest term.
func (op *Operator[F]) Compose(other *Operator[F]) *Operator[F] {
	na, nb := len(op.coeffs), len(other.coeffs)
	out := withCapacity[F](na*nb, nb*len(op.factors)+na*len(other.factors))
	for i, ca := range op.coeffs {
		left := op.view(i)
		for j, cb := range other.coeffs {
			out.coeffs = append(out.coeffs, ca*cb)
			out.factors = append(append(out.factors, left...), other.view(j)...)
			out.offsets = append(out.offsets, len(out.factors))
		}
	}

	return out
}

// Pow returns op composed with itself n times; Pow(0) is One.
// No simplification happens between steps, so the term count is |op|^n.
func (op *Operator[F]) Pow(n uint) *Operator[F] {
	out := One[F]()
	for range n {
		out = out.Compose(op)
	}

	return out
}

// Adjoint returns the Hermitian conjugate: every factor sequence reversed
// with each factor replaced by its adjoint, and every coefficient conjugated.
func (op *Operator[F]) Adjoint() *Operator[F] {
	out := op.Clone()
	for i := range out.coeffs {
		out.coeffs[i] = cmplx.Conj(out.coeffs[i])
		seq := out.factors[out.offsets[i]:out.offsets[i+1]]
		slices.Reverse(seq)
		for k := range seq {
			seq[k] = seq[k].Adjoint()
		}
	}

	return out
}

// Equal reports strict, positional equality: same term count and, at every
// position, the same coefficient and the same factor sequence.
func (op *Operator[F]) Equal(other *Operator[F]) bool {
	return slices.Equal(op.coeffs, other.coeffs) &&
		slices.Equal(op.offsets, other.offsets) &&
		slices.Equal(op.factors, other.factors)
}
