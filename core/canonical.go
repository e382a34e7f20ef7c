// SPDX-License-Identifier: MIT
// Package core: exact-duplicate canonicalization.
//
// Simplify and Equiv group terms by their byte-identical factor sequence. No
// algebraic rewriting happens here: a†_0 a_1 and −a_1 a†_0 are different keys.
// Grouping goes through a hash map keyed by the concatenated Factor.AppendKey
// encodings, so the cost is linear in the total factor count.

package core

import (
	"fmt"
	"math/cmplx"
)

// Ichop removes, in place, every term whose coefficient magnitude is ≤ tol.
// Remaining terms keep their order; nothing is merged.
func (op *Operator[F]) Ichop(tol float64) error {
	if err := ValidateTolerance(tol); err != nil {
		return fmt.Errorf("Ichop: %w", err)
	}

	// offsets[i+1] is read before offsets[kept] (kept <= i+1) is rewritten.
	kept, write, start := 0, 0, 0
	for i, c := range op.coeffs {
		end := op.offsets[i+1]
		if cmplx.Abs(c) > tol {
			write += copy(op.factors[write:], op.factors[start:end])
			op.coeffs[kept] = c
			kept++
			op.offsets[kept] = write
		}
		start = end
	}
	clear(op.factors[write:])
	op.coeffs = op.coeffs[:kept]
	op.factors = op.factors[:write]
	op.offsets = op.offsets[:kept+1]

	return nil
}

// Simplify merges terms with identical factor sequences by summing their
// coefficients, then drops merged terms with magnitude ≤ tol.
//
// Output order is the order in which each distinct sequence first occurs in
// op, which makes Simplify deterministic and idempotent.
// Complexity: O(total factors) expected.
func (op *Operator[F]) Simplify(tol float64) (*Operator[F], error) {
	if err := ValidateTolerance(tol); err != nil {
		return nil, fmt.Errorf("Simplify: %w", err)
	}

	sums, firsts := op.merge()
	out := withCapacity[F](len(sums), 0)
	for g, c := range sums {
		if cmplx.Abs(c) <= tol {
			continue
		}
		out.AddTerm(op.view(firsts[g]), c)
	}

	return out, nil
}

// merge groups terms by factor sequence. sums[g] is the total coefficient of
// group g and firsts[g] the index of its first term, groups in first-seen order.
func (op *Operator[F]) merge() (sums []complex128, firsts []int) {
	index := make(map[string]int, len(op.coeffs))
	var key []byte
	for i, c := range op.coeffs {
		key = key[:0]
		for _, f := range op.view(i) {
			key = f.AppendKey(key)
		}
		if g, ok := index[string(key)]; ok {
			sums[g] += c
			continue
		}
		index[string(key)] = len(sums)
		sums = append(sums, c)
		firsts = append(firsts, i)
	}

	return sums, firsts
}

// Equiv reports whether op − other vanishes after exact-duplicate merging,
// i.e. every merged coefficient has magnitude ≤ tol. Missing terms count as zero.
func (op *Operator[F]) Equiv(other *Operator[F], tol float64) (bool, error) {
	if err := ValidateTolerance(tol); err != nil {
		return false, fmt.Errorf("Equiv: %w", err)
	}

	sums, _ := op.Sub(other).merge()
	for _, c := range sums {
		if cmplx.Abs(c) > tol {
			return false, nil
		}
	}

	return true, nil
}

// IsZero reports whether op is Equiv to Zero within tol.
func (op *Operator[F]) IsZero(tol float64) (bool, error) {
	return op.Equiv(Zero[F](), tol)
}
