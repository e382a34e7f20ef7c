// SPDX-License-Identifier: MIT
// Package fermion: normal-order engine.
//
// MAIN DESCRIPTION:
//   Each term is rewritten independently by an insertion sort on its factor
//   list. The sort moves factors left across neighbours that must follow them
//   and applies the canonical anticommutation relations on every swap:
//     - different modes:             x y → −y x
//     - same action, same mode:      the term vanishes (a†_p a†_p = a_p a_p = 0)
//     - a_p a†_p on the same mode:   a_p a†_p → 1 − a†_p a_p
//   The last rule branches. The contracted branch (pair removed) is pushed on
//   an explicit worklist and processed like any other term; the main branch
//   continues with the swapped pair and a flipped sign.
//
// Complexity:
//   - O(m²) swaps per branch for a term of length m; up to 2^k branches for k
//     contractible pairs.
//
// Determinism:
//   - For every input term, the main branch is emitted before its contracted
//     branches, and branches pushed later are emitted first (LIFO).
//   - Terms are expanded in input order; WithWorkers only distributes the
//     per-term work and never changes the output.

package fermion

import (
	"slices"

	"github.com/katalvlaran/fermiops/core"
)

// NormalOrdered returns op rewritten into normal order. The result is not
// simplified: duplicate products and exact zeros are kept for the caller to
// merge with Simplify.
//
// Options: core.WithOrdering, core.WithWorkers, core.WithLogger.
func NormalOrdered(op *Operator, opts ...core.Option) *Operator {
	ordering := core.GatherOptions(opts...).Ordering()

	return core.ExpandTerms(op, func(t Term) *Operator {
		return normalOrderTerm(t, ordering)
	}, opts...)
}

// branch is one pending rewrite on the worklist.
type branch struct {
	coeff complex128
	seq   []Factor
}

// precedes reports whether r must stand before l in canonical order.
func precedes(l, r Factor, ordering core.Ordering) bool {
	if l.Creation != r.Creation {
		return r.Creation
	}

	return ordering.Before(r.Mode, l.Mode)
}

// normalOrderTerm expands a single term into its normal-ordered summands.
func normalOrderTerm(t Term, ordering core.Ordering) *Operator {
	out := Zero()
	work := []branch{{coeff: t.Coeff, seq: slices.Clone(t.Factors)}}

	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]
		seq, coeff := cur.seq, cur.coeff

		vanished := false
	insert:
		for i := 1; i < len(seq); i++ {
			for j := i; j > 0; j-- {
				l, r := seq[j-1], seq[j]
				if l.Creation == r.Creation && l.Mode == r.Mode {
					vanished = true
					break insert
				}
				if !precedes(l, r, ordering) {
					break
				}
				if r.Creation && l.Mode == r.Mode {
					contracted := make([]Factor, 0, len(seq)-2)
					contracted = append(append(contracted, seq[:j-1]...), seq[j+1:]...)
					work = append(work, branch{coeff: coeff, seq: contracted})
				}
				seq[j-1], seq[j] = r, l
				coeff = -coeff
			}
		}
		if !vanished {
			out.AddTerm(seq, coeff)
		}
	}

	return out
}
