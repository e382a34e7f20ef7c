// SPDX-License-Identifier: MIT

package majorana

import (
	"slices"

	"github.com/katalvlaran/fermiops/core"
)

// NormalOrdered returns op with every term sorted by mode and, under
// core.ReducePairs, with equal adjacent modes removed in pairs. The result is
// not simplified.
//
// Options: core.WithOrdering, core.WithPairConvention, core.WithWorkers, core.WithLogger.
func NormalOrdered(op *Operator, opts ...core.Option) *Operator {
	o := core.GatherOptions(opts...)
	ordering, convention := o.Ordering(), o.PairConvention()

	return core.ExpandTerms(op, func(t Term) *Operator {
		seq, sign := sortTerm(t.Factors, ordering)
		if convention == core.ReducePairs {
			seq = reducePairs(seq)
		}
		out := Zero()
		out.AddTerm(seq, sign*t.Coeff)

		return out
	}, opts...)
}

// sortTerm returns a sorted copy of seq and the sign (±1) of the permutation.
// Insertion sort counts transpositions of distinct modes only; equal modes are
// never swapped, which keeps the sort stable.
func sortTerm(seq []Factor, ordering core.Ordering) ([]Factor, complex128) {
	out := slices.Clone(seq)
	sign := complex128(1)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && ordering.Before(out[j].Mode, out[j-1].Mode); j-- {
			out[j-1], out[j] = out[j], out[j-1]
			sign = -sign
		}
	}

	return out, sign
}

// reducePairs drops γ_i γ_i pairs from a sorted sequence, in place.
func reducePairs(seq []Factor) []Factor {
	w := 0
	for i := 0; i < len(seq); {
		j := i
		for j < len(seq) && seq[j] == seq[i] {
			j++
		}
		if (j-i)%2 == 1 {
			seq[w] = seq[i]
			w++
		}
		i = j
	}

	return seq[:w]
}
