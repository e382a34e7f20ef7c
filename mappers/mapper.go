// SPDX-License-Identifier: MIT

package mappers

import (
	"github.com/katalvlaran/fermiops/core"
)

// Algebra is a target of factor-wise substitution.
type Algebra[T any] interface {
	// Unit returns c times the multiplicative identity.
	Unit(c complex128) T
	// Compose returns the product x · y.
	Compose(x, y T) T
	// Sum returns the sum of parts in order.
	Sum(parts ...T) T
}

// MapTerms replaces every factor of op by image(factor) and multiplies the
// images left to right, scaled by the term coefficient. Term results are
// summed in term order.
func MapTerms[F core.Factor[F], T any](op *core.Operator[F], alg Algebra[T], image func(F) T, opts ...core.Option) T {
	o := core.GatherOptions(opts...)
	terms := termViews(op)
	parts := make([]T, len(terms))
	core.ParallelFor(len(terms), o.Workers(), func(i int) {
		t := terms[i]
		acc := alg.Unit(t.Coeff)
		for _, f := range t.Factors {
			acc = alg.Compose(acc, image(f))
		}
		parts[i] = acc
	})
	o.Logger().Debug("mapped terms", "terms", op.Len(), "workers", o.Workers())

	return alg.Sum(parts...)
}

// termViews collects the terms of op without copying their factors.
func termViews[F core.Factor[F]](op *core.Operator[F]) []core.Term[F] {
	terms := make([]core.Term[F], 0, op.Len())
	for _, t := range op.All() {
		terms = append(terms, t)
	}

	return terms
}

// OperatorAlgebra is the Algebra of core operators over factor kind G.
type OperatorAlgebra[G core.Factor[G]] struct{}

// Unit implements Algebra.
func (OperatorAlgebra[G]) Unit(c complex128) *core.Operator[G] {
	return core.FromTerms(core.Term[G]{Coeff: c})
}

// Compose implements Algebra.
func (OperatorAlgebra[G]) Compose(x, y *core.Operator[G]) *core.Operator[G] {
	return x.Compose(y)
}

// Sum implements Algebra.
func (OperatorAlgebra[G]) Sum(parts ...*core.Operator[G]) *core.Operator[G] {
	return core.Sum(parts...)
}
