// SPDX-License-Identifier: MIT

package core

import (
	"golang.org/x/sync/errgroup"
)

// ParallelFor calls fn(i) for every i in [0, n) on at most workers goroutines
// and returns when all calls are done. workers <= 1 runs sequentially on the
// calling goroutine. fn must only write state owned by index i.
func ParallelFor(n, workers int, fn func(i int)) {
	if workers <= 1 || n <= 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range n {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait() // fn cannot fail
}

// ExpandTerms maps every term of op through expand and concatenates the
// partial results in term order. With WithWorkers(n > 1) the terms are
// expanded concurrently; the output is identical to the sequential run.
//
// expand receives a Term whose Factors alias op's storage and must not be
// modified.
func ExpandTerms[F Factor[F], G Factor[G]](op *Operator[F], expand func(Term[F]) *Operator[G], opts ...Option) *Operator[G] {
	o := GatherOptions(opts...)
	parts := make([]*Operator[G], op.Len())
	ParallelFor(op.Len(), o.workers, func(i int) {
		parts[i] = expand(Term[F]{Coeff: op.coeffs[i], Factors: op.view(i)})
	})
	out := Sum(parts...)
	o.logger.Debug("expanded terms",
		"in", op.Len(),
		"out", out.Len(),
		"workers", o.workers)

	return out
}

// Sum concatenates the terms of ops in argument order. nil entries are skipped.
func Sum[F Factor[F]](ops ...*Operator[F]) *Operator[F] {
	terms, factors := 0, 0
	for _, p := range ops {
		if p != nil {
			terms += len(p.coeffs)
			factors += len(p.factors)
		}
	}
	out := withCapacity[F](terms, factors)
	for _, p := range ops {
		if p == nil {
			continue
		}
		shift := len(out.factors)
		out.coeffs = append(out.coeffs, p.coeffs...)
		out.factors = append(out.factors, p.factors...)
		for _, off := range p.offsets[1:] {
			out.offsets = append(out.offsets, off+shift)
		}
	}

	return out
}
