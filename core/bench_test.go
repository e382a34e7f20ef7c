// SPDX-License-Identifier: MIT
// Package core_test provides benchmarks for the canonicalization hot paths.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/fermiops/core"
)

var sinkOp *op

// randomish builds n terms of length 4 over a small alphabet, so that many
// sequences repeat and Simplify has real merging to do.
func randomish(n int) *op {
	o := core.Zero[sym]()
	alphabet := []sym{a, ad, b, bd}
	for i := range n {
		seq := make([]sym, 4)
		x := i * 2654435761
		for k := range seq {
			seq[k] = alphabet[(x>>(8*k))&3]
		}
		o.AddTerm(seq, complex(float64(i%13), float64(i%5)))
	}

	return o
}

func BenchmarkSimplify(b *testing.B) {
	for _, n := range []int{1_000, 10_000, 100_000} {
		src := randomish(n)
		b.Run(fmt.Sprintf("terms=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				s, err := src.Simplify(1e-12)
				if err != nil {
					b.Fatal(err)
				}
				sinkOp = s
			}
		})
	}
}

func BenchmarkCompose(b *testing.B) {
	x, y := randomish(300), randomish(300)
	b.ReportAllocs()
	for b.Loop() {
		sinkOp = x.Compose(y)
	}
}
