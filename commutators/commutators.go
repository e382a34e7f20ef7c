// SPDX-License-Identifier: MIT

package commutators

import "github.com/katalvlaran/fermiops/core"

// Commutator returns [A, B] = AB − BA.
func Commutator[F core.Factor[F]](a, b *core.Operator[F]) *core.Operator[F] {
	return a.Compose(b).Sub(b.Compose(a))
}

// AntiCommutator returns {A, B} = AB + BA.
func AntiCommutator[F core.Factor[F]](a, b *core.Operator[F]) *core.Operator[F] {
	return a.Compose(b).Add(b.Compose(a))
}

// DoubleCommutator returns the symmetrised nested commutator of A, B and C.
//
// With sign == false it equals ([[A, B], C] + [A, [B, C]]) / 2; with
// sign == true the roles of the outer commutators are replaced by
// anticommutators, giving ({[A, B], C} + {A, [B, C]}) / 2.
// The six triple products are emitted in the order ABC, CBA, BAC, CAB, ACB, BCA.
func DoubleCommutator[F core.Factor[F]](a, b, c *core.Operator[F], sign bool) *core.Operator[F] {
	s := complex128(1)
	if sign {
		s = -1
	}

	abc := a.Compose(b).Compose(c)
	cba := c.Compose(b).Compose(a)
	bac := b.Compose(a).Compose(c)
	cab := c.Compose(a).Compose(b)
	acb := a.Compose(c).Compose(b)
	bca := b.Compose(c).Compose(a)

	return core.Sum(
		abc,
		cba.Scale(s),
		bac.Scale(-0.5),
		cab.Scale(-0.5*s),
		acb.Scale(-0.5),
		bca.Scale(-0.5*s),
	)
}
