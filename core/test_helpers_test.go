// SPDX-License-Identifier: MIT
// Package core_test contains test helpers.
//
// Purpose:
//   - Provide a tiny factor kind (sym) so the term store can be tested
//     without depending on the fermion or majorana packages.
//   - Keep fixtures deterministic and small.

package core_test

import (
	"testing"

	"github.com/katalvlaran/fermiops/core"
	"github.com/stretchr/testify/require"
)

// sym is a named symbol with an optional dagger.
type sym struct {
	name   byte
	dagger bool
}

func (s sym) Adjoint() sym { return sym{name: s.name, dagger: !s.dagger} }

func (s sym) AppendKey(dst []byte) []byte {
	d := byte(0)
	if s.dagger {
		d = 1
	}

	return append(dst, s.name, d)
}

func (s sym) String() string {
	if s.dagger {
		return string(s.name) + "†"
	}

	return string(s.name)
}

type op = core.Operator[sym]

var (
	a  = sym{name: 'a'}
	ad = sym{name: 'a', dagger: true}
	b  = sym{name: 'b'}
	bd = sym{name: 'b', dagger: true}
)

// term is shorthand for core.Term[sym].
func term(c complex128, fs ...sym) core.Term[sym] {
	return core.Term[sym]{Coeff: c, Factors: fs}
}

// mustNew builds an operator from CSR arrays or fails the test.
func mustNew(t testing.TB, coeffs []complex128, factors []sym, offsets []int) *op {
	t.Helper()
	o, err := core.New(coeffs, factors, offsets)
	require.NoError(t, err)

	return o
}

// mustSimplify simplifies or fails the test.
func mustSimplify(t testing.TB, o *op, tol float64) *op {
	t.Helper()
	s, err := o.Simplify(tol)
	require.NoError(t, err)

	return s
}

// requireEquiv asserts Equiv(want, got, tol).
func requireEquiv(t testing.TB, want, got *op, tol float64) {
	t.Helper()
	ok, err := want.Equiv(got, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "not equivalent within %g:\nwant:\n%s\ngot:\n%s", tol, want, got)
}
