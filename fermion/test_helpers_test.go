// SPDX-License-Identifier: MIT
// Package fermion_test contains shared assertions.

package fermion_test

import (
	"testing"

	"github.com/katalvlaran/fermiops/fermion"
	"github.com/stretchr/testify/require"
)

// canonical normal-orders and simplifies op.
func canonical(t testing.TB, op *fermion.Operator) *fermion.Operator {
	t.Helper()
	s, err := fermion.NormalOrdered(op).Simplify(1e-12)
	require.NoError(t, err)

	return s
}

// requireEquiv asserts want ≈ got at tol.
func requireEquiv(t testing.TB, want, got *fermion.Operator, tol float64) {
	t.Helper()
	ok, err := want.Equiv(got, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "not equivalent within %g:\nwant:\n%s\ngot:\n%s", tol, want, got)
}
