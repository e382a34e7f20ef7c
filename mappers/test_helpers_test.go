// SPDX-License-Identifier: MIT
// Package mappers_test contains fixtures shared by the mapper tests.

package mappers_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/fermiops/fermion"
	"github.com/katalvlaran/fermiops/majorana"
	"github.com/katalvlaran/fermiops/qubit"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// pauliTerm is a labelled Pauli string such as "Z0 X2"; "I" is the identity.
type pauliTerm struct {
	label string
	coeff complex128
}

// observable builds a SparseObservable from labelled terms.
func observable(t testing.TB, n uint32, terms ...pauliTerm) *qubit.SparseObservable {
	t.Helper()
	var (
		coeffs     []complex128
		paulis     []qubit.Pauli
		indices    []uint32
		boundaries = []int{0}
	)
	letters := map[byte]qubit.Pauli{'X': qubit.X, 'Y': qubit.Y, 'Z': qubit.Z}
	for _, pt := range terms {
		coeffs = append(coeffs, pt.coeff)
		if pt.label != "I" {
			for _, tok := range strings.Fields(pt.label) {
				p, ok := letters[tok[0]]
				require.True(t, ok, "label %q", pt.label)
				q, err := strconv.ParseUint(tok[1:], 10, 32)
				require.NoError(t, err)
				paulis = append(paulis, p)
				indices = append(indices, uint32(q))
			}
		}
		boundaries = append(boundaries, len(paulis))
	}
	o, err := qubit.New(n, coeffs, paulis, indices, boundaries)
	require.NoError(t, err)

	return o
}

func requireObservableEquiv(t testing.TB, want, got *qubit.SparseObservable, tol float64) {
	t.Helper()
	ok, err := want.Equiv(got, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%s\ngot:\n%s", want, got)
}

func canonicalFermion(t testing.TB, op *fermion.Operator) *fermion.Operator {
	t.Helper()
	s, err := fermion.NormalOrdered(op).Simplify(tol)
	require.NoError(t, err)

	return s
}

func canonicalMajorana(t testing.TB, op *majorana.Operator) *majorana.Operator {
	t.Helper()
	s, err := majorana.NormalOrdered(op).Simplify(tol)
	require.NoError(t, err)

	return s
}
