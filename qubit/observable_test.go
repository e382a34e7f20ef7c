// SPDX-License-Identifier: MIT
// Package qubit_test verifies construction, Pauli products and canonicalization.

package qubit_test

import (
	"testing"

	"github.com/katalvlaran/fermiops/core"
	"github.com/katalvlaran/fermiops/qubit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// single builds a one-term observable.
func single(t *testing.T, n uint32, c complex128, ps []qubit.Pauli, is []uint32) *qubit.SparseObservable {
	t.Helper()
	o, err := qubit.New(n, []complex128{c}, ps, is, []int{0, len(ps)})
	require.NoError(t, err)

	return o
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name       string
		n          uint32
		coeffs     []complex128
		paulis     []qubit.Pauli
		indices    []uint32
		boundaries []int
		want       error
	}{
		{"length mismatch", 2, []complex128{1}, []qubit.Pauli{qubit.X}, []uint32{}, []int{0, 1}, qubit.ErrShape},
		{"boundary count", 2, []complex128{1}, []qubit.Pauli{qubit.X}, []uint32{0}, []int{0}, qubit.ErrShape},
		{"boundary start", 2, []complex128{1}, []qubit.Pauli{qubit.X}, []uint32{0}, []int{1, 1}, qubit.ErrShape},
		{"boundary end", 2, []complex128{1}, []qubit.Pauli{qubit.X}, []uint32{0}, []int{0, 0}, qubit.ErrShape},
		{"decreasing", 2, []complex128{1, 1}, []qubit.Pauli{qubit.X}, []uint32{0}, []int{0, 2, 1}, qubit.ErrShape},
		{"bad letter", 2, []complex128{1}, []qubit.Pauli{7}, []uint32{0}, []int{0, 1}, qubit.ErrPauli},
		{"out of range", 2, []complex128{1}, []qubit.Pauli{qubit.Z}, []uint32{2}, []int{0, 1}, qubit.ErrOutOfRange},
		{"unsorted", 3, []complex128{1}, []qubit.Pauli{qubit.Z, qubit.X}, []uint32{2, 1}, []int{0, 2}, qubit.ErrUnsortedIndices},
		{"repeated", 3, []complex128{1}, []qubit.Pauli{qubit.Z, qubit.X}, []uint32{1, 1}, []int{0, 2}, qubit.ErrUnsortedIndices},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := qubit.New(tc.n, tc.coeffs, tc.paulis, tc.indices, tc.boundaries)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCompose_PauliTable(t *testing.T) {
	cases := []struct {
		p, q  qubit.Pauli
		coeff complex128
		want  []qubit.Pauli
	}{
		{qubit.X, qubit.Y, 1i, []qubit.Pauli{qubit.Z}},
		{qubit.Y, qubit.Z, 1i, []qubit.Pauli{qubit.X}},
		{qubit.Z, qubit.X, 1i, []qubit.Pauli{qubit.Y}},
		{qubit.Y, qubit.X, -1i, []qubit.Pauli{qubit.Z}},
		{qubit.Z, qubit.Y, -1i, []qubit.Pauli{qubit.X}},
		{qubit.X, qubit.Z, -1i, []qubit.Pauli{qubit.Y}},
		{qubit.X, qubit.X, 1, nil},
		{qubit.Y, qubit.Y, 1, nil},
	}
	for _, tc := range cases {
		t.Run(tc.p.String()+tc.q.String(), func(t *testing.T) {
			got, err := single(t, 1, 1, []qubit.Pauli{tc.p}, []uint32{0}).
				Compose(single(t, 1, 1, []qubit.Pauli{tc.q}, []uint32{0}))
			require.NoError(t, err)
			tm, err := got.Term(0)
			require.NoError(t, err)
			assert.Equal(t, tc.coeff, tm.Coeff)
			assert.Equal(t, len(tc.want), len(tm.Paulis))
			if len(tc.want) > 0 {
				assert.Equal(t, tc.want, tm.Paulis)
			}
		})
	}
}

func TestCompose_MergesDisjointAndShared(t *testing.T) {
	// (X0 Z2) · (Y0 X1) = (XY)_0 X1 Z2 = i Z0 X1 Z2
	l := single(t, 3, 2, []qubit.Pauli{qubit.X, qubit.Z}, []uint32{0, 2})
	r := single(t, 3, 0.5, []qubit.Pauli{qubit.Y, qubit.X}, []uint32{0, 1})
	got, err := l.Compose(r)
	require.NoError(t, err)

	tm, err := got.Term(0)
	require.NoError(t, err)
	assert.Equal(t, complex128(1i), tm.Coeff)
	assert.Equal(t, []qubit.Pauli{qubit.Z, qubit.X, qubit.Z}, tm.Paulis)
	assert.Equal(t, []uint32{0, 1, 2}, tm.Indices)
	assert.Equal(t, "Z0 X1 Z2", qubit.Label(tm.Paulis, tm.Indices))
}

func TestCompose_WidthMismatch(t *testing.T) {
	_, err := qubit.Identity(2).Compose(qubit.Identity(3))
	require.ErrorIs(t, err, qubit.ErrOutOfRange)
	_, err = qubit.Identity(2).Add(qubit.Identity(3))
	require.ErrorIs(t, err, qubit.ErrOutOfRange)
}

func TestCanonicalize(t *testing.T) {
	o, err := qubit.New(2,
		[]complex128{1, 2, -1, 1e-20, 3},
		[]qubit.Pauli{qubit.Z, qubit.X, qubit.Z, qubit.Y},
		[]uint32{0, 1, 0, 1},
		[]int{0, 1, 2, 3, 4, 4},
	)
	require.NoError(t, err)

	got, err := o.Canonicalize(1e-18)
	require.NoError(t, err)
	want, err := qubit.New(2, []complex128{2, 3}, []qubit.Pauli{qubit.X}, []uint32{1}, []int{0, 1, 1})
	require.NoError(t, err)

	assert.Equal(t, want.Coeffs(), got.Coeffs())
	assert.Equal(t, want.Boundaries(), got.Boundaries())
	ok, err := want.Equiv(got, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = o.Canonicalize(-1)
	require.ErrorIs(t, err, core.ErrTolerance)
}

func TestIdentityAndZero(t *testing.T) {
	x := single(t, 2, 3, []qubit.Pauli{qubit.X}, []uint32{1})
	got, err := qubit.Identity(2).Compose(x)
	require.NoError(t, err)
	ok, err := got.Equiv(x, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = qubit.Zero(2).Compose(x)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
	assert.Equal(t, "0", got.String())
	assert.Equal(t, "3.000000e+00+0.000000e+00j * (X1)", x.String())
	assert.Equal(t, "1.000000e+00+0.000000e+00j * (I)", qubit.Identity(2).String())
}

func TestSum(t *testing.T) {
	x := single(t, 2, 1, []qubit.Pauli{qubit.X}, []uint32{0})
	y := single(t, 2, 2, []qubit.Pauli{qubit.Y, qubit.Z}, []uint32{0, 1})
	got, err := qubit.Sum(2, x, nil, y)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, got.Boundaries())
	assert.Equal(t, []uint32{0, 0, 1}, got.Indices())

	_, err = qubit.Sum(3, x)
	require.ErrorIs(t, err, qubit.ErrOutOfRange)
}
