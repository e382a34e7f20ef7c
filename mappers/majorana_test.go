// SPDX-License-Identifier: MIT
// Package mappers_test verifies the fermion ↔ Majorana substitution.

package mappers_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/fermiops/core"
	"github.com/katalvlaran/fermiops/fermion"
	"github.com/katalvlaran/fermiops/majorana"
	"github.com/katalvlaran/fermiops/mappers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	c0, c1, c2 = fermion.Cre(0), fermion.Cre(1), fermion.Cre(2)
	a0, a1, a2 = fermion.Ann(0), fermion.Ann(1), fermion.Ann(2)
)

func toMajorana(t *testing.T, op *fermion.Operator, opts ...core.Option) *majorana.Operator {
	t.Helper()
	m, err := mappers.FermionToMajorana(op, opts...)
	require.NoError(t, err)

	return m
}

func TestFermionToMajorana_SingleFactor(t *testing.T) {
	got := toMajorana(t, fermion.FromTerms(fermion.T(1, c0)))
	want := majorana.FromTerms(majorana.T(0.5, 0), majorana.T(-0.5i, 1))
	assert.True(t, want.Equal(got), "got:\n%s", got)

	got = toMajorana(t, fermion.FromTerms(fermion.T(2, a1)))
	want = majorana.FromTerms(majorana.T(1, 2), majorana.T(1i, 3))
	assert.True(t, want.Equal(got), "got:\n%s", got)
}

func TestFermionToMajorana_NumberOperator(t *testing.T) {
	// a†_0 a_0 = ½ + ½i γ_0 γ_1 = ½ − ½i γ_1 γ_0
	got := canonicalMajorana(t, toMajorana(t, fermion.FromTerms(fermion.T(1, c0, a0))))
	want := majorana.FromTerms(majorana.T(0.5), majorana.T(-0.5i, 1, 0))
	ok, err := want.Equiv(got, tol)
	require.NoError(t, err)
	assert.True(t, ok, "got:\n%s", got)
}

func TestFermionToMajorana_Hopping(t *testing.T) {
	op := fermion.FromTerms(fermion.T(1, c0, a1), fermion.T(1, c1, a0))
	got := canonicalMajorana(t, toMajorana(t, op))
	want := majorana.FromTerms(majorana.T(-0.5i, 3, 0), majorana.T(0.5i, 2, 1))
	ok, err := want.Equiv(got, tol)
	require.NoError(t, err)
	assert.True(t, ok, "got:\n%s", got)

	herm, err := majorana.IsHermitian(got, tol)
	require.NoError(t, err)
	assert.True(t, herm)
}

func TestFermionToMajorana_ModeOverflow(t *testing.T) {
	_, err := mappers.FermionToMajorana(fermion.FromTerms(fermion.T(1, fermion.Cre(1<<31))))
	require.ErrorIs(t, err, mappers.ErrOutOfRange)
}

func TestMajoranaToFermion_SingleFactor(t *testing.T) {
	got := mappers.MajoranaToFermion(majorana.FromTerms(majorana.T(1, 0)))
	want := fermion.FromTerms(fermion.T(1, c0), fermion.T(1, a0))
	assert.True(t, want.Equal(got), "got:\n%s", got)

	got = mappers.MajoranaToFermion(majorana.FromTerms(majorana.T(1, 1)))
	want = fermion.FromTerms(fermion.T(1i, c0), fermion.T(-1i, a0))
	assert.True(t, want.Equal(got), "got:\n%s", got)
}

func TestMajoranaToFermion_Product(t *testing.T) {
	// γ_0 γ_1 = i − 2i a†_0 a_0
	got := canonicalFermion(t, mappers.MajoranaToFermion(majorana.FromTerms(majorana.T(1, 0, 1))))
	want := fermion.FromTerms(fermion.T(1i), fermion.T(-2i, c0, a0))
	ok, err := want.Equiv(got, tol)
	require.NoError(t, err)
	assert.True(t, ok, "got:\n%s", got)
}

func TestRoundTrip_FermionMajoranaFermion(t *testing.T) {
	op := fermion.FromTerms(
		fermion.T(0.3, c0, a1),
		fermion.T(0.3, c1, a0),
		fermion.T(-1.2+0.1i, c2, c0, a2, a1),
		fermion.T(0.7i, a2),
		fermion.T(2),
	)
	for _, opts := range [][]core.Option{nil, {core.WithWorkers(3)}} {
		back := mappers.MajoranaToFermion(toMajorana(t, op, opts...), opts...)
		ok, err := canonicalFermion(t, op).Equiv(canonicalFermion(t, back), 1e-10)
		require.NoError(t, err)
		assert.True(t, ok, "round trip:\n%s", canonicalFermion(t, back))
	}
}

func TestRoundTrip_MajoranaFermionMajorana(t *testing.T) {
	op := majorana.FromTerms(
		majorana.T(1i, 3, 0),
		majorana.T(-0.25, 1),
		majorana.T(0.5, 5, 4, 2, 1),
	)
	there := mappers.MajoranaToFermion(op)
	back := toMajorana(t, there)
	ok, err := canonicalMajorana(t, op).Equiv(canonicalMajorana(t, back), 1e-10)
	require.NoError(t, err)
	assert.True(t, ok, "round trip:\n%s", canonicalMajorana(t, back))
}

func TestMapTerms_CustomAlgebra(t *testing.T) {
	// Count the number of factors weighted by coefficient: a scalar algebra.
	got := mappers.MapTerms(
		fermion.FromTerms(fermion.T(2, c0, a1), fermion.T(3, c2)),
		scalarAlgebra{},
		func(fermion.Factor) complex128 { return 10 },
	)
	assert.Equal(t, complex128(2*100+3*10), got)
}

func TestMapTerms_FactorOrder(t *testing.T) {
	op := fermion.FromTerms(fermion.T(2, c0, a1), fermion.T(3, c2), fermion.T(-1))
	before := op.Clone()
	for _, opts := range [][]core.Option{nil, {core.WithWorkers(4)}} {
		got := mappers.MapTerms(op, wordAlgebra{}, fermion.Factor.String, opts...)
		assert.Equal(t, "2:+_0-_1|3:+_2|-1:", got)
	}
	assert.True(t, op.Equal(before))
}

// wordAlgebra renders each mapped term as "coeff:factors" to expose order.
type wordAlgebra struct{}

func (wordAlgebra) Unit(c complex128) string   { return fmt.Sprintf("%g:", real(c)) }
func (wordAlgebra) Compose(x, y string) string { return x + y }
func (wordAlgebra) Sum(parts ...string) string { return strings.Join(parts, "|") }

type scalarAlgebra struct{}

func (scalarAlgebra) Unit(c complex128) complex128       { return c }
func (scalarAlgebra) Compose(x, y complex128) complex128 { return x * y }
func (scalarAlgebra) Sum(parts ...complex128) complex128 {
	var s complex128
	for _, p := range parts {
		s += p
	}

	return s
}
