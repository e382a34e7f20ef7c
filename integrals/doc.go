// SPDX-License-Identifier: MIT

// Package integrals builds electronic-structure Hamiltonians as fermion
// operators from one- and two-electron integral arrays.
//
// Mode layout: spatial orbital p maps to mode p (alpha spin) and mode p+norb
// (beta spin). Spin-less constructors use modes 0..norb-1 only.
//
// One-body part:
//
//	H1 = Σ_pq h_pq a†_p a_q
//
// Two-body part (chemists' notation, (pq|rs) = ∫ φ_p φ_q r⁻¹ φ_r φ_s):
//
//	H2 = ½ Σ_pqrs (pq|rs) a†_p a†_r a_s a_q
//
// Packed lower-triangle ("tril") inputs store a symmetric h as
// h[p(p+1)/2 + q] for p ≥ q, and a two-electron tensor with 8-fold symmetry as
// eri[PQ(PQ+1)/2 + RS] over pair indices PQ ≥ RS. The mixed-spin block of an
// unrestricted calculation has only 4-fold symmetry and is stored as
// eri_ab[PQ·npair + RS]. Every packed entry expands into all index
// permutations it stands for; zero entries are skipped.
//
// Full-array constructors take a gonum mat.Matrix for one-body integrals and
// a flat row-major norb⁴ slice for two-body integrals.
//
// Errors:
//
//	ErrShape - array length or matrix dimensions inconsistent with norb.
package integrals
