// SPDX-License-Identifier: MIT

// Package majorana implements Majorana operators γ_i on top of the generic
// term store in package core.
//
// Majorana operators are Hermitian and square to one:
//
//	γ_i† = γ_i      γ_i² = 1      {γ_i, γ_j} = 2δ_ij
//
// NormalOrdered sorts every term by mode index (descending by default, see
// core.WithOrdering) with the sign of the sorting permutation, then applies the
// pair convention selected by core.WithPairConvention:
//
//	core.ReducePairs  γ_i γ_i collapses to 1 (default)
//	core.KeepPairs    sorted only; repeated modes are retained
//
// Unlike fermionic normal ordering this never branches: each input term
// produces exactly one output term.
//
//	γ_0 γ_2 γ_1 γ_3  →  −γ_3 γ_2 γ_1 γ_0
package majorana
