// SPDX-License-Identifier: MIT

// Package mappers translates operators between bases.
//
// Fermion ↔ Majorana (mode j of the fermion pairs with γ_2j and γ_2j+1):
//
//	a†_j = ½ γ_2j − ½i γ_2j+1       γ_2j   = a†_j + a_j
//	a_j  = ½ γ_2j + ½i γ_2j+1       γ_2j+1 = i a†_j − i a_j
//
// Jordan–Wigner (fermion → qubit Pauli sum on numQubits qubits):
//
//	a†_j = ½ Z_0…Z_j−1 X_j − ½i Z_0…Z_j−1 Y_j
//	a_j  = ½ Z_0…Z_j−1 X_j + ½i Z_0…Z_j−1 Y_j
//
// Every mapper substitutes each factor by its two-term image and multiplies
// the images in factor order, so a k-factor term expands into up to 2^k
// terms. The Majorana outputs are left unsimplified; JordanWigner merges
// identical Pauli strings and prunes coefficients ≤ core.WithTolerance
// (default core.DefaultChopTolerance), per term and once more at the end.
//
// MapTerms exposes the substitution machinery for any target algebra.
// All mappers honour core.WithWorkers for per-term parallel expansion.
package mappers
