// SPDX-License-Identifier: MIT

// Package fermion implements second-quantized fermionic ladder operators on
// spin-less modes on top of the generic term store in package core.
//
// A Factor is either a creation operator a†_p (Creation == true) or an
// annihilation operator a_p, with p a non-negative mode index. Operator is an
// alias of core.Operator[Factor], so all arithmetic (Add, Compose, Adjoint,
// Simplify, …) comes from core unchanged.
//
// Algebra:
//
//	{a_p, a†_q} = δ_pq      {a_p, a_q} = {a†_p, a†_q} = 0
//
// Normal ordering (NormalOrdered) rewrites every term so that all creation
// factors precede all annihilation factors and, within each class, modes follow
// the configured core.Ordering (descending by default):
//
//	a_1 a†_1 a_0 a†_0  →  1 − a†_0 a_0 − a†_1 a_1 − a†_1 a†_0 a_1 a_0
//
// Swapping two adjacent factors of different modes flips the sign. Swapping
// a_p a†_p applies a_p a†_p = 1 − a†_p a_p and therefore branches; repeated
// creation (or annihilation) of one mode annihilates the term.
//
// Property queries:
//
//	IsHermitian(op, tol)         // op − op† normal-orders to ~0
//	ConservesParticleNumber(op)  // #a† == #a in every term
//
// String format of a factor is "+_p" for a†_p and "-_p" for a_p.
package fermion
