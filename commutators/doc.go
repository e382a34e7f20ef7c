// SPDX-License-Identifier: MIT

// Package commutators builds commutator expressions from the primitives of
// package core. Every function is generic over the factor kind, so the same
// code serves fermion.Operator and majorana.Operator.
//
// Products are operator products: Compose(A, B) = A·B.
//
//	Commutator(A, B)               = AB − BA
//	AntiCommutator(A, B)           = AB + BA
//	DoubleCommutator(A, B, C, false) = (2ABC + 2CBA − BAC − CAB − ACB − BCA) / 2
//	DoubleCommutator(A, B, C, true)  = (2ABC − 2CBA − BAC + CAB − ACB + BCA) / 2
//
// Outputs are never simplified; chain fermion.NormalOrdered (or
// majorana.NormalOrdered), Simplify and Ichop as needed.
package commutators
