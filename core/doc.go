// SPDX-License-Identifier: MIT

// Package core provides the sparse term store shared by every operator kind in
// fermiops, together with the arithmetic and canonicalization primitives that
// act on it.
//
// An Operator is a linear combination of Terms. Each Term is a complex
// coefficient multiplying an ordered product of Factors:
//
//	O = Σ_k c_k · f_{k,1} f_{k,2} … f_{k,m_k}
//
// Factors are opaque to this package. A factor kind (fermionic ladder
// operators, Majorana operators, …) plugs in by satisfying the Factor
// constraint: it must be comparable, know its own adjoint, and encode itself
// into a fixed-width byte key used for duplicate detection.
//
// Storage layout (compressed sparse row):
//
//	coeffs  []complex128 // one per term
//	factors []F          // all factor sequences, concatenated
//	offsets []int        // len(coeffs)+1 boundaries into factors
//
// Term k owns factors[offsets[k]:offsets[k+1]]. offsets[0] is always 0 and
// offsets[len(coeffs)] equals len(factors). A zero-length term is the scalar
// (identity) term; duplicate factor sequences may coexist until Simplify.
//
// Operations:
//
//	New, Zero, One, FromTerms      // construction
//	AddTerm, Ichop                 // in-place mutation (exclusive access)
//	Add, Sub, Scale, Neg, Div      // linear structure
//	Compose, Pow, Adjoint          // products and conjugation
//	Equal, Equiv                   // strict and tolerant comparison
//	Simplify                       // exact-duplicate merge + pruning
//	Len, ManyBodyOrder             // shape queries
//
// Nothing in this package canonicalizes implicitly. Compose of two operators
// with |A| and |B| terms always yields |A|·|B| terms; callers decide when to
// normal-order (package fermion, package majorana) and when to Simplify.
//
// Determinism:
//   - Every operation is a pure function of its inputs and their term order.
//   - Simplify keeps the order of first occurrence of each factor sequence.
//   - The optional worker fan-out (WithWorkers) writes per-term results into
//     fixed slots and concatenates them in input order, so its output is
//     identical to the sequential path.
//
// Concurrency:
//   - Read-only methods may be called concurrently on a shared Operator.
//   - AddTerm and Ichop mutate the receiver and require exclusive access.
//
// Errors:
//
//	ErrShape      - malformed offsets or length mismatch on construction.
//	ErrTolerance  - negative or NaN tolerance.
//	ErrOutOfRange - term index outside [0, Len()).
//	ErrDivideByZero - Div by a zero scalar.
package core
