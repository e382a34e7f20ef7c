// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Factor is the constraint satisfied by every factor kind stored in an Operator.
//
// AppendKey must append a fixed-width, injective encoding of the factor to dst;
// two factor sequences are duplicates iff their concatenated keys are equal.
type Factor[F any] interface {
	comparable
	// Adjoint returns the Hermitian conjugate of the single factor.
	Adjoint() F
	// AppendKey appends the factor's byte key to dst and returns the extended slice.
	AppendKey(dst []byte) []byte
	// String renders the factor for diagnostics.
	String() string
}

// Term is one summand of an Operator: Coeff · Factors[0] Factors[1] ….
type Term[F Factor[F]] struct {
	Coeff   complex128
	Factors []F
}

// Operator is a sparse linear combination of factor products in CSR layout.
// The zero value is not usable; construct with New, Zero, One or FromTerms.
type Operator[F Factor[F]] struct {
	coeffs  []complex128
	factors []F
	offsets []int
}

// New builds an Operator from CSR arrays. The inputs are copied.
//
// Errors (wrapped ErrShape):
//   - len(offsets) != len(coeffs)+1,
//   - offsets[0] != 0 or offsets decreasing,
//   - offsets[len(coeffs)] != len(factors).
func New[F Factor[F]](coeffs []complex128, factors []F, offsets []int) (*Operator[F], error) {
	if err := validateCSR(len(coeffs), len(factors), offsets); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Operator[F]{
		coeffs:  slices.Clone(coeffs),
		factors: slices.Clone(factors),
		offsets: slices.Clone(offsets),
	}, nil
}

// Zero returns the operator with no terms.
func Zero[F Factor[F]]() *Operator[F] {
	return &Operator[F]{offsets: []int{0}}
}

// One returns the identity: a single zero-length term with coefficient 1.
func One[F Factor[F]]() *Operator[F] {
	return &Operator[F]{coeffs: []complex128{1}, offsets: []int{0, 0}}
}

// FromTerms builds an Operator holding the given terms in order.
func FromTerms[F Factor[F]](terms ...Term[F]) *Operator[F] {
	n := 0
	for _, t := range terms {
		n += len(t.Factors)
	}
	op := withCapacity[F](len(terms), n)
	for _, t := range terms {
		op.AddTerm(t.Factors, t.Coeff)
	}

	return op
}

// withCapacity allocates an empty operator sized for terms/factors.
func withCapacity[F Factor[F]](terms, factors int) *Operator[F] {
	offsets := make([]int, 1, terms+1)

	return &Operator[F]{
		coeffs:  make([]complex128, 0, terms),
		factors: make([]F, 0, factors),
		offsets: offsets,
	}
}

// AddTerm appends coeff · factors to op in place. factors is copied.
func (op *Operator[F]) AddTerm(factors []F, coeff complex128) {
	op.coeffs = append(op.coeffs, coeff)
	op.factors = append(op.factors, factors...)
	op.offsets = append(op.offsets, len(op.factors))
}

// Len returns the number of stored terms (duplicates included).
func (op *Operator[F]) Len() int { return len(op.coeffs) }

// Term returns a copy of term i.
func (op *Operator[F]) Term(i int) (Term[F], error) {
	if i < 0 || i >= len(op.coeffs) {
		return Term[F]{}, fmt.Errorf("Term(%d) of %d: %w", i, len(op.coeffs), ErrOutOfRange)
	}

	return Term[F]{Coeff: op.coeffs[i], Factors: slices.Clone(op.view(i))}, nil
}

// All iterates terms in storage order. The yielded Factors alias internal
// storage: they must not be modified and stay valid until op is next mutated.
func (op *Operator[F]) All() iter.Seq2[int, Term[F]] {
	return func(yield func(int, Term[F]) bool) {
		for i, c := range op.coeffs {
			if !yield(i, Term[F]{Coeff: c, Factors: op.view(i)}) {
				return
			}
		}
	}
}

// view returns the read-only factor window of term i.
func (op *Operator[F]) view(i int) []F {
	return op.factors[op.offsets[i]:op.offsets[i+1]:op.offsets[i+1]]
}

// Coeffs returns a copy of the coefficient array.
func (op *Operator[F]) Coeffs() []complex128 { return slices.Clone(op.coeffs) }

// Factors returns a copy of the flattened factor array.
func (op *Operator[F]) Factors() []F { return slices.Clone(op.factors) }

// Offsets returns a copy of the term boundary array.
func (op *Operator[F]) Offsets() []int { return slices.Clone(op.offsets) }

// Clone returns a deep copy of op.
func (op *Operator[F]) Clone() *Operator[F] {
	return &Operator[F]{
		coeffs:  slices.Clone(op.coeffs),
		factors: slices.Clone(op.factors),
		offsets: slices.Clone(op.offsets),
	}
}

// ManyBodyOrder returns the longest factor sequence length, 0 for Zero().
func (op *Operator[F]) ManyBodyOrder() int {
	order := 0
	for i := range op.coeffs {
		order = max(order, op.offsets[i+1]-op.offsets[i])
	}

	return order
}

// String renders one term per line as "coeff * (f1 f2 …)".
func (op *Operator[F]) String() string {
	if len(op.coeffs) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, c := range op.coeffs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%12.6e%+12.6ej * (", real(c), imag(c))
		for k, f := range op.view(i) {
			if k > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(f.String())
		}
		sb.WriteByte(')')
	}

	return sb.String()
}
