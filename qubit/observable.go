// SPDX-License-Identifier: MIT

package qubit

import (
	"encoding/binary"
	"fmt"
	"math/cmplx"
	"slices"
	"strings"

	"github.com/katalvlaran/fermiops/core"
)

// SparseObservable is a sum of weighted Pauli strings on NumQubits qubits.
type SparseObservable struct {
	numQubits  uint32
	coeffs     []complex128
	paulis     []Pauli
	indices    []uint32
	boundaries []int
}

// Term is one weighted Pauli string. Paulis[k] acts on qubit Indices[k].
type Term struct {
	Coeff   complex128
	Paulis  []Pauli
	Indices []uint32
}

// New builds an observable from CSR arrays. Inputs are copied.
//
// Errors:
//   - ErrShape: len(boundaries) != len(coeffs)+1, boundaries not starting at 0,
//     decreasing, or not ending at len(paulis); len(paulis) != len(indices).
//   - ErrPauli: a letter outside {X, Y, Z}.
//   - ErrOutOfRange: an index ≥ numQubits.
//   - ErrUnsortedIndices: indices of a term not strictly increasing.
func New(numQubits uint32, coeffs []complex128, paulis []Pauli, indices []uint32, boundaries []int) (*SparseObservable, error) {
	if len(paulis) != len(indices) {
		return nil, fmt.Errorf("qubit.New: %d paulis vs %d indices: %w", len(paulis), len(indices), ErrShape)
	}
	if len(boundaries) != len(coeffs)+1 || boundaries[0] != 0 || boundaries[len(coeffs)] != len(paulis) {
		return nil, fmt.Errorf("qubit.New: %d boundaries for %d terms and %d letters: %w",
			len(boundaries), len(coeffs), len(paulis), ErrShape)
	}
	for t := range coeffs {
		lo, hi := boundaries[t], boundaries[t+1]
		if hi < lo || hi > len(paulis) {
			return nil, fmt.Errorf("qubit.New: boundaries[%d] = %d outside [%d, %d]: %w", t+1, hi, lo, len(paulis), ErrShape)
		}
		for k := lo; k < hi; k++ {
			if !paulis[k].valid() {
				return nil, fmt.Errorf("qubit.New: letter %d (%d): %w", k, paulis[k], ErrPauli)
			}
			if indices[k] >= numQubits {
				return nil, fmt.Errorf("qubit.New: index %d on %d qubits: %w", indices[k], numQubits, ErrOutOfRange)
			}
			if k > lo && indices[k] <= indices[k-1] {
				return nil, fmt.Errorf("qubit.New: term %d: %w", t, ErrUnsortedIndices)
			}
		}
	}

	return &SparseObservable{
		numQubits:  numQubits,
		coeffs:     slices.Clone(coeffs),
		paulis:     slices.Clone(paulis),
		indices:    slices.Clone(indices),
		boundaries: slices.Clone(boundaries),
	}, nil
}

// Zero returns the observable with no terms.
func Zero(numQubits uint32) *SparseObservable {
	return &SparseObservable{numQubits: numQubits, boundaries: []int{0}}
}

// Identity returns the identity observable.
func Identity(numQubits uint32) *SparseObservable {
	return &SparseObservable{numQubits: numQubits, coeffs: []complex128{1}, boundaries: []int{0, 0}}
}

// NumQubits returns the declared qubit count.
func (o *SparseObservable) NumQubits() uint32 { return o.numQubits }

// Len returns the number of stored terms.
func (o *SparseObservable) Len() int { return len(o.coeffs) }

// Term returns a copy of term i.
func (o *SparseObservable) Term(i int) (Term, error) {
	if i < 0 || i >= len(o.coeffs) {
		return Term{}, fmt.Errorf("qubit.Term(%d) of %d: %w", i, len(o.coeffs), ErrOutOfRange)
	}
	lo, hi := o.boundaries[i], o.boundaries[i+1]

	return Term{
		Coeff:   o.coeffs[i],
		Paulis:  slices.Clone(o.paulis[lo:hi]),
		Indices: slices.Clone(o.indices[lo:hi]),
	}, nil
}

// Coeffs returns a copy of the coefficient array.
func (o *SparseObservable) Coeffs() []complex128 { return slices.Clone(o.coeffs) }

// Paulis returns a copy of the flattened letter array.
func (o *SparseObservable) Paulis() []Pauli { return slices.Clone(o.paulis) }

// Indices returns a copy of the flattened qubit index array.
func (o *SparseObservable) Indices() []uint32 { return slices.Clone(o.indices) }

// Boundaries returns a copy of the term boundary array.
func (o *SparseObservable) Boundaries() []int { return slices.Clone(o.boundaries) }

// addTerm appends a term; callers guarantee validity.
func (o *SparseObservable) addTerm(c complex128, paulis []Pauli, indices []uint32) {
	o.coeffs = append(o.coeffs, c)
	o.paulis = append(o.paulis, paulis...)
	o.indices = append(o.indices, indices...)
	o.boundaries = append(o.boundaries, len(o.paulis))
}

func (o *SparseObservable) term(i int) (complex128, []Pauli, []uint32) {
	lo, hi := o.boundaries[i], o.boundaries[i+1]

	return o.coeffs[i], o.paulis[lo:hi], o.indices[lo:hi]
}

func sameWidth(a, b *SparseObservable) error {
	if a.numQubits != b.numQubits {
		return fmt.Errorf("%d vs %d qubits: %w", a.numQubits, b.numQubits, ErrOutOfRange)
	}

	return nil
}

// Add returns o + other without merging. Both must share NumQubits.
func (o *SparseObservable) Add(other *SparseObservable) (*SparseObservable, error) {
	if err := sameWidth(o, other); err != nil {
		return nil, fmt.Errorf("qubit.Add: %w", err)
	}
	out := o.Clone()
	for i := range other.coeffs {
		out.addTerm(other.term(i))
	}

	return out, nil
}

// Scale returns c · o.
func (o *SparseObservable) Scale(c complex128) *SparseObservable {
	out := o.Clone()
	for i := range out.coeffs {
		out.coeffs[i] *= c
	}

	return out
}

// Compose returns the operator product o · other, one term per pair of input
// terms (o outer, other inner). Both must share NumQubits.
func (o *SparseObservable) Compose(other *SparseObservable) (*SparseObservable, error) {
	if err := sameWidth(o, other); err != nil {
		return nil, fmt.Errorf("qubit.Compose: %w", err)
	}
	out := Zero(o.numQubits)
	var ps []Pauli
	var is []uint32
	for i := range o.coeffs {
		ca, pa, ia := o.term(i)
		for j := range other.coeffs {
			cb, pb, ib := other.term(j)
			var k int
			ps, is, k = multiplyStrings(ps[:0], is[:0], pa, ia, pb, ib)
			out.addTerm(ca*cb*phases[k], ps, is)
		}
	}

	return out, nil
}

// multiplyStrings merges two sorted Pauli strings into dst and returns the
// phase exponent of the product.
func multiplyStrings(dstP []Pauli, dstI []uint32, pa []Pauli, ia []uint32, pb []Pauli, ib []uint32) ([]Pauli, []uint32, int) {
	k, x, y := 0, 0, 0
	for x < len(ia) || y < len(ib) {
		switch {
		case y == len(ib) || (x < len(ia) && ia[x] < ib[y]):
			dstP, dstI = append(dstP, pa[x]), append(dstI, ia[x])
			x++
		case x == len(ia) || ib[y] < ia[x]:
			dstP, dstI = append(dstP, pb[y]), append(dstI, ib[y])
			y++
		default:
			p, ph := multiply(pa[x], pb[y])
			if p != 0 {
				dstP, dstI = append(dstP, p), append(dstI, ia[x])
			}
			k += ph
			x++
			y++
		}
	}

	return dstP, dstI, k % 4
}

// Clone returns a deep copy.
func (o *SparseObservable) Clone() *SparseObservable {
	return &SparseObservable{
		numQubits:  o.numQubits,
		coeffs:     slices.Clone(o.coeffs),
		paulis:     slices.Clone(o.paulis),
		indices:    slices.Clone(o.indices),
		boundaries: slices.Clone(o.boundaries),
	}
}

// Canonicalize merges terms with identical Pauli strings and drops merged
// terms with magnitude ≤ tol. Order of first occurrence is kept.
func (o *SparseObservable) Canonicalize(tol float64) (*SparseObservable, error) {
	if err := core.ValidateTolerance(tol); err != nil {
		return nil, fmt.Errorf("qubit.Canonicalize: %w", err)
	}
	sums, firsts := o.merge()
	out := Zero(o.numQubits)
	for g, c := range sums {
		if cmplx.Abs(c) <= tol {
			continue
		}
		_, ps, is := o.term(firsts[g])
		out.addTerm(c, ps, is)
	}

	return out, nil
}

func (o *SparseObservable) merge() (sums []complex128, firsts []int) {
	index := make(map[string]int, len(o.coeffs))
	var key []byte
	for i := range o.coeffs {
		c, ps, is := o.term(i)
		key = key[:0]
		for k, p := range ps {
			key = append(binary.BigEndian.AppendUint32(key, is[k]), byte(p))
		}
		if g, ok := index[string(key)]; ok {
			sums[g] += c
			continue
		}
		index[string(key)] = len(sums)
		sums = append(sums, c)
		firsts = append(firsts, i)
	}

	return sums, firsts
}

// Equiv reports whether o − other merges to coefficients all ≤ tol in magnitude.
func (o *SparseObservable) Equiv(other *SparseObservable, tol float64) (bool, error) {
	if err := core.ValidateTolerance(tol); err != nil {
		return false, fmt.Errorf("qubit.Equiv: %w", err)
	}
	diff, err := o.Add(other.Scale(-1))
	if err != nil {
		return false, fmt.Errorf("qubit.Equiv: %w", err)
	}
	sums, _ := diff.merge()
	for _, c := range sums {
		if cmplx.Abs(c) > tol {
			return false, nil
		}
	}

	return true, nil
}

// Label renders a Pauli string as "X0 Z2"; the identity renders as "I".
func Label(paulis []Pauli, indices []uint32) string {
	if len(paulis) == 0 {
		return "I"
	}
	var sb strings.Builder
	for k, p := range paulis {
		if k > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s%d", p, indices[k])
	}

	return sb.String()
}

// String renders one term per line as "coeff * (X0 Z2)".
func (o *SparseObservable) String() string {
	if len(o.coeffs) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i := range o.coeffs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		c, ps, is := o.term(i)
		fmt.Fprintf(&sb, "%12.6e%+12.6ej * (%s)", real(c), imag(c), Label(ps, is))
	}

	return sb.String()
}

// Sum concatenates the terms of parts in order. Every part must be declared
// on numQubits; nil parts are skipped.
func Sum(numQubits uint32, parts ...*SparseObservable) (*SparseObservable, error) {
	out := Zero(numQubits)
	for i, p := range parts {
		if p == nil {
			continue
		}
		if p.numQubits != numQubits {
			return nil, fmt.Errorf("qubit.Sum: part %d: %d vs %d qubits: %w", i, p.numQubits, numQubits, ErrOutOfRange)
		}
		shift := len(out.paulis)
		out.coeffs = append(out.coeffs, p.coeffs...)
		out.paulis = append(out.paulis, p.paulis...)
		out.indices = append(out.indices, p.indices...)
		for _, b := range p.boundaries[1:] {
			out.boundaries = append(out.boundaries, b+shift)
		}
	}

	return out, nil
}
