// SPDX-License-Identifier: MIT
// Package mappers: Jordan–Wigner transformation.
//
// Implementation:
//   - Stage 1: reject any mode ≥ numQubits.
//   - Stage 2: build the two-term Pauli image of every ladder operator that
//     occurs in op (Z string on lower qubits, X or Y on the mode qubit).
//   - Stage 3: per term, multiply the images in factor order with Pauli phase
//     tracking and canonicalize the partial result.
//   - Stage 4: concatenate the per-term results and canonicalize once more.
//
// Complexity:
//   - O(T · 2^k · n) for T terms of at most k factors on n qubits, before merging.

package mappers

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fermiops/core"
	"github.com/katalvlaran/fermiops/fermion"
	"github.com/katalvlaran/fermiops/qubit"
)

// JordanWigner maps op onto a Pauli sum over numQubits qubits.
//
// Options: core.WithTolerance (pruning threshold), core.WithWorkers, core.WithLogger.
// Errors: ErrOutOfRange if a mode index is ≥ numQubits.
func JordanWigner(op *fermion.Operator, numQubits uint32, opts ...core.Option) (*qubit.SparseObservable, error) {
	o := core.GatherOptions(opts...)

	terms := termViews(op)
	images := make(map[fermion.Factor]*qubit.SparseObservable)
	for _, t := range terms {
		for _, f := range t.Factors {
			if f.Mode >= numQubits {
				return nil, fmt.Errorf("mappers.JordanWigner: mode %d on %d qubits: %w", f.Mode, numQubits, ErrOutOfRange)
			}
			if _, ok := images[f]; ok {
				continue
			}
			img, err := jordanWignerImage(f, numQubits)
			if err != nil {
				return nil, fmt.Errorf("mappers.JordanWigner: %w", err)
			}
			images[f] = img
		}
	}

	parts := make([]*qubit.SparseObservable, len(terms))
	errs := make([]error, len(terms))
	core.ParallelFor(len(terms), o.Workers(), func(i int) {
		t := terms[i]
		acc := qubit.Identity(numQubits).Scale(t.Coeff)
		for _, f := range t.Factors {
			if acc, errs[i] = acc.Compose(images[f]); errs[i] != nil {
				return
			}
		}
		parts[i], errs[i] = acc.Canonicalize(o.Tolerance())
	})
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("mappers.JordanWigner: %w", err)
	}

	sum, err := qubit.Sum(numQubits, parts...)
	if err != nil {
		return nil, fmt.Errorf("mappers.JordanWigner: %w", err)
	}
	out, err := sum.Canonicalize(o.Tolerance())
	if err != nil {
		return nil, fmt.Errorf("mappers.JordanWigner: %w", err)
	}
	o.Logger().Debug("jordan-wigner",
		"terms", op.Len(),
		"expanded", sum.Len(),
		"paulis", out.Len(),
		"qubits", numQubits)

	return out, nil
}

// jordanWignerImage returns ½ Z_<j X_j ∓ ½i Z_<j Y_j for a†_j / a_j.
func jordanWignerImage(f fermion.Factor, numQubits uint32) (*qubit.SparseObservable, error) {
	j := int(f.Mode)
	paulis := make([]qubit.Pauli, 0, 2*(j+1))
	indices := make([]uint32, 0, 2*(j+1))
	for _, last := range []qubit.Pauli{qubit.X, qubit.Y} {
		for q := range j {
			paulis = append(paulis, qubit.Z)
			indices = append(indices, uint32(q))
		}
		paulis = append(paulis, last)
		indices = append(indices, f.Mode)
	}
	im := complex(0, 0.5)
	if f.Creation {
		im = -im
	}

	return qubit.New(numQubits, []complex128{0.5, im}, paulis, indices, []int{0, j + 1, 2 * (j + 1)})
}
