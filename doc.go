// Package fermiops is a sparse symbolic algebra for second-quantized
// operators: fermionic ladder operators, Majorana operators and the Pauli
// observables they map to.
//
// What is inside?
//
//	A deterministic, allocation-conscious library that brings together:
//		• A generic sparse term store with exact arithmetic and canonicalization
//		• Normal ordering for fermionic and Majorana products
//		• Hermiticity, particle-number and parity checks
//		• Commutators, anti-commutators and double commutators
//		• Basis changes: Fermion ↔ Majorana, Jordan–Wigner to Pauli strings
//		• Electronic-structure Hamiltonians from integral arrays and FCIDump files
//
// Packages:
//
//	core/        - Operator[F] term store, arithmetic, Simplify/Equiv, options
//	fermion/     - a†/a factors, NormalOrdered, IsHermitian, ConservesParticleNumber
//	majorana/    - γ factors, NormalOrdered, IsHermitian, IsEven
//	commutators/ - Commutator, AntiCommutator, DoubleCommutator
//	qubit/       - SparseObservable (Pauli strings with complex coefficients)
//	mappers/     - FermionToMajorana, MajoranaToFermion, JordanWigner, MapTerms
//	integrals/   - one- and two-body Hamiltonians from packed or full integrals
//	fcidump/     - FCIDump reader/writer and Hamiltonian construction
//
// Quick example (number operator on mode 0):
//
//	n0 := fermion.FromTerms(fermion.T(1, fermion.Cre(0), fermion.Ann(0)))
//	obs, _ := mappers.JordanWigner(n0, 1)
//	fmt.Println(obs) // 0.5·I − 0.5·Z0
//
// Determinism: every operation returns terms in a documented order, and
// parallel expansion (core.WithWorkers) produces output identical to the
// sequential run.
package fermiops
