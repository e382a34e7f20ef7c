// SPDX-License-Identifier: MIT

// Package fcidump reads and writes the FCIDump integral file format and turns
// its contents into second-quantized Hamiltonians.
//
// A file starts with a Fortran namelist header
//
//	&FCI NORB=2,NELEC=2,MS2=0,
//	 ORBSYM=1,1,
//	 ISYM=1,
//	&END
//
// terminated by "&END" or by a "/" closing a line, followed by one integral per line:
//
//	value  i  a  j  b
//
// Indices are 1-based. The index pattern selects the kind of entry:
//
//	0 0 0 0   nuclear-repulsion constant
//	i 0 0 0   orbital energy
//	i a 0 0   one-electron integral h_ia
//	i a j b   two-electron integral (ia|jb)
//
// Indices in norb+1..2·norb address beta spin orbitals; any beta entry turns
// the dump into an unrestricted one with separate αα, αβ and ββ tables.
// Fortran "D" exponents are accepted.
//
// Errors:
//
//	ErrParse   - malformed header, line, value or index pattern.
//	ErrIO      - the underlying reader or file failed.
//	ErrInvalid - an in-memory FCIDump with inconsistent table sizes.
package fcidump
