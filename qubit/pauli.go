// SPDX-License-Identifier: MIT

package qubit

// Pauli is a single-qubit non-identity Pauli letter.
type Pauli uint8

const (
	X Pauli = iota + 1
	Y
	Z
)

// String implements fmt.Stringer.
func (p Pauli) String() string {
	switch p {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "?"
	}
}

func (p Pauli) valid() bool { return p >= X && p <= Z }

// phases[k] = i^k.
var phases = [4]complex128{1, 1i, -1, -1i}

// multiply returns the product p·q as (letter, phase exponent k) with
// p·q = i^k · letter. letter == 0 means the identity.
func multiply(p, q Pauli) (Pauli, int) {
	if p == q {
		return 0, 0
	}
	r := 6 - p - q // the third letter
	if q == p%3+1 {
		return r, 1 // cyclic: XY, YZ, ZX
	}

	return r, 3
}
