// SPDX-License-Identifier: MIT

package integrals

import (
	"fmt"
	"math"
)

// NumPairs is the number of unordered orbital pairs (p ≥ q) among norb orbitals.
// It does not check for overflow: on 64-bit platforms the result is exact for
// norb below about 3·10⁹.
func NumPairs(norb uint32) int { return int(norb) * (int(norb) + 1) / 2 }

// InflateIndex inverts lower-triangle packing: idx = p(p+1)/2 + q with p ≥ q.
func InflateIndex(idx int) (p, q int) {
	p = int((math.Sqrt(8*float64(idx)+1) - 1) / 2)
	for p*(p+1)/2 > idx {
		p--
	}
	for (p+1)*(p+2)/2 <= idx {
		p++
	}

	return p, idx - p*(p+1)/2
}

// PackIndex returns the lower-triangle packed index of the unordered pair {p, q}.
func PackIndex(p, q int) int {
	if p < q {
		p, q = q, p
	}

	return p*(p+1)/2 + q
}

// quad is one (i a | j b) index combination.
type quad struct{ i, a, j, b int }

// swapsOf appends (i,a,j,b) and its distinct in-pair swaps.
func swapsOf(dst []quad, i, a, j, b int) []quad {
	dst = append(dst, quad{i, a, j, b})
	if i > a {
		dst = append(dst, quad{a, i, j, b})
	}
	if j > b {
		dst = append(dst, quad{i, a, b, j})
	}
	if i > a && j > b {
		dst = append(dst, quad{a, i, b, j})
	}

	return dst
}

// expandS4 lists the index combinations of a 4-fold symmetric entry
// stored at iajb = ia·npair + jb.
func expandS4(dst []quad, iajb, np int) []quad {
	i, a := InflateIndex(iajb / np)
	j, b := InflateIndex(iajb % np)

	return swapsOf(dst, i, a, j, b)
}

// expandS8 lists the index combinations of an 8-fold symmetric entry
// stored at iajb = ia(ia+1)/2 + jb.
func expandS8(dst []quad, iajb int) []quad {
	ia, jb := InflateIndex(iajb)
	i, a := InflateIndex(ia)
	j, b := InflateIndex(jb)
	dst = swapsOf(dst, i, a, j, b)
	if ia > jb {
		dst = swapsOf(dst, j, b, i, a)
	}

	return dst
}

func checkLen(name string, got, want int) error {
	if got != want {
		return fmt.Errorf("%s: length %d, want %d: %w", name, got, want, ErrShape)
	}

	return nil
}
