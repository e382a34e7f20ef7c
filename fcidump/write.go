// SPDX-License-Identifier: MIT

package fcidump

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/fermiops/integrals"
)

// WriteTo serializes d in FCIDump format and implements io.WriterTo.
//
// Values are written with the shortest representation that parses back to
// the same float64, so Parse(WriteTo(d)) reproduces d. Zero table entries are
// omitted; an unrestricted dump whose beta tables are all zero therefore
// reads back as restricted. Line order: αα, αβ, ββ two-body blocks, alpha and
// beta one-body tables, orbital energies, constant.
func (d *FCIDump) WriteTo(w io.Writer) (int64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, " &FCI NORB=%d,NELEC=%d,MS2=%d,\n", d.Norb, d.Nelec, d.Ms2)
	if len(d.OrbSym) != 0 {
		buf.WriteString("  ORBSYM=")
		for _, s := range d.OrbSym {
			buf.WriteString(strconv.FormatUint(uint64(s), 10))
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	fmt.Fprintf(&buf, "  ISYM=%d,\n &END\n", d.ISym)

	n := int(d.Norb)
	np := integrals.NumPairs(d.Norb)
	line := func(v float64, i, a, j, b int) {
		buf.WriteString(strconv.FormatFloat(v, 'E', -1, 64))
		fmt.Fprintf(&buf, " %d %d %d %d\n", i, a, j, b)
	}
	s8 := func(t []float64, shift int) {
		for iajb, v := range t {
			if v == 0 {
				continue
			}
			ia, jb := integrals.InflateIndex(iajb)
			i, a := integrals.InflateIndex(ia)
			j, b := integrals.InflateIndex(jb)
			line(v, i+1+shift, a+1+shift, j+1+shift, b+1+shift)
		}
	}
	tril := func(t []float64, shift int) {
		for ia, v := range t {
			if v == 0 {
				continue
			}
			i, a := integrals.InflateIndex(ia)
			line(v, i+1+shift, a+1+shift, 0, 0)
		}
	}

	s8(d.TwoBodyAA, 0)
	for iajb, v := range d.TwoBodyAB {
		if v == 0 {
			continue
		}
		i, a := integrals.InflateIndex(iajb / np)
		j, b := integrals.InflateIndex(iajb % np)
		line(v, i+1, a+1, j+1+n, b+1+n)
	}
	s8(d.TwoBodyBB, n)
	tril(d.OneBodyA, 0)
	tril(d.OneBodyB, n)
	for i, v := range d.OrbitalEnergies {
		line(v, i+1, 0, 0, 0)
	}
	if d.HasConstant {
		line(d.Constant, 0, 0, 0, 0)
	}

	written, err := buf.WriteTo(w)
	if err != nil {
		return written, fmt.Errorf("WriteTo: %w: %w", ErrIO, err)
	}

	return written, nil
}
