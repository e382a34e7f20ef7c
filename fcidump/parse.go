// SPDX-License-Identifier: MIT

package fcidump

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/fermiops/integrals"
)

var (
	namelistEnd = regexp.MustCompile(`(?i:&END)|(?m:/[ \t]*$)`)
	headerKey   = regexp.MustCompile(`([A-Za-z][A-Za-z0-9_]*)\s*=`)
	fortranExp  = strings.NewReplacer("D", "E", "d", "e")
)

// FromFile opens path and parses it with Parse.
func FromFile(path string, opts ...Option) (*FCIDump, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("FromFile: %w: %w", ErrIO, err)
	}
	defer f.Close()

	return Parse(f, opts...)
}

// Parse reads a complete FCIDump from r.
//
// NORB and NELEC are required; MS2 defaults to 0 and ISYM to DefaultISym.
// NORB above the WithMaxNorb limit is rejected before allocation. The header
// ends at "&END" or at a "/" closing a line.
// Unknown header keys are skipped (logged at debug level) unless
// WithStrictHeader is given. Integral lines must carry exactly five fields.
// A later line for the same packed slot overwrites an earlier one.
func Parse(r io.Reader, opts ...Option) (*FCIDump, error) {
	o := gatherOptions(opts...)

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w: %w", ErrIO, err)
	}
	contents := string(raw)

	loc := namelistEnd.FindStringIndex(contents)
	if loc == nil {
		return nil, fmt.Errorf("Parse: header terminator (&END or /) not found: %w", ErrParse)
	}
	d, err := parseHeader(contents[:loc[0]], o)
	if err != nil {
		return nil, err
	}

	firstLine := strings.Count(contents[:loc[1]], "\n") + 1
	lines, err := d.parseBody(contents[loc[1]:], firstLine)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("parsed fcidump",
		"norb", d.Norb,
		"nelec", d.Nelec,
		"integrals", lines,
		"unrestricted", d.Unrestricted())

	return d, nil
}

// parseHeader interprets the namelist fields preceding the terminator.
func parseHeader(header string, o Options) (*FCIDump, error) {
	var (
		norb, nelec, ms2    uint32
		orbsym              []uint32
		haveNorb, haveNelec bool
	)
	isym := uint32(DefaultISym)

	matches := headerKey.FindAllStringSubmatchIndex(header, -1)
	for k, m := range matches {
		key := strings.ToUpper(header[m[2]:m[3]])
		end := len(header)
		if k+1 < len(matches) {
			end = matches[k+1][0]
		}
		values := splitValues(header[m[1]:end])

		var err error
		switch key {
		case "NORB":
			norb, err = scalarValue(key, values)
			haveNorb = err == nil
		case "NELEC":
			nelec, err = scalarValue(key, values)
			haveNelec = err == nil
		case "MS2":
			ms2, err = scalarValue(key, values)
		case "ISYM":
			isym, err = scalarValue(key, values)
		case "ORBSYM":
			orbsym, err = listValue(key, values)
		default:
			if o.strict {
				return nil, fmt.Errorf("Parse: unknown header key %q: %w", key, ErrParse)
			}
			o.logger.Debug("skipping fcidump header key", "key", key)
		}
		if err != nil {
			return nil, err
		}
	}

	if !haveNorb {
		return nil, fmt.Errorf("Parse: header lacks NORB: %w", ErrParse)
	}
	if !haveNelec {
		return nil, fmt.Errorf("Parse: header lacks NELEC: %w", ErrParse)
	}
	if norb > o.maxNorb || !tablesFit(norb) {
		return nil, fmt.Errorf("Parse: NORB=%d exceeds limit %d: %w", norb, o.maxNorb, ErrParse)
	}
	if len(orbsym) != 0 && len(orbsym) != int(norb) {
		return nil, fmt.Errorf("Parse: ORBSYM has %d entries for NORB=%d: %w", len(orbsym), norb, ErrParse)
	}

	d := newDump(norb)
	d.Nelec, d.Ms2, d.ISym, d.OrbSym = nelec, ms2, isym, orbsym

	return d, nil
}

func splitValues(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

func scalarValue(key string, values []string) (uint32, error) {
	if len(values) != 1 {
		return 0, fmt.Errorf("Parse: %s expects one value, got %d: %w", key, len(values), ErrParse)
	}
	v, err := strconv.ParseUint(values[0], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("Parse: %s=%q: %w", key, values[0], ErrParse)
	}

	return uint32(v), nil
}

func listValue(key string, values []string) ([]uint32, error) {
	out := make([]uint32, len(values))
	for i, s := range values {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("Parse: %s[%d]=%q: %w", key, i, s, ErrParse)
		}
		out[i] = uint32(v)
	}

	return out, nil
}

// parseBody reads integral lines into d and returns how many it consumed.
func (d *FCIDump) parseBody(body string, firstLine int) (int, error) {
	sc := bufio.NewScanner(strings.NewReader(body))
	count := 0
	for ln := firstLine; sc.Scan(); ln++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 5 {
			return count, fmt.Errorf("Parse: line %d: want 5 fields, got %d: %w", ln, len(fields), ErrParse)
		}
		v, err := strconv.ParseFloat(fortranExp.Replace(fields[0]), 64)
		if err != nil {
			return count, fmt.Errorf("Parse: line %d: value %q: %w", ln, fields[0], ErrParse)
		}
		var idx [4]uint32
		for k := range idx {
			u, err := strconv.ParseUint(fields[k+1], 10, 32)
			if err != nil {
				return count, fmt.Errorf("Parse: line %d: index %q: %w", ln, fields[k+1], ErrParse)
			}
			idx[k] = uint32(u)
		}
		if err := d.store(v, idx[0], idx[1], idx[2], idx[3]); err != nil {
			return count, fmt.Errorf("Parse: line %d: %w", ln, err)
		}
		count++
	}
	if err := sc.Err(); err != nil {
		return count, fmt.Errorf("Parse: %w: %w", ErrIO, err)
	}

	return count, nil
}

// spinOrbital maps a 1-based file index to a 0-based spatial orbital and its
// spin (true for beta).
func (d *FCIDump) spinOrbital(p uint32) (int, bool, error) {
	n := d.Norb
	switch {
	case p >= 1 && p <= n:
		return int(p - 1), false, nil
	case p > n && p <= 2*n:
		return int(p - n - 1), true, nil
	default:
		return 0, false, fmt.Errorf("index %d outside 1..%d: %w", p, 2*n, ErrParse)
	}
}

// pair resolves two indices that must share a spin.
func (d *FCIDump) pair(i, a uint32) (int, bool, error) {
	oi, bi, err := d.spinOrbital(i)
	if err != nil {
		return 0, false, err
	}
	oa, ba, err := d.spinOrbital(a)
	if err != nil {
		return 0, false, err
	}
	if bi != ba {
		return 0, false, fmt.Errorf("indices %d and %d mix spins: %w", i, a, ErrParse)
	}

	return integrals.PackIndex(oi, oa), bi, nil
}

// store routes one integral line to its table.
func (d *FCIDump) store(v float64, i, a, j, b uint32) error {
	switch {
	case i == 0 && a == 0 && j == 0 && b == 0:
		d.Constant, d.HasConstant = v, true

	case i != 0 && a == 0 && j == 0 && b == 0:
		if i > d.Norb {
			return fmt.Errorf("orbital energy index %d outside 1..%d: %w", i, d.Norb, ErrParse)
		}
		if d.OrbitalEnergies == nil {
			d.OrbitalEnergies = make([]float64, d.Norb)
		}
		d.OrbitalEnergies[i-1] = v

	case i != 0 && a != 0 && j == 0 && b == 0:
		ia, beta, err := d.pair(i, a)
		if err != nil {
			return err
		}
		if beta {
			d.ensureBeta()
			d.OneBodyB[ia] = v
		} else {
			d.OneBodyA[ia] = v
		}

	case i != 0 && a != 0 && j != 0 && b != 0:
		ia, beta1, err := d.pair(i, a)
		if err != nil {
			return err
		}
		jb, beta2, err := d.pair(j, b)
		if err != nil {
			return err
		}
		switch {
		case !beta1 && !beta2:
			d.TwoBodyAA[integrals.PackIndex(ia, jb)] = v
		case beta1 && beta2:
			d.ensureBeta()
			d.TwoBodyBB[integrals.PackIndex(ia, jb)] = v
		default:
			// (ia|jb) = (jb|ia): keep the alpha pair as the row index.
			if beta1 {
				ia, jb = jb, ia
			}
			d.ensureBeta()
			d.TwoBodyAB[ia*len(d.OneBodyA)+jb] = v
		}

	default:
		return fmt.Errorf("unsupported index pattern (%d %d %d %d): %w", i, a, j, b, ErrParse)
	}

	return nil
}
