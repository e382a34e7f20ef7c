// SPDX-License-Identifier: MIT

package fcidump

import "log/slog"

// DefaultMaxNorb bounds NORB so a header cannot request integral tables
// larger than memory. Eight-fold packed tables for 256 orbitals take about
// 4.3 GB.
const DefaultMaxNorb = 256

const panicMaxNorbInvalid = "fcidump: WithMaxNorb: n must be >= 1"

// Option configures Parse and FromFile.
type Option func(*Options)

// Options holds the effective parser configuration.
type Options struct {
	logger  *slog.Logger
	strict  bool
	maxNorb uint32
}

var discardLogger = slog.New(slog.DiscardHandler)

// WithLogger routes debug records (unknown header keys, parse summary) to l.
// A nil logger restores the discard default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger
		}
		o.logger = l
	}
}

// WithStrictHeader rejects namelist keys the parser does not interpret
// instead of skipping them.
func WithStrictHeader() Option {
	return func(o *Options) { o.strict = true }
}

// WithMaxNorb raises or lowers the NORB limit (default DefaultMaxNorb).
// Headers above the limit fail with ErrParse before any table is allocated.
func WithMaxNorb(n uint32) Option {
	if n == 0 {
		panic(panicMaxNorbInvalid)
	}

	return func(o *Options) { o.maxNorb = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{logger: discardLogger, maxNorb: DefaultMaxNorb}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
