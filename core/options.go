// SPDX-License-Identifier: MIT

// Package core: functional configuration shared by the canonicalization
// engines (normal ordering, basis mappers) built on top of the term store.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - GatherOptions, which resolves a ...Option list into effective Options.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; consumers read them through getters.
package core

import (
	"log/slog"
	"math"
)

// Ordering selects the tie-break direction of mode indices within a
// canonical factor sequence.
type Ordering uint8

const (
	// Descending places higher mode indices first: a†_3 a†_1 a_2 a_0, γ_3 γ_2 γ_1 γ_0.
	Descending Ordering = iota
	// Ascending places lower mode indices first.
	Ascending
)

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case Descending:
		return "descending"
	case Ascending:
		return "ascending"
	default:
		return "unknown"
	}
}

// Before reports whether mode a precedes mode b under o.
// Equal modes never precede each other.
func (o Ordering) Before(a, b uint32) bool {
	if o == Ascending {
		return a < b
	}

	return a > b
}

// PairConvention selects how Majorana normal ordering treats equal adjacent
// modes once the sequence is sorted.
type PairConvention uint8

const (
	// ReducePairs collapses γ_i γ_i to the identity, leaving each mode at most once.
	ReducePairs PairConvention = iota
	// KeepPairs only sorts; repeated modes stay in the sequence.
	KeepPairs
)

// String implements fmt.Stringer.
func (p PairConvention) String() string {
	switch p {
	case ReducePairs:
		return "reduce"
	case KeepPairs:
		return "keep"
	default:
		return "unknown"
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOrdering is the mode tie-break used by both normal-order engines.
	DefaultOrdering = Descending

	// DefaultPairConvention is the Majorana equal-mode policy.
	DefaultPairConvention = ReducePairs

	// DefaultWorkers runs per-term expansion on the calling goroutine.
	DefaultWorkers = 1

	// DefaultChopTolerance prunes coefficients that are zero up to rounding
	// noise in mappers that canonicalize their output.
	DefaultChopTolerance = 1e-18
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid    = "core: WithWorkers: n must be >= 1"
	panicToleranceInvalid  = "core: WithTolerance: tol must be finite, non-negative"
	panicOrderingInvalid   = "core: WithOrdering: unknown ordering"
	panicConventionInvalid = "core: WithPairConvention: unknown pair convention"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	ordering   Ordering
	convention PairConvention
	workers    int
	tolerance  float64
	logger     *slog.Logger
}

// WithOrdering sets the mode tie-break direction of canonical sequences.
func WithOrdering(o Ordering) Option {
	if o != Descending && o != Ascending {
		panic(panicOrderingInvalid)
	}

	return func(opts *Options) { opts.ordering = o }
}

// WithPairConvention selects the Majorana equal-mode policy.
func WithPairConvention(p PairConvention) Option {
	if p != ReducePairs && p != KeepPairs {
		panic(panicConventionInvalid)
	}

	return func(opts *Options) { opts.convention = p }
}

// WithWorkers bounds the number of goroutines used to expand terms
// independently. n == 1 keeps everything on the calling goroutine.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(opts *Options) { opts.workers = n }
}

// WithTolerance sets the pruning threshold applied by operations that
// canonicalize their own output (e.g. Jordan–Wigner).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(opts *Options) { opts.tolerance = tol }
}

// WithLogger routes debug records to l. A nil logger restores the discard default.
func WithLogger(l *slog.Logger) Option {
	return func(opts *Options) {
		if l == nil {
			l = discardLogger
		}
		opts.logger = l
	}
}

var discardLogger = slog.New(slog.DiscardHandler)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		ordering:   DefaultOrdering,
		convention: DefaultPairConvention,
		workers:    DefaultWorkers,
		tolerance:  DefaultChopTolerance,
		logger:     discardLogger,
	}
}

// GatherOptions applies opts in order on top of DefaultOptions.
func GatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Ordering returns the configured mode tie-break.
func (o Options) Ordering() Ordering { return o.ordering }

// PairConvention returns the configured Majorana equal-mode policy.
func (o Options) PairConvention() PairConvention { return o.convention }

// Workers returns the configured parallelism bound.
func (o Options) Workers() int { return o.workers }

// Tolerance returns the configured pruning threshold.
func (o Options) Tolerance() float64 { return o.tolerance }

// Logger returns the configured logger; never nil.
func (o Options) Logger() *slog.Logger { return o.logger }
