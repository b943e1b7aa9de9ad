// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for conversion kernels and the
// dense constructor. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package sparse

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAlignment is the row-stride rounding unit for DIA and ELL/HYB
	// storage. The stride is the row count rounded up to a multiple of this
	// value. Purely a layout parameter: it improves access granularity for
	// block-parallel backends and never changes conversion results.
	DefaultAlignment = 16

	// DefaultOrientation is the dense layout used when none is requested.
	DefaultOrientation = RowMajor
)

// ---------- Internal panic messages (no magic strings) ----------

const panicAlignmentInvalid = "sparse: WithAlignment: alignment must be >= 1"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	alignment int         // stride rounding unit; >= 1; DefaultAlignment
	orient    Orientation // dense layout; DefaultOrientation
}

// WithAlignment sets the stride rounding unit for DIA and ELL/HYB targets.
//
// Inputs:
//   - n: rounding unit, must be >= 1. Alignment 1 disables padding entirely
//     (stride == rows).
//
// Errors:
//   - Panics with a stable message when n < 1 (programmer error).
//
// Complexity: O(1).
func WithAlignment(n int) Option {
	if n < 1 {
		panic(panicAlignmentInvalid)
	}

	// Assign validated alignment.
	return func(o *Options) { o.alignment = n }
}

// WithRowMajor selects row-major dense layout (offset = i*cols + j).
// This is the default; provided for explicit call sites.
// Complexity: O(1).
func WithRowMajor() Option {
	return func(o *Options) { o.orient = RowMajor }
}

// WithColumnMajor selects column-major dense layout (offset = j*rows + i).
// Only the indexing formula changes; conversion semantics are identical.
// Complexity: O(1).
func WithColumnMajor() Option {
	return func(o *Options) { o.orient = ColMajor }
}

// ---------- Option resolution ----------

// gatherOptions applies user-provided Option setters on top of the
// documented defaults. Last-writer-wins semantics; deterministic for a
// given sequence of setters. This is the canonical internal entry point.
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		alignment: DefaultAlignment,
		orient:    DefaultOrientation,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// alignStride rounds rows up to the nearest multiple of alignment.
// stride >= rows always holds since alignment >= 1.
// Complexity: O(1).
func alignStride(rows, alignment int) int {
	return alignment * ((rows + alignment - 1) / alignment)
}
