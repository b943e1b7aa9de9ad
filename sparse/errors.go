// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// sparse package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered error
// conditions; panics are reserved for programmer errors in option
// constructors.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNilMatrix indicates that a nil source or destination handle was
	// passed into a conversion kernel or constructor.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrInvalidDimensions indicates that requested dimensions or entry
	// counts are negative, or that a Resize request violates a format's
	// sizing invariant (e.g. DIA stride below the row count).
	ErrInvalidDimensions = errors.New("sparse: invalid dimensions")

	// ErrCapacityOverflow indicates that rows+cols or the entry count does
	// not fit in the instantiated Index type. Kernels check this before any
	// write so a too-narrow index type fails loudly instead of scattering
	// out of bounds.
	ErrCapacityOverflow = errors.New("sparse: index type too narrow for matrix")

	// ErrInvalidCapacity indicates a negative entries-per-row capacity for
	// an ELL/HYB target. Zero is legal (everything overflows into COO).
	ErrInvalidCapacity = errors.New("sparse: invalid entries-per-row capacity")

	// ErrOutOfRange indicates that an element index is outside valid
	// bounds. Public accessors (At/Set/Entry) MUST return this, not panic.
	ErrOutOfRange = errors.New("sparse: index out of range")
)
