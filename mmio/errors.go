// SPDX-License-Identifier: MIT
// Package mmio: sentinel error set for the Matrix Market codec.
// Parse routines MUST return these sentinels (wrapped with line context via
// fmt.Errorf and %w) and tests MUST check them via errors.Is.

package mmio

import "errors"

var (
	// ErrBadHeader indicates a missing or malformed banner line, or a
	// malformed size line.
	ErrBadHeader = errors.New("mmio: bad header")

	// ErrUnsupportedFormat indicates a syntactically valid banner asking
	// for a combination this codec does not implement (e.g. complex field,
	// hermitian symmetry, array symmetric).
	ErrUnsupportedFormat = errors.New("mmio: unsupported format")

	// ErrBadEntry indicates a data line that does not parse or whose
	// indices fall outside the declared shape.
	ErrBadEntry = errors.New("mmio: bad entry")

	// ErrTruncated indicates the stream ended before the declared entry
	// count was read.
	ErrTruncated = errors.New("mmio: truncated input")
)
