// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by the format containers and kernels.
// This file intentionally contains ONLY domain-facing types (generic
// constraints, orientation, sentinel index). Errors and options live in
// dedicated files (errors.go, options.go) per the package conventions.
package sparse

// Index constrains the integral type used for row/column indices and
// offsets. Signed types only: DIA stores column−row (which may be negative)
// in DiagonalOffsets, and ELL marks unused slots with a reserved negative
// value. An instantiation must be wide enough to represent rows+cols and
// the entry count; kernels validate this and return ErrCapacityOverflow
// instead of corrupting the destination.
type Index interface {
	~int | ~int32 | ~int64
}

// Value constrains the numeric element type. Conversions only need exact
// comparison against the additive identity and addition, so both integer
// and floating-point instantiations behave identically. No epsilon is ever
// applied: a stored 0.0 is pruned, a stored 1e-300 is kept.
type Value interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// InvalidIndex marks an unused ELL slot in ColIndices. Slots carrying this
// marker hold a zero value and are skipped on every readback path.
// The signed Index domain makes -1 a natural reserved value; no valid
// column index can collide with it.
const InvalidIndex = -1

// Orientation selects the memory layout of a Dense matrix.
// It affects only the 2-D indexing formula, never the logical iteration
// order of conversions (which is always row-major).
type Orientation int

const (
	// RowMajor stores cell (i,j) at offset i*cols + j.
	RowMajor Orientation = iota

	// ColMajor stores cell (i,j) at offset j*rows + i.
	ColMajor
)

// String returns a stable name for the orientation, for diagnostics.
func (o Orientation) String() string {
	if o == ColMajor {
		return "col-major"
	}

	return "row-major"
}
