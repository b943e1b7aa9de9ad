// SPDX-License-Identifier: MIT

// Package sparse - DIA (diagonal) storage.
//
// DIA stores dense strips along constant column−row offsets. Each occupied
// diagonal owns a stride-sized slice of Values; position row within slice
// slot holds the element at (row, row+offset). Slots outside the matrix or
// never written remain structural zeros and are pruned on readback.

package sparse

import "fmt"

// DIA is a diagonal-format sparse matrix.
// Values has length NumDiagonals()*Stride(); the element of diagonal slot
// d at row i lives at Values[d*Stride()+i]. DiagonalOffsets is ascending
// (kernels assign slots in increasing diagonal-id order).
type DIA[I Index, V Value] struct {
	rows, cols int // dimensions (>= 0)
	nnz        int // logical entry count (excludes structural zeros)
	stride     int // distance between diagonal slices; >= rows

	DiagonalOffsets []I // offset (col-row) per diagonal slot, ascending
	Values          []V // len = diagonals*stride; includes structural zeros
}

// NewDIA allocates a rows×cols diagonal matrix with the given number of
// occupied diagonals and stride. Most callers never construct DIA by hand;
// CSRToDIA discovers diagonals and sizes the destination itself.
//
// Errors: ErrInvalidDimensions (also when stride < rows), ErrCapacityOverflow.
// Complexity: O(diagonals*stride).
func NewDIA[I Index, V Value](rows, cols, entries, diagonals, stride int) (*DIA[I, V], error) {
	m := &DIA[I, V]{}
	if err := m.Resize(rows, cols, entries, diagonals, stride); err != nil {
		return nil, fmt.Errorf("NewDIA: %w", err)
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *DIA[I, V]) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *DIA[I, V]) Cols() int { return m.cols }

// NumEntries returns the logical entry count recorded at conversion time.
// Structural zeros in the padding are not counted. Complexity: O(1).
func (m *DIA[I, V]) NumEntries() int { return m.nnz }

// NumDiagonals returns the number of occupied diagonal slots.
// Complexity: O(1).
func (m *DIA[I, V]) NumDiagonals() int { return len(m.DiagonalOffsets) }

// Stride returns the distance between consecutive diagonal slices.
// Always >= Rows(); the excess is alignment padding. Complexity: O(1).
func (m *DIA[I, V]) Stride() int { return m.stride }

// Resize (re)allocates backing arrays for the given geometry, reusing
// capacity when possible. Contents are unspecified afterwards; CSRToDIA
// zero-fills Values before scattering.
//
// Errors: ErrInvalidDimensions (negative sizes, or stride < rows),
// ErrCapacityOverflow.
// Complexity: O(diagonals*stride) worst case, O(1) on capacity reuse.
func (m *DIA[I, V]) Resize(rows, cols, entries, diagonals, stride int) error {
	if err := validateDims(rows, cols, entries); err != nil {
		return err
	}
	if diagonals < 0 || stride < rows {
		return ErrInvalidDimensions
	}
	if err := validateIndexWidth[I](rows, cols, entries); err != nil {
		return err
	}

	m.rows, m.cols, m.nnz = rows, cols, entries
	m.stride = stride
	m.DiagonalOffsets = grow(m.DiagonalOffsets, diagonals)
	m.Values = grow(m.Values, diagonals*stride)

	return nil
}
