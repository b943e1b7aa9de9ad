// SPDX-License-Identifier: MIT

// Package sparse - ELL (fixed-width row) storage.
//
// ELL reserves the same number of slots for every row. Slot s of row i
// lives at s*Stride()+i in both ColIndices and Values. Rows shorter than
// the width pad their remaining slots with InvalidIndex and a zero value;
// readback skips those slots unconditionally.

package sparse

import "fmt"

// ELL is a fixed-width-row sparse matrix.
// Sentinel integrity invariant: ColIndices[p] == InvalidIndex implies
// Values[p] == 0, and such slots are never emitted by conversions.
type ELL[I Index, V Value] struct {
	rows, cols    int // dimensions (>= 0)
	nnz           int // logical entry count (excludes sentinel slots)
	entriesPerRow int // fixed slot count per row; >= 0
	stride        int // distance between slot slices; >= rows

	ColIndices []I // len = entriesPerRow*stride; InvalidIndex marks padding
	Values     []V // len = entriesPerRow*stride; zero in padding slots
}

// NewELL allocates a rows×cols fixed-width matrix. Most callers obtain ELL
// from CSRToELL, which also establishes the sentinel padding.
//
// Errors: ErrInvalidDimensions (negative sizes, negative width, stride < rows),
// ErrCapacityOverflow.
// Complexity: O(entriesPerRow*stride).
func NewELL[I Index, V Value](rows, cols, entries, entriesPerRow, stride int) (*ELL[I, V], error) {
	m := &ELL[I, V]{}
	if err := m.Resize(rows, cols, entries, entriesPerRow, stride); err != nil {
		return nil, fmt.Errorf("NewELL: %w", err)
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *ELL[I, V]) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *ELL[I, V]) Cols() int { return m.cols }

// NumEntries returns the logical entry count (sentinel slots excluded).
// Complexity: O(1).
func (m *ELL[I, V]) NumEntries() int { return m.nnz }

// EntriesPerRow returns the fixed per-row slot count. Complexity: O(1).
func (m *ELL[I, V]) EntriesPerRow() int { return m.entriesPerRow }

// Stride returns the distance between consecutive slot slices.
// Always >= Rows(). Complexity: O(1).
func (m *ELL[I, V]) Stride() int { return m.stride }

// Resize (re)allocates backing arrays for the given geometry, reusing
// capacity when possible. Contents are unspecified afterwards; CSRToHYB
// establishes the sentinel padding before scattering.
//
// Errors: ErrInvalidDimensions, ErrCapacityOverflow.
// Complexity: O(entriesPerRow*stride) worst case, O(1) on capacity reuse.
func (m *ELL[I, V]) Resize(rows, cols, entries, entriesPerRow, stride int) error {
	if err := validateDims(rows, cols, entries); err != nil {
		return err
	}
	if entriesPerRow < 0 || stride < rows {
		return ErrInvalidDimensions
	}
	if err := validateIndexWidth[I](rows, cols, entries); err != nil {
		return err
	}

	m.rows, m.cols, m.nnz = rows, cols, entries
	m.entriesPerRow, m.stride = entriesPerRow, stride
	m.ColIndices = grow(m.ColIndices, entriesPerRow*stride)
	m.Values = grow(m.Values, entriesPerRow*stride)

	return nil
}
