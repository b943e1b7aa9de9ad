// SPDX-License-Identifier: MIT

// Package sparse - COO (coordinate) storage.
//
// COO holds one (row, col, value) triplet per entry in three parallel
// arrays. Order is irrelevant and duplicates are permitted; every other
// format treats COO as the universal pivot. Conversions out of COO either
// preserve duplicates (CSR) or sum them (Dense); see the package doc.

package sparse

import "fmt"

// COO is a coordinate-format sparse matrix.
// Backing arrays are exported: kernels and collaborators get linear
// random access, mirroring the storage contract all formats share.
// Scalar bookkeeping stays behind accessors so Resize remains the single
// place where the sizing invariant (equal array lengths) is established.
type COO[I Index, V Value] struct {
	rows, cols int // dimensions (>= 0)
	nnz        int // logical entry count; len of each backing array

	RowIndices []I // row index per entry
	ColIndices []I // column index per entry
	Values     []V // value per entry
}

// NewCOO allocates a rows×cols coordinate matrix with capacity for the
// given number of entries. Entries are zero-initialized; callers populate
// them via SetEntry or by writing the backing arrays directly.
//
// Errors: ErrInvalidDimensions (negative sizes), ErrCapacityOverflow
// (index type too narrow).
// Complexity: O(entries).
func NewCOO[I Index, V Value](rows, cols, entries int) (*COO[I, V], error) {
	m := &COO[I, V]{}
	if err := m.Resize(rows, cols, entries); err != nil {
		return nil, fmt.Errorf("NewCOO: %w", err)
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *COO[I, V]) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *COO[I, V]) Cols() int { return m.cols }

// NumEntries returns the logical entry count (duplicates included).
// Complexity: O(1).
func (m *COO[I, V]) NumEntries() int { return m.nnz }

// Resize (re)allocates the backing arrays for the given shape and entry
// count, reusing existing capacity when possible. Array contents are
// unspecified afterwards; conversion kernels fully overwrite them.
// This is the only allocation point for COO storage.
//
// Errors: ErrInvalidDimensions, ErrCapacityOverflow.
// Complexity: O(entries) worst case, O(1) on capacity reuse.
func (m *COO[I, V]) Resize(rows, cols, entries int) error {
	if err := validateDims(rows, cols, entries); err != nil {
		return err
	}
	if err := validateIndexWidth[I](rows, cols, entries); err != nil {
		return err
	}

	m.rows, m.cols, m.nnz = rows, cols, entries
	m.RowIndices = grow(m.RowIndices, entries)
	m.ColIndices = grow(m.ColIndices, entries)
	m.Values = grow(m.Values, entries)

	return nil
}

// Entry returns the n-th stored triplet.
// Errors: ErrOutOfRange when n is outside [0, NumEntries()).
// Complexity: O(1).
func (m *COO[I, V]) Entry(n int) (row, col I, v V, err error) {
	if n < 0 || n >= m.nnz {
		return 0, 0, 0, fmt.Errorf("COO.Entry(%d): %w", n, ErrOutOfRange)
	}

	return m.RowIndices[n], m.ColIndices[n], m.Values[n], nil
}

// SetEntry stores a triplet at position n. Indices are range-checked
// against the matrix shape; duplicates across positions are permitted.
// Errors: ErrOutOfRange on an invalid position or out-of-shape indices.
// Complexity: O(1).
func (m *COO[I, V]) SetEntry(n int, row, col I, v V) error {
	if n < 0 || n >= m.nnz {
		return fmt.Errorf("COO.SetEntry(%d): %w", n, ErrOutOfRange)
	}
	if row < 0 || int(row) >= m.rows || col < 0 || int(col) >= m.cols {
		return fmt.Errorf("COO.SetEntry(%d): (%d,%d): %w", n, row, col, ErrOutOfRange)
	}
	m.RowIndices[n] = row
	m.ColIndices[n] = col
	m.Values[n] = v

	return nil
}
