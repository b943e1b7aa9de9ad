// SPDX-License-Identifier: MIT

// Package sparse - CSR (compressed sparse row) storage.
//
// CSR delimits per-row slices of a shared column/value array with a
// monotone RowOffsets array: row i occupies positions
// [RowOffsets[i], RowOffsets[i+1]). Within a row duplicates may exist and
// are preserved by the kernels except where explicitly documented.

package sparse

import "fmt"

// CSR is a compressed-sparse-row matrix.
// Invariants after any CSR-producing conversion:
//
//	len(RowOffsets) == Rows()+1
//	RowOffsets[0] == 0, RowOffsets[Rows()] == NumEntries()
//	RowOffsets is monotone non-decreasing
type CSR[I Index, V Value] struct {
	rows, cols int // dimensions (>= 0)
	nnz        int // entry count; len of ColIndices and Values

	RowOffsets []I // len rows+1; per-row start offsets
	ColIndices []I // column index per entry
	Values     []V // value per entry
}

// NewCSR allocates a rows×cols compressed-row matrix sized for the given
// entry count. RowOffsets content is unspecified until a kernel or the
// caller establishes the monotonicity invariant.
//
// Errors: ErrInvalidDimensions, ErrCapacityOverflow.
// Complexity: O(rows + entries).
func NewCSR[I Index, V Value](rows, cols, entries int) (*CSR[I, V], error) {
	m := &CSR[I, V]{}
	if err := m.Resize(rows, cols, entries); err != nil {
		return nil, fmt.Errorf("NewCSR: %w", err)
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *CSR[I, V]) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *CSR[I, V]) Cols() int { return m.cols }

// NumEntries returns the stored entry count. Complexity: O(1).
func (m *CSR[I, V]) NumEntries() int { return m.nnz }

// Resize (re)allocates backing arrays for the given shape and entry count,
// reusing capacity when possible. Contents are unspecified afterwards.
//
// Errors: ErrInvalidDimensions, ErrCapacityOverflow.
// Complexity: O(rows + entries) worst case, O(1) on capacity reuse.
func (m *CSR[I, V]) Resize(rows, cols, entries int) error {
	if err := validateDims(rows, cols, entries); err != nil {
		return err
	}
	if err := validateIndexWidth[I](rows, cols, entries); err != nil {
		return err
	}

	m.rows, m.cols, m.nnz = rows, cols, entries
	m.RowOffsets = grow(m.RowOffsets, rows+1)
	m.ColIndices = grow(m.ColIndices, entries)
	m.Values = grow(m.Values, entries)

	return nil
}

// RowSpan returns the half-open entry range [start, end) of row i.
// Errors: ErrOutOfRange when i is outside [0, Rows()).
// Complexity: O(1).
func (m *CSR[I, V]) RowSpan(i int) (start, end int, err error) {
	if i < 0 || i >= m.rows {
		return 0, 0, fmt.Errorf("CSR.RowSpan(%d): %w", i, ErrOutOfRange)
	}

	return int(m.RowOffsets[i]), int(m.RowOffsets[i+1]), nil
}
