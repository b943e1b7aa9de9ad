// SPDX-License-Identifier: MIT

// Package sparse - Dense storage (row-major or column-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly flat buffer with an explicit index formula
//     (i*cols + j row-major, j*rows + i column-major).
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Do: O(r*c).

package sparse

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite
// indices. Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete flat-buffer matrix.
//   - rows, cols hold dimensions.
//   - data is a flat buffer of length rows*cols in the selected orientation.
//   - orient fixes the 2-D indexing formula for the instance's lifetime.
//
// Every cell is present; explicit zeros are allowed and preserved until a
// pruning conversion (DenseToCOO/DenseToCSR) drops them.
type Dense[V Value] struct {
	rows, cols int         // dimensions (>= 0)
	orient     Orientation // storage layout; set at construction
	data       []V         // contiguous storage (len == rows*cols)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates a rows×cols zero matrix. Layout defaults to row-major;
// pass WithColumnMajor() to flip the indexing formula.
//
// Errors: ErrInvalidDimensions on negative sizes.
// Complexity: O(rows*cols).
func NewDense[V Value](rows, cols int, opts ...Option) (*Dense[V], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense: %w", ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	// make() zero-fills the buffer deterministically.
	return &Dense[V]{
		rows:   rows,
		cols:   cols,
		orient: o.orient,
		data:   make([]V, rows*cols),
	}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[V]) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[V]) Cols() int { return m.cols }

// NumEntries returns the cell count rows*cols; dense storage materializes
// every cell, zeros included. Complexity: O(1).
func (m *Dense[V]) NumEntries() int { return m.rows * m.cols }

// Orientation returns the storage layout. Complexity: O(1).
func (m *Dense[V]) Orientation() Orientation { return m.orient }

// Resize (re)allocates the buffer for a new shape, reusing capacity when
// possible. Orientation is preserved; contents are unspecified afterwards
// (conversion kernels zero-fill before accumulating).
//
// Errors: ErrInvalidDimensions.
// Complexity: O(rows*cols) worst case, O(1) on capacity reuse.
func (m *Dense[V]) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrInvalidDimensions
	}
	m.rows, m.cols = rows, cols
	m.data = grow(m.data, rows*cols)

	return nil
}

// offset computes the flat position of (row, col) under the instance's
// orientation. Callers guarantee bounds; kernels use this directly.
// Complexity: O(1).
func (m *Dense[V]) offset(row, col int) int {
	if m.orient == ColMajor {
		return col*m.rows + row
	}

	return row*m.cols + col
}

// indexOf bounds-checks (row, col) and computes the flat offset.
// Returns the bare sentinel; public methods wrap with method context.
// Complexity: O(1).
func (m *Dense[V]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.cols {
		return 0, ErrOutOfRange
	}

	return m.offset(row, col), nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range access. Complexity: O(1).
func (m *Dense[V]) At(row, col int) (V, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero V
		return zero, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Never panics on out-of-range access. Complexity: O(1).
func (m *Dense[V]) Set(row, col int, v V) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Do visits each cell in logical row-major order (independent of storage
// orientation) and calls f(i, j, v); stops early when f returns false.
// Read-only with respect to the callback; no allocations.
// Complexity: O(rows*cols).
func (m *Dense[V]) Do(f func(i, j int, v V) bool) {
	var i, j int
	for i = 0; i < m.rows; i++ { // iterate rows deterministically
		for j = 0; j < m.cols; j++ { // iterate columns
			if !f(i, j, m.data[m.offset(i, j)]) {
				return // early exit requested by caller
			}
		}
	}
}

// String renders rows as lines with comma-separated values.
// Intended for diagnostics, not hot paths. Complexity: O(rows*cols).
func (m *Dense[V]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.cols; j++ {
			fmt.Fprintf(&b, "%v", m.data[m.offset(i, j)])
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
