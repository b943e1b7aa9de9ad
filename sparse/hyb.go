// SPDX-License-Identifier: MIT

// Package sparse - HYB (hybrid ELL + COO) storage.
//
// HYB pairs an ELL block holding the regular leading part of each row with
// a COO block holding the irregular overflow. Every logical entry lives in
// exactly one of the two parts; the parts never duplicate a coordinate
// that CSRToHYB placed.

package sparse

import "fmt"

// HYB is a hybrid sparse matrix: a fixed-width ELL part plus a COO
// overflow part sharing the same logical shape.
type HYB[I Index, V Value] struct {
	rows, cols int // dimensions (>= 0), shared by both parts

	ELL ELL[I, V] // regular part: first EntriesPerRow entries of each row
	COO COO[I, V] // overflow part: remaining entries, tagged with rows
}

// NewHYB allocates a rows×cols hybrid matrix with the given split. Most
// callers obtain HYB from CSRToHYB, which computes the split itself.
//
// Errors: ErrInvalidDimensions, ErrCapacityOverflow.
// Complexity: O(entriesPerRow*stride + cooEntries).
func NewHYB[I Index, V Value](rows, cols, ellEntries, cooEntries, entriesPerRow, stride int) (*HYB[I, V], error) {
	m := &HYB[I, V]{}
	if err := m.Resize(rows, cols, ellEntries, cooEntries, entriesPerRow, stride); err != nil {
		return nil, fmt.Errorf("NewHYB: %w", err)
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *HYB[I, V]) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *HYB[I, V]) Cols() int { return m.cols }

// NumEntries returns the combined logical entry count of both parts.
// Complexity: O(1).
func (m *HYB[I, V]) NumEntries() int { return m.ELL.NumEntries() + m.COO.NumEntries() }

// Resize (re)allocates both parts for the given geometry and split.
//
// Errors: ErrInvalidDimensions, ErrCapacityOverflow.
// Complexity: O(entriesPerRow*stride + cooEntries) worst case.
func (m *HYB[I, V]) Resize(rows, cols, ellEntries, cooEntries, entriesPerRow, stride int) error {
	if err := m.ELL.Resize(rows, cols, ellEntries, entriesPerRow, stride); err != nil {
		return err
	}
	if err := m.COO.Resize(rows, cols, cooEntries); err != nil {
		return err
	}
	m.rows, m.cols = rows, cols

	return nil
}
